package storage

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.etcd.io/bbolt"

	"svw.info/sudoku-solver/internal/domain"
)

var bucketPuzzles = []byte("puzzles")

// Bolt keeps all puzzles in a single bbolt file, keyed by ID.
type Bolt struct {
	db *bbolt.DB
}

func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o666, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPuzzles)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (s *Bolt) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return os.ErrInvalid
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPuzzles).Put([]byte(p.ID), data)
	})
}

func (s *Bolt) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var out *domain.Puzzle
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketPuzzles).Get([]byte(id))
		if data == nil {
			return os.ErrNotExist
		}
		var p domain.Puzzle
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		out = &p
		return nil
	})
	return out, err
}

func (s *Bolt) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPuzzles).ForEach(func(k, v []byte) error {
			var p domain.Puzzle
			if err := json.Unmarshal(v, &p); err != nil || p.ID == "" {
				return nil // skip unreadable entries
			}
			out = append(out, metaOf(&p))
			return nil
		})
	})
	return out, err
}

func (s *Bolt) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketPuzzles)
		if b.Get([]byte(id)) == nil {
			return os.ErrNotExist
		}
		return b.Delete([]byte(id))
	})
}

func (s *Bolt) Close() error { return s.db.Close() }
