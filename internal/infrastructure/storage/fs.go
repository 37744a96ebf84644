package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudoku-solver/internal/domain"
)

// FS stores one JSON file per puzzle, bucketed into a subdirectory per
// difficulty.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var difficulties = []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), sanitizeID(id)+".json")
}

// sanitizeID keeps IDs usable as file names. IDs are UUIDs in practice, but
// user-supplied ones must not escape the store directory.
func sanitizeID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.ReplaceAll(id, string(filepath.Separator), "_")
	return strings.ReplaceAll(id, "..", "_")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("storage: puzzle missing ID")
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// find locates the puzzle file for an id across the difficulty buckets,
// falling back to the legacy flat layout (<dir>/<id>.json). It reports the
// bucket the file was found in; legacy files carry no bucket.
func (s *FS) find(id string) (path string, d domain.Difficulty, legacy, ok bool) {
	for _, d := range difficulties {
		p := s.pathFor(id, d)
		if _, err := os.Stat(p); err == nil {
			return p, d, false, true
		}
	}
	p := filepath.Join(s.dir, sanitizeID(id)+".json")
	if _, err := os.Stat(p); err == nil {
		return p, 0, true, true
	}
	return "", 0, false, false
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	path, d, legacy, ok := s.find(id)
	if !ok {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	// infer a missing difficulty from the folder; legacy flat files
	// default to Medium
	if out.Difficulty == 0 {
		if legacy {
			out.Difficulty = domain.Medium
		} else {
			out.Difficulty = d
		}
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, d := range difficulties {
		dir := filepath.Join(s.dir, d.String())
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			if p.Difficulty == 0 {
				p.Difficulty = d
			}
			out = append(out, metaOf(&p))
		}
	}
	// legacy flat layout: puzzles saved directly under the store root
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, err
	}
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var p domain.Puzzle
		if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
			continue
		}
		if p.Difficulty == 0 {
			p.Difficulty = domain.Medium
		}
		out = append(out, metaOf(&p))
	}
	return out, nil
}

func (s *FS) Delete(ctx context.Context, id string) error {
	path, _, _, ok := s.find(id)
	if !ok {
		return os.ErrNotExist
	}
	return os.Remove(path)
}

func (s *FS) Close() error { return nil }

func metaOf(p *domain.Puzzle) domain.PuzzleMeta {
	m := domain.PuzzleMeta{
		ID:         p.ID,
		Name:       p.Name,
		Difficulty: p.Difficulty,
		CreatedAt:  p.CreatedAt,
	}
	if p.Board != nil {
		m.Size = p.Board.Size()
	}
	return m
}
