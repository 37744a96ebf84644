package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gofrs/uuid/v5"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Routes returns the JSON API router, mounted under /api by the server.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/solve", h.solve)
	r.Post("/generate", h.generate)
	r.Post("/validate", h.validate)
	r.Post("/hint", h.hint)
	r.Route("/puzzles", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.save)
		r.Get("/{id}", h.load)
		r.Delete("/{id}", h.delete)
	})
	return r
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, render.M{"error": err.Error()})
}

// boardReq accepts a board either as the structured JSON shape or as the
// one-line text notation.
type boardReq struct {
	Board *domain.Board `json:"board,omitempty"`
	Text  string        `json:"text,omitempty"`
}

func (q *boardReq) board() (*domain.Board, error) {
	if q.Board != nil {
		return q.Board, nil
	}
	if q.Text != "" {
		return domain.ParseText(q.Text)
	}
	return nil, errors.New("missing board")
}

type solveResp struct {
	Solved     bool          `json:"solved"`
	Board      *domain.Board `json:"board,omitempty"`
	Nodes      int           `json:"nodes"`
	DurationMs int64         `json:"durationMs"`
}

func (h *Handler) solve(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	b, err := req.board()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	solved, st, err := h.UC.Solve(r.Context(), b)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	resp := solveResp{Solved: solved, Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()}
	if solved {
		resp.Board = b
	}
	render.JSON(w, r, resp)
}

type generateReq struct {
	Size       int    `json:"size,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	Nodes      int            `json:"nodes"`
	DurationMs int64          `json:"durationMs"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if req.Size == 0 {
		req.Size = 9
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), req.Size, req.Seed, domain.ParseDifficulty(req.Difficulty))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, generateResp{Puzzle: p, Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()})
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	b, err := req.board()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, validateResp{OK: ok, Conflicts: conflicts})
}

type hintReq struct {
	boardReq
	MaxTier string `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) hint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	b, err := req.board()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	hh, found, err := h.UC.Hint(r.Context(), b, domain.ParseStrategyTier(req.MaxTier))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, hintResp{Found: found, Hint: hh})
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := render.DecodeJSON(r.Body, &p); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if p.Board == nil {
		writeError(w, r, http.StatusBadRequest, errors.New("missing board"))
		return
	}
	if p.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err)
			return
		}
		p.ID = id.String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"id": p.ID})
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	p, err := h.UC.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, r, http.StatusNotFound, err)
		} else {
			writeError(w, r, http.StatusInternalServerError, err)
		}
		return
	}
	render.JSON(w, r, p)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	if ps == nil {
		ps = []domain.PuzzleMeta{}
	}
	render.JSON(w, r, render.M{"puzzles": ps})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, r, http.StatusNotFound, err)
		} else {
			writeError(w, r, http.StatusInternalServerError, err)
		}
		return
	}
	render.NoContent(w, r)
}
