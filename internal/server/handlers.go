package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/pipeline"
	"github.com/mattkessler/crossweave/pkg/puzzle"
	"github.com/mattkessler/crossweave/pkg/store"
	"github.com/mattkessler/crossweave/pkg/wordlist"
)

// puzzleResponse is the full puzzle representation returned by the API.
// Board cells and clues are derived from the stored placements.
type puzzleResponse struct {
	*store.Puzzle
	Board boardResponse `json:"board"`
	Clues []clueJSON    `json:"clues"`
}

type boardResponse struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells []cellJSON `json:"cells"`
}

type cellJSON struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Letter    string `json:"letter"`
	Number    int    `json:"number,omitempty"`
	Collision bool   `json:"collision,omitempty"`
}

type clueJSON struct {
	Number      int    `json:"number"`
	Orientation string `json:"orientation"`
	Length      int    `json:"length"`
	Text        string `json:"text"`
}

func toPuzzleResponse(p *store.Puzzle) puzzleResponse {
	board, clues := p.Board()

	resp := puzzleResponse{Puzzle: p}
	resp.Board.Rows = board.Rows
	resp.Board.Cols = board.Cols
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			cell := board.At(row, col)
			if cell.Letter == "" {
				continue
			}
			resp.Board.Cells = append(resp.Board.Cells, cellJSON{
				Row: row, Col: col,
				Letter:    cell.Letter,
				Number:    cell.Number,
				Collision: cell.Collision,
			})
		}
	}
	for _, c := range clues {
		resp.Clues = append(resp.Clues, clueJSON{
			Number:      c.Number,
			Orientation: string(c.Orientation),
			Length:      len(c.Letters),
			Text:        c.Text,
		})
	}
	return resp
}

type createPuzzleRequest struct {
	Title     string        `json:"title"`
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	Words     []puzzle.Word `json:"words,omitempty"`
	WordsText string        `json:"words_text,omitempty"`
}

func (s *Server) handleCreatePuzzle(w http.ResponseWriter, r *http.Request) {
	var req createPuzzleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	if req.Rows == 0 {
		req.Rows = pipeline.DefaultRows
	}
	if req.Cols == 0 {
		req.Cols = pipeline.DefaultCols
	}

	words := req.Words
	if req.WordsText != "" {
		parsed, err := wordlist.ParseString(req.WordsText)
		if err != nil {
			s.writeError(w, err)
			return
		}
		words = parsed
	}
	for _, word := range words {
		if err := errors.ValidateLetters(word.Letters); err != nil {
			s.writeError(w, err)
			return
		}
	}

	p, err := store.New(req.Title, req.Rows, req.Cols, words)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Put(r.Context(), p); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("created puzzle", "id", p.ID, "words", len(words))
	writeJSON(w, http.StatusCreated, toPuzzleResponse(p))
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	puzzles, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"puzzles": puzzles})
}

func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), chi.URLParam(r, "puzzleID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPuzzleResponse(p))
}

func (s *Server) handleDeletePuzzle(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "puzzleID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleLayout runs the auto-layout over the puzzle's words and replaces
// its placements with the result.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := s.store.Get(ctx, chi.URLParam(r, "puzzleID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	placements, err := s.runner.Layout(ctx, p.Words, pipeline.Options{Rows: p.Rows, Cols: p.Cols})
	if err != nil {
		s.writeError(w, err)
		return
	}
	_, _, numbered := puzzle.Derive(placements, p.Rows, p.Cols)
	p.Placements = numbered

	if err := s.store.Put(ctx, p); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("computed layout", "id", p.ID, "placed", len(numbered), "of", len(p.Words))
	writeJSON(w, http.StatusOK, toPuzzleResponse(p))
}

type checkRequest struct {
	Letters     string `json:"letters"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
	Strict      bool   `json:"strict,omitempty"`
}

type checkResponse struct {
	Valid bool `json:"valid"`
}

// handleCheck reports whether a placement would be accepted on the
// puzzle's current board. Interactive rules apply unless strict is set,
// which uses the auto-layout rules instead.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), chi.URLParam(r, "puzzleID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req checkRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := errors.ValidateOrientation(req.Orientation); err != nil {
		s.writeError(w, err)
		return
	}
	if err := errors.ValidateLetters(req.Letters); err != nil {
		s.writeError(w, err)
		return
	}

	level := puzzle.Interactive
	if req.Strict {
		level = puzzle.AutoStrict
	}
	board, _, _ := puzzle.Derive(p.Placements, p.Rows, p.Cols)
	valid := puzzle.CanPlace(board, req.Letters, req.Row, req.Col, puzzle.Orientation(req.Orientation), level)

	writeJSON(w, http.StatusOK, checkResponse{Valid: valid})
}

type addPlacementRequest struct {
	WordID      string `json:"word_id"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
}

// handleAddPlacement places one of the puzzle's words manually. The
// placement must pass the interactive rules against the current board.
func (s *Server) handleAddPlacement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := s.store.Get(ctx, chi.URLParam(r, "puzzleID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req addPlacementRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := errors.ValidateOrientation(req.Orientation); err != nil {
		s.writeError(w, err)
		return
	}

	var word *puzzle.Word
	for i := range p.Words {
		if p.Words[i].ID == req.WordID {
			word = &p.Words[i]
			break
		}
	}
	if word == nil {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "word %q not in puzzle", req.WordID))
		return
	}
	for _, existing := range p.Placements {
		if existing.ID == word.ID {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "word %q is already placed", req.WordID))
			return
		}
	}

	board, _, _ := puzzle.Derive(p.Placements, p.Rows, p.Cols)
	o := puzzle.Orientation(req.Orientation)
	if !puzzle.CanPlace(board, word.Letters, req.Row, req.Col, o, puzzle.Interactive) {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput,
			"cannot place %q at (%d,%d) %s", word.Letters, req.Row, req.Col, o))
		return
	}

	p.Placements = append(p.Placements, puzzle.Placement{
		Word: *word, Row: req.Row, Col: req.Col, Orientation: o,
	})
	_, _, p.Placements = puzzle.Derive(p.Placements, p.Rows, p.Cols)

	if err := s.store.Put(ctx, p); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPuzzleResponse(p))
}

func (s *Server) handleRemovePlacement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := s.store.Get(ctx, chi.URLParam(r, "puzzleID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	wordID := chi.URLParam(r, "wordID")
	kept := p.Placements[:0]
	removed := false
	for _, pl := range p.Placements {
		if pl.ID == wordID {
			removed = true
			continue
		}
		kept = append(kept, pl)
	}
	if !removed {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "word %q is not placed", wordID))
		return
	}
	_, _, p.Placements = puzzle.Derive(kept, p.Rows, p.Cols)

	if err := s.store.Put(ctx, p); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPuzzleResponse(p))
}

// handleRender returns a rendered artifact for the puzzle's current
// placements. Format, style, letters, and clues come from query params.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := s.store.Get(ctx, chi.URLParam(r, "puzzleID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts := pipeline.Options{
		Rows:        p.Rows,
		Cols:        p.Cols,
		Formats:     []string{format},
		Style:       q.Get("style"),
		ShowLetters: q.Get("letters") == "true",
		ShowClues:   q.Get("clues") == "true",
	}

	board, clues, numbered := puzzle.Derive(p.Placements, p.Rows, p.Cols)
	artifacts, err := s.runner.Render(ctx, board, clues, numbered, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}
