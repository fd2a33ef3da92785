package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"gambit/board"
	"gambit/game"
)

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	pos := board.NewGame()
	if req.FEN != "" {
		var err error
		pos, err = board.FromFEN(req.FEN)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	sess := s.store.create(pos)
	s.log.Info().Str("game", sess.ID).Msg("game created")
	s.writeJSON(w, http.StatusCreated, stateOf(sess))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.get(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "no such game")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.writeJSON(w, http.StatusOK, stateOf(sess))
}

// handlePlayMove applies one caller-supplied move. The engine only moves
// through the search endpoint.
func (s *Server) handlePlayMove(w http.ResponseWriter, r *http.Request) {
	var req playMoveRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.San == "" {
		s.writeError(w, http.StatusBadRequest, "missing move")
		return
	}

	sess, ok := s.store.get(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "no such game")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.pos.Result() != game.NoResult {
		s.writeError(w, http.StatusConflict, "game is over")
		return
	}

	move, err := sess.pos.ParseSAN(req.San)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.pos = sess.pos.Apply(move).(*board.Position)
	s.writeJSON(w, http.StatusOK, stateOf(sess))
}

// handleSearchMove has the engine pick and play a move for the side to
// move. An "iterations" field overrides the search budget for this request.
func (s *Server) handleSearchMove(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Iterations < 0 {
		s.writeError(w, http.StatusBadRequest, "iterations must be positive")
		return
	}

	sess, ok := s.store.get(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "no such game")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.pos.Result() != game.NoResult {
		s.writeError(w, http.StatusConflict, "game is over")
		return
	}

	move, source, err := s.pickMove(sess, req.Iterations)
	if err != nil {
		s.log.Error().Err(err).Str("game", sess.ID).Msg("search failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sess.pos = sess.pos.Apply(move).(*board.Position)
	s.log.Info().
		Str("game", sess.ID).
		Str("move", move.String()).
		Str("source", source).
		Msg("engine moved")
	s.writeJSON(w, http.StatusOK, searchResponse{
		gameStateResponse: stateOf(sess),
		Move:              move.String(),
		Source:            source,
	})
}

func (s *Server) handleOpenings(w http.ResponseWriter, r *http.Request) {
	entries := lo.MapToSlice(s.selector.Book().Lines(), func(history, reply string) openingLine {
		return openingLine{History: history, Reply: reply}
	})
	slices.SortFunc(entries, func(a, b openingLine) int {
		return strings.Compare(a.History, b.History)
	})
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) pickMove(sess *gameSession, iterations int) (game.Move, string, error) {
	if iterations > 0 {
		move, source, err := s.selector.SelectMoveN(sess.pos, iterations)
		return move, string(source), err
	}
	move, source, err := s.selector.SelectMove(sess.pos)
	return move, string(source), err
}

func stateOf(sess *gameSession) gameStateResponse {
	return gameStateResponse{
		ID:      sess.ID,
		FEN:     sess.pos.FEN(),
		Turn:    sess.pos.Turn().String(),
		Result:  sess.pos.Result().String(),
		History: sess.pos.History(),
	}
}

// decodeBody tolerates an empty body so optional requests can omit JSON
// entirely. Unknown fields are rejected.
func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
