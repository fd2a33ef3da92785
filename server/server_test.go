package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"gambit/engine"
	"gambit/searcher"
)

func newTestRouter() http.Handler {
	selector := engine.NewMoveSelector(engine.WithSearcher(searcher.NewMCTS(
		searcher.WithIterations(2),
		searcher.WithSeed(7),
	)))
	return New(WithSelector(selector)).Router()
}

func request(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func stateFrom(t *testing.T, w *httptest.ResponseRecorder) gameStateResponse {
	t.Helper()
	var state gameStateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	return state
}

func searchFrom(t *testing.T, w *httptest.ResponseRecorder) searchResponse {
	t.Helper()
	var resp searchResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func createGame(t *testing.T, router http.Handler, body any) gameStateResponse {
	t.Helper()
	w := request(t, router, http.MethodPost, "/games", body)
	require.Equal(t, http.StatusCreated, w.Code)
	return stateFrom(t, w)
}

func TestCreateGame(t *testing.T) {
	router := newTestRouter()

	t.Run("starts from the standard position", func(t *testing.T) {
		state := createGame(t, router, nil)

		require.NotEmpty(t, state.ID)
		require.Equal(t, "white", state.Turn)
		require.Equal(t, "*", state.Result)
		require.Empty(t, state.History)
		require.Contains(t, state.FEN, " w ")
	})

	t.Run("accepts a FEN", func(t *testing.T) {
		state := createGame(t, router, createGameRequest{FEN: "k7/8/8/8/8/8/r6r/K7 w - - 0 1"})
		require.Contains(t, state.FEN, "k7/8")
	})

	t.Run("rejects a malformed FEN", func(t *testing.T) {
		w := request(t, router, http.MethodPost, "/games", createGameRequest{FEN: "gibberish"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		w := request(t, router, http.MethodPost, "/games", map[string]string{"fenn": "x"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetGame(t *testing.T) {
	router := newTestRouter()

	t.Run("returns an existing game", func(t *testing.T) {
		created := createGame(t, router, nil)
		w := request(t, router, http.MethodGet, "/games/"+created.ID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, created.ID, stateFrom(t, w).ID)
	})

	t.Run("404s on an unknown game", func(t *testing.T) {
		w := request(t, router, http.MethodGet, "/games/nope", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPlayMove(t *testing.T) {
	router := newTestRouter()

	t.Run("applies the posted move", func(t *testing.T) {
		created := createGame(t, router, nil)
		w := request(t, router, http.MethodPost, "/games/"+created.ID+"/moves", playMoveRequest{San: "e4"})

		require.Equal(t, http.StatusOK, w.Code)
		state := stateFrom(t, w)
		require.Equal(t, []string{"e4"}, state.History)
		require.Equal(t, "black", state.Turn)
	})

	t.Run("rejects an illegal move", func(t *testing.T) {
		created := createGame(t, router, nil)
		w := request(t, router, http.MethodPost, "/games/"+created.ID+"/moves", playMoveRequest{San: "Ke2"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an empty move", func(t *testing.T) {
		created := createGame(t, router, nil)
		w := request(t, router, http.MethodPost, "/games/"+created.ID+"/moves", playMoveRequest{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("404s on an unknown game", func(t *testing.T) {
		w := request(t, router, http.MethodPost, "/games/nope/moves", playMoveRequest{San: "e4"})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("conflicts once the game is over", func(t *testing.T) {
		created := createGame(t, router, createGameRequest{FEN: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"})
		w := request(t, router, http.MethodPost, "/games/"+created.ID+"/moves", playMoveRequest{San: "e4"})
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestSearchMove(t *testing.T) {
	router := newTestRouter()

	t.Run("plays the book reply without searching", func(t *testing.T) {
		created := createGame(t, router, nil)
		request(t, router, http.MethodPost, "/games/"+created.ID+"/moves", playMoveRequest{San: "e4"})
		request(t, router, http.MethodPost, "/games/"+created.ID+"/moves", playMoveRequest{San: "e5"})

		w := request(t, router, http.MethodPost, "/games/"+created.ID+"/search", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := searchFrom(t, w)
		require.Equal(t, "Nf3", resp.Move)
		require.Equal(t, "book", resp.Source)
		require.Equal(t, []string{"e4", "e5", "Nf3"}, resp.History)
		require.Equal(t, "black", resp.Turn)
	})

	t.Run("searches off book with a one-off budget", func(t *testing.T) {
		created := createGame(t, router, createGameRequest{FEN: "k7/8/8/8/8/8/r6r/K7 w - - 0 1"})

		w := request(t, router, http.MethodPost, "/games/"+created.ID+"/search", searchRequest{Iterations: 2})

		require.Equal(t, http.StatusOK, w.Code)
		resp := searchFrom(t, w)
		require.Equal(t, "Kb1", resp.Move)
		require.Equal(t, "search", resp.Source)
	})

	t.Run("rejects a negative budget", func(t *testing.T) {
		created := createGame(t, router, nil)
		w := request(t, router, http.MethodPost, "/games/"+created.ID+"/search", searchRequest{Iterations: -1})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflicts once the game is over", func(t *testing.T) {
		created := createGame(t, router, createGameRequest{FEN: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"})
		w := request(t, router, http.MethodPost, "/games/"+created.ID+"/search", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("404s on an unknown game", func(t *testing.T) {
		w := request(t, router, http.MethodPost, "/games/nope/search", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOpenings(t *testing.T) {
	router := newTestRouter()

	w := request(t, router, http.MethodGet, "/openings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []openingLine
	require.NoError(t, json.NewDecoder(w.Body).Decode(&entries))
	require.Len(t, entries, 16)
	require.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].History < entries[j].History
	}), "Openings come back sorted by history")
	require.Equal(t, openingLine{History: "e4 c5", Reply: "Nf3"}, entries[0])
	require.Contains(t, entries, openingLine{History: "e4 e5", Reply: "Nf3"})
}
