package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"stones/game"
	"stones/searcher"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(game.DefaultRegistry(), searcher.NewFactory())
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeStatus(t *testing.T, resp *http.Response) StatusResponse {
	t.Helper()
	var status StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	return status
}

func TestServerPing(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServerGamesListing(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/games")
	require.NoError(t, err)
	defer resp.Body.Close()

	var games []struct {
		Type         string                `json:"type"`
		DefaultSize  int                   `json:"default_board_size"`
		Difficulties []searcher.Difficulty `json:"difficulties"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
	require.Len(t, games, 3)
	for _, g := range games {
		require.NotEmpty(t, g.Difficulties, "Every game should offer AI tiers")
	}
}

func TestServerMoveFlow(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/new", map[string]any{"game_type": "reversi"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decodeStatus(t, resp)
	require.Equal(t, "reversi", status.GameType)
	require.Equal(t, 8, status.BoardSize)
	require.Equal(t, "black", status.CurrentPlayer)
	require.False(t, status.CanUndo)

	resp = postJSON(t, ts.URL+"/api/move", map[string]int{"x": 2, "y": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status = decodeStatus(t, resp)
	require.Equal(t, "white", status.CurrentPlayer)
	require.True(t, status.CanUndo)
	require.Equal(t, "..........................bbb......bw...........................",
		strings.Join(status.Board, ""))

	// An illegal cell is rejected without touching the match.
	resp = postJSON(t, ts.URL+"/api/move", map[string]int{"x": 0, "y": 0})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/api/undo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status = decodeStatus(t, resp)
	require.Equal(t, "black", status.CurrentPlayer)
	require.False(t, status.CanUndo)

	// Nothing left on the stack.
	resp = postJSON(t, ts.URL+"/api/undo", nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServerPass(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/new", map[string]any{"game_type": "reversi"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Reversi forbids passing while a move exists.
	resp = postJSON(t, ts.URL+"/api/pass", nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/api/new", map[string]any{"game_type": "go", "board_size": 9})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Go allows it freely.
	resp = postJSON(t, ts.URL+"/api/pass", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decodeStatus(t, resp)
	require.Equal(t, 1, status.PassCount)
	require.Equal(t, "white", status.CurrentPlayer)
}

func TestServerAIMove(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/new", map[string]any{"game_type": "gomoku", "board_size": 9})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/api/ai-move", map[string]string{"difficulty": "easy"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decodeStatus(t, resp)
	require.Equal(t, "white", status.CurrentPlayer, "The AI should have played black's stone")
	require.Equal(t, 1, strings.Count(strings.Join(status.Board, ""), "b"))
}

func TestServerSaveLoad(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/new", map[string]any{"game_type": "reversi"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = postJSON(t, ts.URL+"/api/move", map[string]int{"x": 2, "y": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decodeStatus(t, resp)

	resp, err := http.Get(ts.URL + "/api/save")
	require.NoError(t, err)
	var envelope bytes.Buffer
	_, err = envelope.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	// Wreck the match, then restore it from the envelope.
	resp = postJSON(t, ts.URL+"/api/new", map[string]any{"game_type": "gomoku"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	loadResp, err := http.Post(ts.URL+"/api/load", "application/json", &envelope)
	require.NoError(t, err)
	defer loadResp.Body.Close()
	require.Equal(t, http.StatusOK, loadResp.StatusCode)
	loaded := decodeStatus(t, loadResp)

	require.Equal(t, "reversi", loaded.GameType)
	require.Equal(t, saved.Board, loaded.Board)
	require.Equal(t, saved.CurrentPlayer, loaded.CurrentPlayer)
}

func TestServerLoadRejectsGarbage(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/load", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServerWebsocketBroadcast(t *testing.T) {
	s, ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// The hello frame carries the current status.
	var hello wsMessage
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, "status", hello.Type)

	require.Eventually(t, func() bool { return s.hub.clientCount() == 1 },
		time.Second, time.Millisecond)

	resp := postJSON(t, ts.URL+"/api/new", map[string]any{"game_type": "reversi"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var frame wsMessage
	require.NoError(t, conn.ReadJSON(&frame))
	require.Equal(t, "reset", frame.Type)

	var status StatusResponse
	require.NoError(t, json.Unmarshal(frame.Payload, &status))
	require.Equal(t, "reversi", status.GameType)
}
