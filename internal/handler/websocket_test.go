package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
	"github.com/zizouhuweidi/trivia/internal/service"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

func TestWebSocketFeed(t *testing.T) {
	hub := ws.NewHub(zap.NewNop())
	go hub.Run()
	defer hub.Stop()

	s := newTestServerWith(t, func(d *Dependencies, store *sqlite.Store) {
		d.Hub = hub
		d.Questions = service.NewQuestionService(store.Questions(), d.Categories, hub, d.Logger)
	}, defaultCategories...)

	srv := httptest.NewServer(s.e)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	body, _ := json.Marshal(map[string]any{"question": "Q?", "answer": "A", "difficulty": 1})
	resp, err := http.Post(srv.URL+"/questions", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ws.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, service.EventQuestionCreated, msg.Type)

	var created domain.Question
	require.NoError(t, json.Unmarshal(msg.Payload, &created))
	assert.Equal(t, "Q?", created.Question)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/questions/1", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, service.EventQuestionDeleted, msg.Type)
	assert.JSONEq(t, `{"id":1}`, string(msg.Payload))
}
