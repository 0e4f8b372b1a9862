package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/internal/service/bot"
	"github.com/sandevgo/footix/internal/service/conversation"
	"github.com/sandevgo/footix/internal/service/knowledge"
	"github.com/sandevgo/footix/internal/service/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, token string) *Server {
	t.Helper()

	r, err := resolver.New(resolver.Config{
		Blacklist: []string{"hey"},
		Knowledge: knowledge.FromMap(map[string]string{"HOW ARE YOU": "I'M GREAT THANK YOU!"}),
		Canned: core.CannedResponses{
			Unknown:        "UNKNOWN",
			EmptyInput:     "EMPTY",
			RepeatQuestion: "REPEAT QUESTION",
			RepeatAnswer:   "REPEAT ANSWER",
		},
		Fuzziness: 1,
	})
	require.NoError(t, err)

	store, err := conversation.NewMemoryStore(8)
	require.NoError(t, err)

	listener := bot.NewListener(resolver.NewResponder(r, conversation.NewRegistry(store)), nil, nil, nil)
	cfg := &config.HTTPConfig{Addr: ":0", ShutdownTimeout: time.Second, AuthToken: token}
	return NewServer(context.Background(), cfg, listener)
}

func post(t *testing.T, s *Server, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestMessages_Conversation(t *testing.T) {
	s := newTestServer(t, "")

	rec := post(t, s, `{"text":"hey how are you","channel_id":"web-1","sender_id":"u"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var first MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.Equal(t, "I'M GREAT THANK YOU!", first.Text)
	assert.Equal(t, core.OutcomeExact, first.Outcome)
	assert.Equal(t, "web-1", first.ChannelID)
	assert.NotEmpty(t, first.ID)

	rec = post(t, s, `{"text":"how are you","channel_id":"web-1"}`, "")
	var second MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, "REPEAT QUESTION", second.Text)
	assert.Equal(t, core.OutcomeRepeatQuestion, second.Outcome)
}

func TestMessages_BadRequests(t *testing.T) {
	s := newTestServer(t, "")

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"text":`},
		{name: "missing channel", body: `{"text":"hi"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestMessages_BodyTooLarge(t *testing.T) {
	s := newTestServer(t, "")

	text := strings.Repeat("how are you ", 6000)
	rec := post(t, s, `{"text":"`+text+`","channel_id":"c"}`, "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	assert.Equal(t, http.StatusOK, post(t, s, `{"text":"how are you","channel_id":"c"}`, "").Code)
}

func TestMessages_EmptyTextIsAnswered(t *testing.T) {
	s := newTestServer(t, "")

	rec := post(t, s, `{"text":"hey!","channel_id":"c"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"empty"`)
}

func TestMessages_Auth(t *testing.T) {
	s := newTestServer(t, "s3cret")

	assert.Equal(t, http.StatusUnauthorized, post(t, s, `{"text":"hi","channel_id":"c"}`, "wrong").Code)
	assert.NotEqual(t, http.StatusOK, post(t, s, `{"text":"hi","channel_id":"c"}`, "").Code)
	assert.Equal(t, http.StatusOK, post(t, s, `{"text":"hi","channel_id":"c"}`, "s3cret").Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, "s3cret")

	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	post(t, s, `{"text":"how are you","channel_id":"m"}`, "s3cret")

	rec = httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "footix_resolutions_total")
}
