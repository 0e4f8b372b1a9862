package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sandevgo/footix/internal/core"
)

type MessageRequest struct {
	Text      string `json:"text"`
	ChannelID string `json:"channel_id" validate:"required,max=256"`
	SenderID  string `json:"sender_id" validate:"max=256"`
}

type MessageResponse struct {
	ID        string       `json:"id"`
	ChannelID string       `json:"channel_id"`
	Text      string       `json:"text"`
	Outcome   core.Outcome `json:"outcome"`
	Score     float64      `json:"score,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleMessage(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	reply := s.handler.Handle(c.Request().Context(), core.Utterance{
		Text:      req.Text,
		ChannelID: req.ChannelID,
		SenderID:  req.SenderID,
	})

	return c.JSON(http.StatusOK, MessageResponse{
		ID:        uuid.NewString(),
		ChannelID: reply.ChannelID,
		Text:      reply.Text,
		Outcome:   reply.Outcome,
		Score:     reply.Score,
	})
}
