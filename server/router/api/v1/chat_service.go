package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

func (s *APIV1Service) chat(c echo.Context) error {
	if s.Responder == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat is not enabled")
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	session := s.Sessions.GetOrCreate(req.SessionID)
	if !s.chatLimiter.Allow(session.ID()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many messages, slow down")
	}

	reply := s.Responder.Respond(c.Request().Context(), session, req.Message)
	return c.JSON(http.StatusOK, &chatResponse{
		SessionID: session.ID(),
		Reply:     reply,
	})
}
