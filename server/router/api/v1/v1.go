package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/burnout-fit/burnout/internal/profile"
	"github.com/burnout-fit/burnout/server/chatbot"
	"github.com/burnout-fit/burnout/server/insights"
	"github.com/burnout-fit/burnout/server/middleware"
	"github.com/burnout-fit/burnout/store"
)

// APIV1Service serves the JSON API: logging endpoints, the insights
// dashboard and the BurnBot chat.
type APIV1Service struct {
	Profile  *profile.Profile
	Store    *store.Store
	Insights *insights.Engine

	// Responder is nil when AI is disabled; the chat endpoint then
	// reports unavailability instead of failing requests.
	Responder *chatbot.Responder
	Sessions  *chatbot.Registry

	chatLimiter *middleware.RateLimiter
}

func NewAPIV1Service(p *profile.Profile, s *store.Store, responder *chatbot.Responder) *APIV1Service {
	return &APIV1Service{
		Profile:     p,
		Store:       s,
		Insights:    insights.NewEngine(s),
		Responder:   responder,
		Sessions:    chatbot.NewRegistry(),
		chatLimiter: middleware.NewRateLimiter(time.Second, 5),
	}
}

// RegisterRoutes attaches every v1 route to the echo instance.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")

	g.POST("/owners/:owner/calories", s.createCalorieEntry)
	g.POST("/owners/:owner/water", s.createWaterEntry)
	g.POST("/owners/:owner/activities", s.createActivityStatus)
	g.POST("/owners/:owner/reviews", s.createReviewEvent)
	g.GET("/owners/:owner/insights", s.getInsights)
	g.POST("/chat", s.chat)
}

func ownerParam(c echo.Context) (int32, error) {
	owner, err := strconv.ParseInt(c.Param("owner"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid owner id")
	}
	return int32(owner), nil
}
