package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burnout-fit/burnout/server/insights"
)

type insightsResponse struct {
	Cards        []*insights.Card    `json:"cards"`
	WaterChart   *insights.ChartData `json:"water_chart"`
	CalorieChart *insights.ChartData `json:"calorie_chart"`
	BurnoutChart *insights.ChartData `json:"burnout_chart"`
}

func (s *APIV1Service) getInsights(c echo.Context) error {
	ownerID, err := ownerParam(c)
	if err != nil {
		return err
	}

	cards, waterChart, calorieChart, burnoutChart, err := s.Insights.ComputeInsights(c.Request().Context(), ownerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute insights").SetInternal(err)
	}

	return c.JSON(http.StatusOK, &insightsResponse{
		Cards:        cards,
		WaterChart:   waterChart,
		CalorieChart: calorieChart,
		BurnoutChart: burnoutChart,
	})
}
