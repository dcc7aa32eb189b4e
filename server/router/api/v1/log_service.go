package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/burnout-fit/burnout/store"
)

type createCalorieEntryRequest struct {
	Day      string `json:"day"`
	Calories int32  `json:"calories"`
	Burnout  int32  `json:"burnout"`
}

func (s *APIV1Service) createCalorieEntry(c echo.Context) error {
	ownerID, err := ownerParam(c)
	if err != nil {
		return err
	}

	var req createCalorieEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if _, err := time.Parse("2006-01-02", req.Day); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "day must be YYYY-MM-DD")
	}

	entry, err := s.Store.CreateCalorieEntry(c.Request().Context(), &store.CalorieEntry{
		OwnerID:  ownerID,
		Day:      req.Day,
		Calories: req.Calories,
		Burnout:  req.Burnout,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create calorie entry").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

type createWaterEntryRequest struct {
	Intake string `json:"intake"`
}

func (s *APIV1Service) createWaterEntry(c echo.Context) error {
	ownerID, err := ownerParam(c)
	if err != nil {
		return err
	}

	var req createWaterEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if req.Intake == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "intake is required")
	}

	entry, err := s.Store.CreateWaterEntry(c.Request().Context(), &store.WaterEntry{
		OwnerID: ownerID,
		Intake:  req.Intake,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create water entry").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

type createActivityStatusRequest struct {
	Activity string `json:"activity"`
	Status   string `json:"status"`
	Day      string `json:"day"`
}

func (s *APIV1Service) createActivityStatus(c echo.Context) error {
	ownerID, err := ownerParam(c)
	if err != nil {
		return err
	}

	var req createActivityStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if req.Status != store.ActivityStatusEnrolled && req.Status != store.ActivityStatusCompleted {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be Enrolled or Completed")
	}
	if req.Activity == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "activity is required")
	}

	status, err := s.Store.CreateActivityStatus(c.Request().Context(), &store.ActivityStatus{
		OwnerID:  ownerID,
		Activity: req.Activity,
		Status:   req.Status,
		Day:      req.Day,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create activity status").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, status)
}

type createReviewEventRequest struct {
	Comment string `json:"comment"`
}

func (s *APIV1Service) createReviewEvent(c echo.Context) error {
	ownerID, err := ownerParam(c)
	if err != nil {
		return err
	}

	var req createReviewEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}

	event, err := s.Store.CreateReviewEvent(c.Request().Context(), &store.ReviewEvent{
		OwnerID: ownerID,
		Comment: req.Comment,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create review event").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, event)
}
