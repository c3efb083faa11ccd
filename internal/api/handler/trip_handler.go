package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
	"github.com/wanderplan/travel-planner-api/internal/core/ports"
)

// TripHandler handles HTTP requests for trip operations.
type TripHandler struct {
	service ports.TripService
}

func NewTripHandler(service ports.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// Create inserts a new trip for an existing user.
//
// @Summary      Create a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTripRequest  true  "Trip details"
// @Success      201   {object}  domain.Trip
// @Failure      404   {object}  errorResponse
// @Router       /trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	planDate, err := domain.ParseDate(req.PlanDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	endDate, err := domain.ParseDate(req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trip, err := h.service.Create(c.Request().Context(), ports.CreateTripInput{
		UserID:          userID,
		DestinationName: req.DestinationName,
		PlanDate:        planDate,
		StartDate:       startDate,
		EndDate:         endDate,
		TripHighlights:  req.TripHighlights,
		LinkPdf:         req.LinkPdf,
		ImgLink:         req.ImgLink,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, trip)
}

// ListByUser returns a user's trips, most recent plan date first.
//
// @Summary      List trips for a user
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id (UUID)"
// @Success      200     {array}   domain.Trip
// @Failure      404     {object}  errorResponse
// @Router       /trips/user/{userId} [get]
func (h *TripHandler) ListByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	trips, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trips)
}

// Get returns a single trip by id.
//
// @Summary      Get a trip by id
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        tripId  path      string  true  "Trip id (UUID)"
// @Success      200     {object}  domain.Trip
// @Failure      404     {object}  errorResponse
// @Router       /trips/{tripId} [get]
func (h *TripHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	trip, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trip)
}

// Update applies a partial update. An empty body returns the unchanged trip.
//
// @Summary      Update a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tripId  path      string             true  "Trip id (UUID)"
// @Param        body    body      updateTripRequest  true  "Fields to update"
// @Success      200     {object}  domain.Trip
// @Failure      404     {object}  errorResponse
// @Router       /trips/{tripId} [put]
func (h *TripHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	var req updateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch, err := req.toPatch()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trip, err := h.service.Update(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trip)
}

// Delete removes a trip.
//
// @Summary      Delete a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        tripId  path      string  true  "Trip id (UUID)"
// @Success      200     {object}  messageResponse
// @Failure      404     {object}  errorResponse
// @Router       /trips/{tripId} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Trip deleted successfully"})
}
