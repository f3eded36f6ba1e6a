package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingRepo "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/booking"
	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/booking"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/wizard"
	"github.com/molatlhegiM/2Gether-Travels-sub000/utils"
)

// BookingHandler serves booking submission and retrieval.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// createBookingRequest accepts either a wizard session reference or an
// inline selection (one-shot clients that never opened a session).
type createBookingRequest struct {
	SessionID string                   `json:"sessionId,omitempty"`
	Selection *models.BookingSelection `json:"selection,omitempty"`
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	var (
		created *models.Booking
		err     error
	)
	switch {
	case req.SessionID != "":
		created, err = h.Service.SubmitSession(c.Request.Context(), req.SessionID)
	case req.Selection != nil:
		created, err = h.Service.SubmitSelection(c.Request.Context(), *req.Selection)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", "provide sessionId or selection")
		return
	}
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	found, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, found)
}

func bookingError(c *gin.Context, err error) {
	var gateErr *wizard.GateError
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "wizard session not found", err.Error())
	case errors.As(err, &gateErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "booking is incomplete",
			"step":    gateErr.Step,
			"field":   gateErr.Field,
			"details": gateErr.Message,
		})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking submission failed", err.Error())
	}
}
