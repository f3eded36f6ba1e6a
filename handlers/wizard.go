package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/wizard"
	"github.com/molatlhegiM/2Gether-Travels-sub000/utils"
)

// WizardHandler exposes the booking wizard session over HTTP. Each mutation
// endpoint returns the updated session so the client always renders from the
// server's view of the selection.
type WizardHandler struct {
	Sessions wizard.SessionService
}

func NewWizardHandler(sessions wizard.SessionService) *WizardHandler {
	return &WizardHandler{Sessions: sessions}
}

// wizardError maps wizard-layer errors onto HTTP statuses: missing sessions
// become 404, blocked gates 422, everything else 500.
func wizardError(c *gin.Context, err error) {
	var gateErr *wizard.GateError
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "wizard session not found", err.Error())
	case errors.As(err, &gateErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "cannot proceed",
			"step":    gateErr.Step,
			"field":   gateErr.Field,
			"details": gateErr.Message,
		})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "wizard operation failed", err.Error())
	}
}

// CreateSessionHandler starts a session. Deep-link preseeds may arrive in
// the JSON body or as query parameters (package, hotel, transfer, tour).
func (h *WizardHandler) CreateSessionHandler(c *gin.Context) {
	var seed wizard.SessionSeed
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&seed); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid session seed", err.Error())
			return
		}
	}
	if v := c.Query("package"); v != "" {
		seed.PackageID = v
	}
	if v := c.Query("hotel"); v != "" {
		seed.HotelID = v
	}
	if v := c.Query("transfer"); v != "" {
		seed.TransferID = v
	}
	if tours := c.QueryArray("tour"); len(tours) > 0 {
		seed.TourIDs = append(seed.TourIDs, tours...)
	}

	session, err := h.Sessions.Create(c.Request.Context(), seed)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *WizardHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Sessions.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) GetSummaryHandler(c *gin.Context) {
	summary, err := h.Sessions.Summary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type selectRequest struct {
	ID string `json:"id" binding:"required"`
}

func (h *WizardHandler) SelectPackageHandler(c *gin.Context) {
	h.applySelect(c, h.Sessions.SelectPackage)
}

func (h *WizardHandler) SelectHotelHandler(c *gin.Context) {
	h.applySelect(c, h.Sessions.SelectHotel)
}

func (h *WizardHandler) SelectTransferHandler(c *gin.Context) {
	h.applySelect(c, h.Sessions.SelectTransfer)
}

func (h *WizardHandler) applySelect(c *gin.Context, op func(ctx context.Context, sessionID, id string) (*models.WizardSession, error)) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid selection", err.Error())
		return
	}
	session, err := op(c.Request.Context(), c.Param("sessionID"), req.ID)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) AddTourHandler(c *gin.Context) {
	session, err := h.Sessions.AddTour(c.Request.Context(), c.Param("sessionID"), c.Param("tourID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) RemoveTourHandler(c *gin.Context) {
	session, err := h.Sessions.RemoveTour(c.Request.Context(), c.Param("sessionID"), c.Param("tourID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) SetTravelerDetailsHandler(c *gin.Context) {
	var details models.TravelerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid traveler details", err.Error())
		return
	}
	session, err := h.Sessions.SetTravelerDetails(c.Request.Context(), c.Param("sessionID"), details)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) PatchTravelerDetailsHandler(c *gin.Context) {
	var patch models.TravelerDetailsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid traveler details patch", err.Error())
		return
	}
	session, err := h.Sessions.PatchTravelerDetails(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type paymentMethodRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required"`
}

func (h *WizardHandler) SetPaymentMethodHandler(c *gin.Context) {
	var req paymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment method", err.Error())
		return
	}
	if req.Method != models.PaymentMethodCard && req.Method != models.PaymentMethodInvoice {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment method", string(req.Method))
		return
	}
	session, err := h.Sessions.SetPaymentMethod(c.Request.Context(), c.Param("sessionID"), req.Method)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) SetInvoiceDetailsHandler(c *gin.Context) {
	var details models.InvoiceDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid invoice details", err.Error())
		return
	}
	session, err := h.Sessions.SetInvoiceDetails(c.Request.Context(), c.Param("sessionID"), details)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) AdvanceHandler(c *gin.Context) {
	session, err := h.Sessions.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) BackHandler(c *gin.Context) {
	session, err := h.Sessions.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) ResetHandler(c *gin.Context) {
	session, err := h.Sessions.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
