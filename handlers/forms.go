package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/forms"
	"github.com/molatlhegiM/2Gether-Travels-sub000/utils"
)

// FormsHandler serves the marketing contact and newsletter forms.
type FormsHandler struct {
	Service forms.FormsService
}

func NewFormsHandler(svc forms.FormsService) *FormsHandler {
	return &FormsHandler{Service: svc}
}

func (h *FormsHandler) ContactHandler(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid contact submission", err.Error())
		return
	}
	created, err := h.Service.SubmitContact(c.Request.Context(), msg)
	if err != nil {
		formsError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thanks for getting in touch. We will reply within one business day.",
		"id":      created.ID,
	})
}

type newsletterRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *FormsHandler) NewsletterHandler(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid newsletter submission", err.Error())
		return
	}
	if err := h.Service.SubscribeNewsletter(c.Request.Context(), req.Email); err != nil {
		formsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You are subscribed."})
}

func formsError(c *gin.Context, err error) {
	var vErr *forms.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "validation failed",
			"field":   vErr.Field,
			"details": vErr.Message,
		})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "form submission failed", err.Error())
}
