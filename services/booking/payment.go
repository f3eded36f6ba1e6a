// File: booking/payment.go
package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

// PaymentHandler settles a booking's payment and returns a payment id.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (string, error)
}

// UnifiedPaymentHandler routes by payment method: card payments go through
// Stripe, invoice payments short-circuit to a pending invoice reference that
// accounting settles out of band.
type UnifiedPaymentHandler struct {
	Logger *zap.Logger
}

func NewPaymentHandler(logger *zap.Logger) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{Logger: logger}
}

func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (string, error) {
	if req.Amount <= 0 {
		return "", fmt.Errorf("invalid payment amount: %d", req.Amount)
	}
	switch req.Method {
	case models.PaymentMethodCard:
		return h.processCardPayment(ctx, req)
	case models.PaymentMethodInvoice:
		return h.processInvoicePayment(ctx, req)
	default:
		return "", fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *UnifiedPaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(req.Amount),
		Currency:     stripe.String(req.Currency),
		ReceiptEmail: stripe.String(req.CustomerEmail),
		Description:  stripe.String("Conference travel booking " + req.BookingReference),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingReference", req.BookingReference)
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}

	h.Logger.Info("card payment intent created",
		zap.String("paymentIntent", pi.ID),
		zap.String("reference", req.BookingReference))
	return pi.ID, nil
}

func (h *UnifiedPaymentHandler) processInvoicePayment(ctx context.Context, req models.PaymentRequest) (string, error) {
	invoiceID := "inv_" + uuid.New().String()
	h.Logger.Info("invoice payment recorded",
		zap.String("invoice", invoiceID),
		zap.String("reference", req.BookingReference))
	return invoiceID, nil
}
