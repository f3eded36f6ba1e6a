// File: booking/booking_service.go
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/booking"
	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/wizard"
)

// BookingService finalizes wizard sessions into booking records.
type BookingService interface {
	SubmitSession(ctx context.Context, sessionID string) (*models.Booking, error)
	SubmitSelection(ctx context.Context, sel models.BookingSelection) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Sessions wizard.SessionService
	Resolver *wizard.DefaultSessionService
	Repo     bookingRepo.BookingRepository
	Payments PaymentHandler
	Currency string
	Logger   *zap.Logger
}

// SubmitSession finalizes the session's accumulated selection. On success
// the session moves to the terminal Confirmation step; on any failure the
// session is left untouched so the user can correct and resubmit.
func (s *DefaultBookingService) SubmitSession(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	booking, err := s.SubmitSelection(ctx, session.Selection)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.MarkConfirmed(ctx, sessionID); err != nil {
		// The booking exists; a stale session is recoverable, so log and move on.
		s.Logger.Warn("failed to mark wizard session confirmed",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return booking, nil
}

// SubmitSelection validates the selection's gates, reprices it against the
// live catalog, settles payment, and persists the booking record.
func (s *DefaultBookingService) SubmitSelection(ctx context.Context, sel models.BookingSelection) (*models.Booking, error) {
	if err := validateSelection(&sel); err != nil {
		return nil, err
	}
	if err := wizard.ValidatePayment(&sel); err != nil {
		return nil, err
	}

	snap, err := s.Resolver.Resolve(ctx, &sel)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve selection: %w", err)
	}
	if snap.Package == nil {
		return nil, &wizard.GateError{Step: wizard.StepPackage, Field: "packageId", Message: "selected package no longer exists"}
	}
	if snap.Hotel == nil {
		return nil, &wizard.GateError{Step: wizard.StepHotel, Field: "hotelId", Message: "selected hotel no longer exists"}
	}
	if snap.Transfer == nil {
		return nil, &wizard.GateError{Step: wizard.StepTransfer, Field: "transferId", Message: "selected transfer no longer exists"}
	}

	// The client-side total is never trusted; the booking records the
	// server-side repriced amount.
	total := wizard.Total(&sel, snap)
	reference := newBookingReference()

	paymentID, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		BookingReference: reference,
		Amount:           total,
		Currency:         s.Currency,
		Method:           sel.PaymentMethod,
		CustomerEmail:    sel.TravelerDetails.Email,
		CustomerName:     sel.TravelerDetails.FullName,
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:               uuid.New().String(),
		BookingReference: reference,
		PackageID:        sel.PackageID,
		HotelID:          sel.HotelID,
		TransferID:       sel.TransferID,
		TourIDs:          append([]string{}, sel.TourIDs...),
		TravelerDetails:  *sel.TravelerDetails,
		PaymentMethod:    sel.PaymentMethod,
		InvoiceDetails:   sel.InvoiceDetails,
		CheckInDate:      sel.CheckInDate,
		CheckOutDate:     sel.CheckOutDate,
		TotalAmount:      total,
		Currency:         s.Currency,
		BookingStatus:    models.BookingStatusConfirmed,
		PaymentID:        paymentID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("reference", booking.BookingReference),
		zap.Int64("totalAmount", booking.TotalAmount),
		zap.String("paymentMethod", string(booking.PaymentMethod)))
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

// validateSelection re-runs the content-step gates so a deep-linked or
// hand-built selection cannot skip them.
func validateSelection(sel *models.BookingSelection) error {
	for step := wizard.StepPackage; step <= wizard.StepDetails; step++ {
		probe := *sel
		probe.CurrentStep = step
		if err := wizard.CanAdvance(&probe); err != nil {
			return err
		}
	}
	return nil
}

// newBookingReference builds a short human-readable reference, e.g. "2GT-9F3A21C7".
func newBookingReference() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "2GT-" + raw[:8]
}
