package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepo "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/booking"
	catalogRepo "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/catalog"
	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/wizard"
)

type fakeBookingRepo struct {
	created []*models.Booking
	byID    map[string]*models.Booking
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if r.byID == nil {
		r.byID = map[string]*models.Booking{}
	}
	r.created = append(r.created, booking)
	r.byID[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := r.byID[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *fakeBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	for _, b := range r.byID {
		if b.BookingReference == reference {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

type fakePayments struct {
	lastRequest models.PaymentRequest
	err         error
}

func (p *fakePayments) ProcessPayment(ctx context.Context, req models.PaymentRequest) (string, error) {
	p.lastRequest = req
	if p.err != nil {
		return "", p.err
	}
	return "pay_test", nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakePayments) {
	repo := &fakeBookingRepo{}
	payments := &fakePayments{}
	resolver := &wizard.DefaultSessionService{
		Catalog: catalogRepo.NewSeededCatalogRepo(),
		Logger:  zap.NewNop(),
	}
	svc := &DefaultBookingService{
		Resolver: resolver,
		Repo:     repo,
		Payments: payments,
		Currency: "eur",
		Logger:   zap.NewNop(),
	}
	return svc, repo, payments
}

func completeSelection() models.BookingSelection {
	return models.BookingSelection{
		PackageID:  "pkg-business",
		HotelID:    "hot-riverside",
		TransferID: "trf-private",
		TourIDs:    []string{"tour-wine", "tour-coast"},
		TravelerDetails: &models.TravelerDetails{
			FullName: "Ana Costa",
			Email:    "ana@example.com",
			Phone:    "+351 900 000 000",
			Country:  "Portugal",
		},
		PaymentMethod: models.PaymentMethodInvoice,
		InvoiceDetails: &models.InvoiceDetails{
			Company:        "Acme Lda",
			BillingAddress: "Rua Augusta 1, Lisboa",
		},
		CurrentStep: wizard.StepPayment,
	}
}

func TestSubmitSelection(t *testing.T) {
	t.Run("should create a confirmed booking with a server-side total", func(t *testing.T) {
		svc, repo, payments := newTestService()
		sel := completeSelection()
		sel.TotalAmount = 1 // client totals are never trusted

		booking, err := svc.SubmitSelection(context.Background(), sel)

		require.NoError(t, err)
		assert.Equal(t, int64(367000), booking.TotalAmount)
		assert.Equal(t, models.BookingStatusConfirmed, booking.BookingStatus)
		assert.Equal(t, "eur", booking.Currency)
		assert.NotEmpty(t, booking.ID)
		assert.Regexp(t, `^2GT-[0-9A-F]{8}$`, booking.BookingReference)
		assert.Equal(t, "pay_test", booking.PaymentID)
		require.Len(t, repo.created, 1)
		assert.Equal(t, int64(367000), payments.lastRequest.Amount)
		assert.Equal(t, models.PaymentMethodInvoice, payments.lastRequest.Method)
	})

	t.Run("should reject a selection missing a gated field", func(t *testing.T) {
		svc, repo, _ := newTestService()
		sel := completeSelection()
		sel.HotelID = ""

		_, err := svc.SubmitSelection(context.Background(), sel)

		var gateErr *wizard.GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, "hotelId", gateErr.Field)
		assert.Empty(t, repo.created)
	})

	t.Run("should reject invoice payment without billing details", func(t *testing.T) {
		svc, repo, _ := newTestService()
		sel := completeSelection()
		sel.InvoiceDetails = nil

		_, err := svc.SubmitSelection(context.Background(), sel)

		var gateErr *wizard.GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, wizard.StepPayment, gateErr.Step)
		assert.Empty(t, repo.created)
	})

	t.Run("should reject a selection whose package no longer exists", func(t *testing.T) {
		svc, repo, _ := newTestService()
		sel := completeSelection()
		sel.PackageID = "pkg-discontinued"

		_, err := svc.SubmitSelection(context.Background(), sel)

		var gateErr *wizard.GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, "packageId", gateErr.Field)
		assert.Empty(t, repo.created)
	})

	t.Run("should not persist a booking when payment fails", func(t *testing.T) {
		svc, repo, payments := newTestService()
		payments.err = errors.New("card declined")

		_, err := svc.SubmitSelection(context.Background(), completeSelection())

		require.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("tours stay optional", func(t *testing.T) {
		svc, _, _ := newTestService()
		sel := completeSelection()
		sel.TourIDs = nil

		booking, err := svc.SubmitSelection(context.Background(), sel)

		require.NoError(t, err)
		assert.Equal(t, int64(210000+4*28000+12000), booking.TotalAmount)
	})
}

func TestGetBooking(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.SubmitSelection(context.Background(), completeSelection())
	require.NoError(t, err)

	found, err := svc.GetBooking(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.BookingReference, found.BookingReference)

	_, err = svc.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
}
