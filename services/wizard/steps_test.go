package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

func validDetails() *models.TravelerDetails {
	return &models.TravelerDetails{
		FullName: "Ana Costa",
		Email:    "ana@example.com",
		Phone:    "+351 900 000 000",
		Country:  "Portugal",
	}
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name         string
		sel          models.BookingSelection
		blockedField string // empty means the gate is open
	}{
		{
			"package step requires a package",
			models.BookingSelection{CurrentStep: StepPackage},
			"packageId",
		},
		{
			"package step opens once selected",
			models.BookingSelection{CurrentStep: StepPackage, PackageID: "pkg-business"},
			"",
		},
		{
			"hotel step requires a hotel",
			models.BookingSelection{CurrentStep: StepHotel, PackageID: "pkg-business"},
			"hotelId",
		},
		{
			"transfer step requires a transfer",
			models.BookingSelection{CurrentStep: StepTransfer},
			"transferId",
		},
		{
			"tours step has no gate",
			models.BookingSelection{CurrentStep: StepTours},
			"",
		},
		{
			"details step requires traveler details",
			models.BookingSelection{CurrentStep: StepDetails},
			"travelerDetails",
		},
		{
			"details step rejects a malformed email",
			models.BookingSelection{CurrentStep: StepDetails, TravelerDetails: &models.TravelerDetails{
				FullName: "Ana Costa", Email: "not-an-email", Phone: "1", Country: "PT",
			}},
			"email",
		},
		{
			"details step opens with valid details",
			models.BookingSelection{CurrentStep: StepDetails, TravelerDetails: validDetails()},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAdvance(&tt.sel)
			if tt.blockedField == "" {
				assert.NoError(t, err)
				return
			}
			var gateErr *GateError
			require.ErrorAs(t, err, &gateErr)
			assert.Equal(t, tt.blockedField, gateErr.Field)
		})
	}
}

func TestPaymentStepNeverAdvances(t *testing.T) {
	sel := models.BookingSelection{
		CurrentStep:     StepPayment,
		PaymentMethod:   models.PaymentMethodCard,
		TravelerDetails: validDetails(),
	}
	assert.Error(t, CanAdvance(&sel), "payment step completes through submission only")
}

func TestValidatePayment(t *testing.T) {
	t.Run("card needs no invoice details", func(t *testing.T) {
		sel := models.BookingSelection{PaymentMethod: models.PaymentMethodCard}
		assert.NoError(t, ValidatePayment(&sel))
	})

	t.Run("missing method is rejected", func(t *testing.T) {
		sel := models.BookingSelection{}
		var gateErr *GateError
		require.ErrorAs(t, ValidatePayment(&sel), &gateErr)
		assert.Equal(t, "paymentMethod", gateErr.Field)
	})

	t.Run("invoice requires company and billing address", func(t *testing.T) {
		sel := models.BookingSelection{
			PaymentMethod:  models.PaymentMethodInvoice,
			InvoiceDetails: &models.InvoiceDetails{Company: "Acme"},
		}
		var gateErr *GateError
		require.ErrorAs(t, ValidatePayment(&sel), &gateErr)
		assert.Equal(t, "invoiceDetails.billingAddress", gateErr.Field)

		sel.InvoiceDetails.BillingAddress = "Rua Augusta 1, Lisboa"
		assert.NoError(t, ValidatePayment(&sel))
	})
}

func TestGateEnforcementAdvancesByOne(t *testing.T) {
	store := NewStore()
	store.SetPackage("pkg-business")
	store.NextStep() // now on Hotel

	sel := store.Selection()
	require.Equal(t, StepHotel, sel.CurrentStep)
	require.Error(t, CanAdvance(&sel), "hotel gate must block without a hotel")

	store.SetHotel("hot-riverside")
	sel = store.Selection()
	require.NoError(t, CanAdvance(&sel))
	store.NextStep()

	assert.Equal(t, StepTransfer, store.Selection().CurrentStep)
}
