package wizard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

func TestTourToggling(t *testing.T) {
	t.Run("should be idempotent when adding the same tour twice", func(t *testing.T) {
		store := NewStore()
		store.AddTour("tour-wine")
		store.AddTour("tour-wine")

		assert.Equal(t, []string{"tour-wine"}, store.Selection().TourIDs)
	})

	t.Run("should keep insertion order", func(t *testing.T) {
		store := NewStore()
		store.AddTour("tour-wine")
		store.AddTour("tour-coast")
		store.AddTour("tour-sunset")
		store.RemoveTour("tour-coast")

		assert.Equal(t, []string{"tour-wine", "tour-sunset"}, store.Selection().TourIDs)
	})

	t.Run("should ignore removal of an absent tour", func(t *testing.T) {
		store := NewStore()
		store.AddTour("tour-wine")
		store.RemoveTour("tour-coast")

		assert.Equal(t, []string{"tour-wine"}, store.Selection().TourIDs)
	})
}

func TestStepClamping(t *testing.T) {
	t.Run("should not go below the first step", func(t *testing.T) {
		store := NewStore()
		store.PreviousStep()
		store.PreviousStep()

		assert.Equal(t, StepPackage, store.Selection().CurrentStep)
	})

	t.Run("should not go beyond the last step", func(t *testing.T) {
		store := NewStore()
		for i := 0; i < StepCount+3; i++ {
			store.NextStep()
		}

		assert.Equal(t, StepCount, store.Selection().CurrentStep)
	})

	t.Run("should stay inside the range for any call sequence", func(t *testing.T) {
		store := NewStore()
		moves := []func(){store.NextStep, store.NextStep, store.PreviousStep, store.NextStep,
			store.PreviousStep, store.PreviousStep, store.PreviousStep, store.NextStep}
		for _, move := range moves {
			move()
			step := store.Selection().CurrentStep
			assert.GreaterOrEqual(t, step, StepPackage)
			assert.LessOrEqual(t, step, StepCount)
		}
	})

	t.Run("should clamp SetCurrentStep", func(t *testing.T) {
		store := NewStore()
		store.SetCurrentStep(42)
		assert.Equal(t, StepCount, store.Selection().CurrentStep)
		store.SetCurrentStep(-1)
		assert.Equal(t, StepPackage, store.Selection().CurrentStep)
	})
}

func TestPatchTravelerDetails(t *testing.T) {
	store := NewStore()
	store.SetTravelerDetails(models.TravelerDetails{
		FullName: "Ana Costa",
		Email:    "ana@example.com",
		Phone:    "+351 900 000 000",
		Country:  "Portugal",
	})

	phone := "+351 911 111 111"
	store.PatchTravelerDetails(models.TravelerDetailsPatch{Phone: &phone})

	details := store.Selection().TravelerDetails
	require.NotNil(t, details)
	assert.Equal(t, "Ana Costa", details.FullName, "untouched fields must survive a patch")
	assert.Equal(t, "ana@example.com", details.Email)
	assert.Equal(t, phone, details.Phone)
}

func TestReset(t *testing.T) {
	store := NewStore()
	store.SetPackage("pkg-business")
	store.SetHotel("hot-riverside")
	store.SetTransfer("trf-private")
	store.AddTour("tour-wine")
	store.SetTravelerDetails(models.TravelerDetails{FullName: "Ana Costa", Email: "ana@example.com"})
	store.SetPaymentMethod(models.PaymentMethodInvoice)
	store.SetInvoiceDetails(models.InvoiceDetails{Company: "Acme", BillingAddress: "1 Main St"})
	store.SetCurrentStep(StepPayment)
	store.SetTotalAmount(367000)

	store.Reset()

	sel := store.Selection()
	assert.Empty(t, sel.PackageID)
	assert.Empty(t, sel.HotelID)
	assert.Empty(t, sel.TransferID)
	assert.Empty(t, sel.TourIDs)
	assert.Nil(t, sel.TravelerDetails)
	assert.Empty(t, sel.PaymentMethod)
	assert.Nil(t, sel.InvoiceDetails)
	assert.Equal(t, StepPackage, sel.CurrentStep)
	assert.Zero(t, sel.TotalAmount)
}

func TestSelectionRoundTrip(t *testing.T) {
	store := NewStore()
	store.SetPackage("pkg-business")
	store.SetHotel("hot-riverside")
	store.SetTransfer("trf-private")
	store.AddTour("tour-wine")
	store.AddTour("tour-coast")
	store.SetTravelerDetails(models.TravelerDetails{
		FullName: "Ana Costa",
		Email:    "ana@example.com",
		Phone:    "+351 900 000 000",
		Country:  "Portugal",
		Company:  "Acme Lda",
	})
	store.SetPaymentMethod(models.PaymentMethodInvoice)
	store.SetInvoiceDetails(models.InvoiceDetails{
		Company:        "Acme Lda",
		VATNumber:      "PT123456789",
		PONumber:       "PO-42",
		BillingAddress: "Rua Augusta 1, Lisboa",
	})
	store.SetCurrentStep(StepPayment)
	store.SetTotalAmount(367000)
	original := store.Selection()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored models.BookingSelection
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, original, restored)
}

func TestRestoreStoreClampsStep(t *testing.T) {
	restored := RestoreStore(models.BookingSelection{CurrentStep: 99})
	assert.Equal(t, StepCount, restored.Selection().CurrentStep)

	restored = RestoreStore(models.BookingSelection{CurrentStep: 0})
	assert.Equal(t, StepPackage, restored.Selection().CurrentStep)
	assert.NotNil(t, restored.Selection().TourIDs)
}
