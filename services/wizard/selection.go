// File: wizard/selection_store.go
package wizard

import "github.com/molatlhegiM/2Gether-Travels-sub000/models"

// Store is the in-memory selection state container for one wizard session.
// Every mutation is total: operations only assign local fields and cannot
// fail. Validity of referenced catalog ids is enforced at the gates and at
// submission, never here.
type Store struct {
	sel models.BookingSelection
}

// NewStore returns a store holding the initial empty selection (step 1,
// total 0, no tours).
func NewStore() *Store {
	return &Store{sel: emptySelection()}
}

// RestoreStore wraps a previously persisted selection. Out-of-range step
// values are clamped back into the wizard's range.
func RestoreStore(sel models.BookingSelection) *Store {
	if sel.CurrentStep < StepPackage {
		sel.CurrentStep = StepPackage
	}
	if sel.CurrentStep > StepCount {
		sel.CurrentStep = StepCount
	}
	if sel.TourIDs == nil {
		sel.TourIDs = []string{}
	}
	return &Store{sel: sel}
}

func emptySelection() models.BookingSelection {
	return models.BookingSelection{
		TourIDs:     []string{},
		CurrentStep: StepPackage,
		TotalAmount: 0,
	}
}

// Selection returns a copy of the current selection.
func (s *Store) Selection() models.BookingSelection {
	cp := s.sel
	cp.TourIDs = append([]string{}, s.sel.TourIDs...)
	if s.sel.TravelerDetails != nil {
		td := *s.sel.TravelerDetails
		cp.TravelerDetails = &td
	}
	if s.sel.InvoiceDetails != nil {
		inv := *s.sel.InvoiceDetails
		cp.InvoiceDetails = &inv
	}
	return cp
}

func (s *Store) SetPackage(id string)  { s.sel.PackageID = id }
func (s *Store) SetHotel(id string)    { s.sel.HotelID = id }
func (s *Store) SetTransfer(id string) { s.sel.TransferID = id }

// AddTour inserts the id if absent; a second call with the same id is a
// no-op. Insertion order is kept for display.
func (s *Store) AddTour(id string) {
	for _, t := range s.sel.TourIDs {
		if t == id {
			return
		}
	}
	s.sel.TourIDs = append(s.sel.TourIDs, id)
}

// RemoveTour removes the id if present; removing an absent id is a no-op.
func (s *Store) RemoveTour(id string) {
	for i, t := range s.sel.TourIDs {
		if t == id {
			s.sel.TourIDs = append(s.sel.TourIDs[:i], s.sel.TourIDs[i+1:]...)
			return
		}
	}
}

// SetTravelerDetails replaces the record wholesale.
func (s *Store) SetTravelerDetails(details models.TravelerDetails) {
	s.sel.TravelerDetails = &details
}

// PatchTravelerDetails merges the non-nil fields of the patch into the
// current record, creating it if absent.
func (s *Store) PatchTravelerDetails(patch models.TravelerDetailsPatch) {
	details := models.TravelerDetails{}
	if s.sel.TravelerDetails != nil {
		details = *s.sel.TravelerDetails
	}
	if patch.FullName != nil {
		details.FullName = *patch.FullName
	}
	if patch.Email != nil {
		details.Email = *patch.Email
	}
	if patch.Phone != nil {
		details.Phone = *patch.Phone
	}
	if patch.Country != nil {
		details.Country = *patch.Country
	}
	if patch.Company != nil {
		details.Company = *patch.Company
	}
	if patch.SpecialRequests != nil {
		details.SpecialRequests = *patch.SpecialRequests
	}
	s.sel.TravelerDetails = &details
}

func (s *Store) SetPaymentMethod(method models.PaymentMethod) {
	s.sel.PaymentMethod = method
}

func (s *Store) SetInvoiceDetails(details models.InvoiceDetails) {
	s.sel.InvoiceDetails = &details
}

func (s *Store) SetDates(checkIn, checkOut string) {
	s.sel.CheckInDate = checkIn
	s.sel.CheckOutDate = checkOut
}

// SetCurrentStep clamps the given step into [1, StepCount].
func (s *Store) SetCurrentStep(step int) {
	if step < StepPackage {
		step = StepPackage
	}
	if step > StepCount {
		step = StepCount
	}
	s.sel.CurrentStep = step
}

// NextStep advances by one, clamping at the last step.
func (s *Store) NextStep() {
	if s.sel.CurrentStep < StepCount {
		s.sel.CurrentStep++
	}
}

// PreviousStep goes back by one, clamping at the first step.
func (s *Store) PreviousStep() {
	if s.sel.CurrentStep > StepPackage {
		s.sel.CurrentStep--
	}
}

// SetTotalAmount is written by the price aggregation on save; UI-facing code
// never calls it directly.
func (s *Store) SetTotalAmount(amount int64) {
	s.sel.TotalAmount = amount
}

// Reset restores the initial empty selection.
func (s *Store) Reset() {
	s.sel = emptySelection()
}
