package models

// PaymentMethod is how the traveler intends to settle the booking.
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodInvoice PaymentMethod = "invoice"
)

// TravelerDetails holds the lead traveler's contact information.
type TravelerDetails struct {
	FullName        string `bson:"full_name" json:"fullName"`
	Email           string `bson:"email" json:"email"`
	Phone           string `bson:"phone" json:"phone"`
	Country         string `bson:"country" json:"country"`
	Company         string `bson:"company,omitempty" json:"company,omitempty"`
	SpecialRequests string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
}

// TravelerDetailsPatch is a merge patch for TravelerDetails. Nil fields are
// left untouched so a caller updating one field cannot blank the others.
type TravelerDetailsPatch struct {
	FullName        *string `json:"fullName,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Country         *string `json:"country,omitempty"`
	Company         *string `json:"company,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// InvoiceDetails holds billing information; meaningful only when the
// payment method is "invoice".
type InvoiceDetails struct {
	Company        string `bson:"company" json:"company"`
	VATNumber      string `bson:"vat_number,omitempty" json:"vatNumber,omitempty"`
	PONumber       string `bson:"po_number,omitempty" json:"poNumber,omitempty"`
	BillingAddress string `bson:"billing_address" json:"billingAddress"`
}

// BookingSelection is the in-progress state of one booking wizard session:
// the traveler's accumulated choices plus their position in the flow.
// TotalAmount is derived from the catalog on every save and is never
// authoritative beyond display continuity.
type BookingSelection struct {
	PackageID       string           `json:"packageId,omitempty"`
	HotelID         string           `json:"hotelId,omitempty"`
	TransferID      string           `json:"transferId,omitempty"`
	TourIDs         []string         `json:"tourIds"`
	TravelerDetails *TravelerDetails `json:"travelerDetails,omitempty"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod,omitempty"`
	InvoiceDetails  *InvoiceDetails  `json:"invoiceDetails,omitempty"`
	CheckInDate     string           `json:"checkInDate,omitempty"`
	CheckOutDate    string           `json:"checkOutDate,omitempty"`
	CurrentStep     int              `json:"currentStep"`
	TotalAmount     int64            `json:"totalAmount"`
}

// WizardSession pairs a BookingSelection with its session identity.
type WizardSession struct {
	SessionID string           `json:"sessionId"`
	Selection BookingSelection `json:"selection"`
}

// SummaryLine is one priced component of the current selection.
type SummaryLine struct {
	Kind   string `json:"kind"` // "package", "hotel", "transfer", "tour"
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// SelectionSummary is the resolved, priced view of a wizard session.
type SelectionSummary struct {
	SessionID   string        `json:"sessionId"`
	Lines       []SummaryLine `json:"lines"`
	TotalAmount int64         `json:"totalAmount"`
	Currency    string        `json:"currency"`
	CurrentStep int           `json:"currentStep"`
	StepName    string        `json:"stepName"`
}
