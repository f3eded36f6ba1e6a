// File: wizard/steps.go
package wizard

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

// Wizard steps, in flow order. Confirmation is terminal and is only reached
// through a successful submission, never through Advance.
const (
	StepPackage      = 1
	StepHotel        = 2
	StepTransfer     = 3
	StepTours        = 4
	StepDetails      = 5
	StepPayment      = 6
	StepConfirmation = 7

	StepCount = 7
)

var stepNames = map[int]string{
	StepPackage:      "Package",
	StepHotel:        "Hotel",
	StepTransfer:     "Transfer",
	StepTours:        "Tours",
	StepDetails:      "Details",
	StepPayment:      "Payment",
	StepConfirmation: "Confirmation",
}

// StepName returns the display name of a step.
func StepName(step int) string {
	if name, ok := stepNames[step]; ok {
		return name
	}
	return fmt.Sprintf("Step %d", step)
}

// GateError reports why the wizard cannot advance from a step. It maps to an
// unprocessable-entity response at the handler boundary.
type GateError struct {
	Step    int
	Field   string
	Message string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("cannot advance from %s step: %s", StepName(e.Step), e.Message)
}

// CanAdvance checks the gate for the selection's current step. A nil return
// means the forward transition is permitted. The Tours step has no gate
// (tours are optional); the Payment step gate belongs to submission.
func CanAdvance(sel *models.BookingSelection) error {
	switch sel.CurrentStep {
	case StepPackage:
		if sel.PackageID == "" {
			return &GateError{Step: StepPackage, Field: "packageId", Message: "select a travel package"}
		}
	case StepHotel:
		if sel.HotelID == "" {
			return &GateError{Step: StepHotel, Field: "hotelId", Message: "select a hotel"}
		}
	case StepTransfer:
		if sel.TransferID == "" {
			return &GateError{Step: StepTransfer, Field: "transferId", Message: "select a transfer option"}
		}
	case StepTours:
		// no gate
	case StepDetails:
		return validateTravelerDetails(sel.TravelerDetails)
	case StepPayment:
		return &GateError{Step: StepPayment, Field: "", Message: "submit the booking to complete this step"}
	case StepConfirmation:
		return &GateError{Step: StepConfirmation, Field: "", Message: "booking is already confirmed"}
	}
	return nil
}

// ValidatePayment checks the Payment step gate: a method must be chosen, and
// invoice payments need a company name and billing address.
func ValidatePayment(sel *models.BookingSelection) error {
	switch sel.PaymentMethod {
	case models.PaymentMethodCard:
		return nil
	case models.PaymentMethodInvoice:
		if sel.InvoiceDetails == nil || strings.TrimSpace(sel.InvoiceDetails.Company) == "" {
			return &GateError{Step: StepPayment, Field: "invoiceDetails.company", Message: "company name is required for invoice payment"}
		}
		if strings.TrimSpace(sel.InvoiceDetails.BillingAddress) == "" {
			return &GateError{Step: StepPayment, Field: "invoiceDetails.billingAddress", Message: "billing address is required for invoice payment"}
		}
		return nil
	case "":
		return &GateError{Step: StepPayment, Field: "paymentMethod", Message: "choose a payment method"}
	default:
		return &GateError{Step: StepPayment, Field: "paymentMethod", Message: fmt.Sprintf("unsupported payment method %q", sel.PaymentMethod)}
	}
}

func validateTravelerDetails(details *models.TravelerDetails) error {
	if details == nil {
		return &GateError{Step: StepDetails, Field: "travelerDetails", Message: "traveler details are required"}
	}
	if strings.TrimSpace(details.FullName) == "" {
		return &GateError{Step: StepDetails, Field: "fullName", Message: "name is required"}
	}
	if _, err := mail.ParseAddress(details.Email); err != nil {
		return &GateError{Step: StepDetails, Field: "email", Message: "a valid email address is required"}
	}
	if strings.TrimSpace(details.Phone) == "" {
		return &GateError{Step: StepDetails, Field: "phone", Message: "phone number is required"}
	}
	if strings.TrimSpace(details.Country) == "" {
		return &GateError{Step: StepDetails, Field: "country", Message: "country is required"}
	}
	return nil
}
