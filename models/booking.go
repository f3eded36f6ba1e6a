package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
)

// Booking is the immutable record created when a wizard session is submitted.
// It flattens the selection at submission time together with the server-side
// repriced total; the session's own total is never trusted.
type Booking struct {
	ID               string          `bson:"id" json:"id"`
	BookingReference string          `bson:"booking_reference" json:"bookingReference"`
	PackageID        string          `bson:"package_id" json:"packageId"`
	HotelID          string          `bson:"hotel_id" json:"hotelId"`
	TransferID       string          `bson:"transfer_id" json:"transferId"`
	TourIDs          []string        `bson:"tour_ids" json:"tourIds"`
	TravelerDetails  TravelerDetails `bson:"traveler_details" json:"travelerDetails"`
	PaymentMethod    PaymentMethod   `bson:"payment_method" json:"paymentMethod"`
	InvoiceDetails   *InvoiceDetails `bson:"invoice_details,omitempty" json:"invoiceDetails,omitempty"`
	CheckInDate      string          `bson:"check_in_date,omitempty" json:"checkInDate,omitempty"`
	CheckOutDate     string          `bson:"check_out_date,omitempty" json:"checkOutDate,omitempty"`
	TotalAmount      int64           `bson:"total_amount" json:"totalAmount"`
	Currency         string          `bson:"currency" json:"currency"`
	BookingStatus    string          `bson:"booking_status" json:"bookingStatus"`
	PaymentID        string          `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	CreatedAt        time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `bson:"updated_at" json:"updatedAt"`
}

// PaymentRequest carries what the payment handler needs to settle a booking.
type PaymentRequest struct {
	BookingReference string
	Amount           int64
	Currency         string
	Method           PaymentMethod
	CustomerEmail    string
	CustomerName     string
}
