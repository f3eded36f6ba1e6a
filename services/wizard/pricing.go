// File: wizard/pricing.go
package wizard

import "github.com/molatlhegiM/2Gether-Travels-sub000/models"

// NightsPerStay is the flagship event's fixed stay length. Hotel pricing
// multiplies the nightly rate by this constant; check-in/check-out dates on
// the selection are carried but deliberately not used for pricing.
const NightsPerStay = 4

// CatalogSnapshot is the resolved view of the selection's catalog
// references. A nil entry means "not selected" or "not found in the
// catalog" — both contribute zero to the total.
type CatalogSnapshot struct {
	Package  *models.Package
	Hotel    *models.Hotel
	Transfer *models.TransferOption
	Tours    []models.Tour
}

// Total computes the derived total for a selection against a catalog
// snapshot: package + nightly hotel rate x NightsPerStay + transfer + the
// sum of resolved tours. Pure; callers re-run it whenever the selection's
// ids or the snapshot change.
func Total(sel *models.BookingSelection, snap CatalogSnapshot) int64 {
	var total int64
	if snap.Package != nil {
		total += snap.Package.Price
	}
	if snap.Hotel != nil {
		total += snap.Hotel.PricePerNight * NightsPerStay
	}
	if snap.Transfer != nil {
		total += snap.Transfer.Price
	}
	for _, tour := range snap.Tours {
		total += tour.Price
	}
	return total
}

// SummaryLines builds the priced line items for the snapshot, in display
// order: package, hotel (as a 4-night line), transfer, then tours in
// selection order.
func SummaryLines(snap CatalogSnapshot) []models.SummaryLine {
	lines := make([]models.SummaryLine, 0, 3+len(snap.Tours))
	if snap.Package != nil {
		lines = append(lines, models.SummaryLine{
			Kind: "package", ID: snap.Package.ID, Label: snap.Package.Name, Amount: snap.Package.Price,
		})
	}
	if snap.Hotel != nil {
		lines = append(lines, models.SummaryLine{
			Kind: "hotel", ID: snap.Hotel.ID, Label: snap.Hotel.Name, Amount: snap.Hotel.PricePerNight * NightsPerStay,
		})
	}
	if snap.Transfer != nil {
		lines = append(lines, models.SummaryLine{
			Kind: "transfer", ID: snap.Transfer.ID, Label: snap.Transfer.Name, Amount: snap.Transfer.Price,
		})
	}
	for _, tour := range snap.Tours {
		lines = append(lines, models.SummaryLine{
			Kind: "tour", ID: tour.ID, Label: tour.Name, Amount: tour.Price,
		})
	}
	return lines
}
