package models

// Catalog entities are read-only reference data for a single flagship event.
// All prices are integer minor currency units (cents).

// Package represents a conference-travel bundle (ticket, accommodation tier, perks).
type Package struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Price       int64    `bson:"price" json:"price"`
	Includes    []string `bson:"includes,omitempty" json:"includes,omitempty"`
	ImageURL    string   `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}

// Hotel represents a partner hotel priced per night.
type Hotel struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	Description     string `bson:"description" json:"description"`
	PricePerNight   int64  `bson:"price_per_night" json:"pricePerNight"`
	Stars           int    `bson:"stars" json:"stars"`
	DistanceToVenue string `bson:"distance_to_venue,omitempty" json:"distanceToVenue,omitempty"`
	ImageURL        string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}

// TransferOption represents an airport-to-hotel transfer choice.
type TransferOption struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Price       int64  `bson:"price" json:"price"`
	Vehicle     string `bson:"vehicle,omitempty" json:"vehicle,omitempty"`
	Capacity    int    `bson:"capacity,omitempty" json:"capacity,omitempty"`
}

// Tour represents an optional excursion sold alongside the event.
type Tour struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Description   string `bson:"description" json:"description"`
	Price         int64  `bson:"price" json:"price"`
	Category      string `bson:"category" json:"category"`
	DurationHours int    `bson:"duration_hours,omitempty" json:"durationHours,omitempty"`
	ImageURL      string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}
