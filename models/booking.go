package models

// Address is created once per booking side (pickup/drop) and never updated in place.
type Address struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	LatLong string `json:"lat_long,omitempty"`
}

// User is looked up by email (idempotent find-or-create) or reused verbatim
// when editing a booking.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingIntent is the ephemeral, form-held summary of trip search parameters.
// The city ids must resolve against the loaded city table before submission.
type BookingIntent struct {
	TripTypeID     int    `json:"tripTypeId"`
	PickupLocation string `json:"pickupLocation"`
	PickupCityID   int    `json:"pickupCityId"`
	DropLocation   string `json:"dropLocation"`
	DropCityID     int    `json:"dropCityId"`
	PickupDate     string `json:"pickupDate"` // "YYYY-MM-DD"
	PickupTime     string `json:"pickupTime"` // "HH:mm"
}

// Booking is the persisted, authoritative record returned by the backend.
type Booking struct {
	ID              int     `json:"id"`
	UserID          int     `json:"userId"`
	VehicleID       int     `json:"vehicleId"`
	FromCityID      int     `json:"fromCityId"`
	ToCityID        int     `json:"toCityId"`
	PickupAddressID string  `json:"pickupAddressId"`
	DropAddressID   string  `json:"dropAddressId"`
	PickupDateTime  string  `json:"pickupDateTime"` // ISO-8601 UTC
	TripTypeID      int     `json:"tripTypeId"`
	Fare            float64 `json:"fare"`
	CreatedAt       string  `json:"createdAt"`
}

// BookingRow is a booking joined against the lookup tables for listing.
// Display fields fall back to the raw id string when a join misses.
type BookingRow struct {
	ID             int     `json:"id"`
	TripType       string  `json:"tripType"`
	FromCity       string  `json:"fromCity"`
	ToCity         string  `json:"toCity"`
	Vehicle        string  `json:"vehicle"`
	PickupDateTime string  `json:"pickupDateTime"` // "YYYY-MM-DD HH:mm"
	Fare           float64 `json:"fare"`
}

// PlaceSuggestion is one entry from the external places autocomplete.
type PlaceSuggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}
