package booking

import (
	"strings"

	"cabadmin/models"
)

// CitySuggestions returns the cities whose "Name, State" display contains the
// input, case-insensitively. An exact display match yields exactly one entry.
func CitySuggestions(cities []models.City, input string) []models.City {
	needle := strings.ToLower(input)
	var matches []models.City
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c.Display()), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

// ValidateDetail checks the detail form and emits the normalized booking
// intent. Both location fields must be non-empty and resolved to a city known
// to the loaded lookup tables; free typing without a selection leaves the id
// cleared and fails here.
func ValidateDetail(lookups models.LookupSet, form models.DetailForm) (*models.BookingIntent, error) {
	if form.Pickup.Input == "" {
		return nil, NewValidationError(FieldPickup, "Pickup location required")
	}
	if form.Drop.Input == "" {
		return nil, NewValidationError(FieldDrop, "Drop location required")
	}
	if form.Pickup.CityID == 0 {
		return nil, NewValidationError(FieldPickup, "Please select a valid pickup city")
	}
	if form.Drop.CityID == 0 {
		return nil, NewValidationError(FieldDrop, "Please select a valid drop city")
	}
	if _, ok := lookups.CityByID(form.Pickup.CityID); !ok {
		return nil, NewValidationError(FieldPickup, "Please select a valid pickup city")
	}
	if _, ok := lookups.CityByID(form.Drop.CityID); !ok {
		return nil, NewValidationError(FieldDrop, "Please select a valid drop city")
	}

	return &models.BookingIntent{
		TripTypeID:     form.TripTypeID,
		PickupLocation: form.Pickup.Input,
		PickupCityID:   form.Pickup.CityID,
		DropLocation:   form.Drop.Input,
		DropCityID:     form.Drop.CityID,
		PickupDate:     form.PickupDate,
		PickupTime:     form.PickupTime,
	}, nil
}

// defaultDetail seeds the detail form for the create flow: first trip type
// and the placeholder date/time the search form opens with.
func defaultDetail(lookups models.LookupSet) models.DetailForm {
	form := models.DetailForm{
		PickupDate: "2025-05-05",
		PickupTime: "07:00",
	}
	if len(lookups.TripTypes) > 0 {
		form.TripTypeID = lookups.TripTypes[0].ID
	}
	return form
}
