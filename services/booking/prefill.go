package booking

import (
	"time"

	"cabadmin/models"
)

// buildPrefill reconstructs the detail form from a persisted booking. The ISO
// pickup timestamp is decomposed into calendar date and time in loc; city ids
// are resolved to display strings, falling back to blank when a lookup row is
// gone.
func buildPrefill(booking *models.Booking, lookups models.LookupSet, loc *time.Location) models.DetailForm {
	form := models.DetailForm{
		TripTypeID: booking.TripTypeID,
		Pickup:     models.CityField{CityID: booking.FromCityID},
		Drop:       models.CityField{CityID: booking.ToCityID},
	}

	if t, err := time.Parse(time.RFC3339, booking.PickupDateTime); err == nil {
		local := t.In(loc)
		form.PickupDate = local.Format("2006-01-02")
		form.PickupTime = local.Format("15:04")
	}

	if city, ok := lookups.CityByID(booking.FromCityID); ok {
		form.Pickup.Input = city.Display()
	}
	if city, ok := lookups.CityByID(booking.ToCityID); ok {
		form.Drop.Input = city.Display()
	}
	return form
}

// prefillIntent normalizes the prefilled form into the intent the loaded
// booking represents.
func prefillIntent(form models.DetailForm) *models.BookingIntent {
	return &models.BookingIntent{
		TripTypeID:     form.TripTypeID,
		PickupLocation: form.Pickup.Input,
		PickupCityID:   form.Pickup.CityID,
		DropLocation:   form.Drop.Input,
		DropCityID:     form.Drop.CityID,
		PickupDate:     form.PickupDate,
		PickupTime:     form.PickupTime,
	}
}
