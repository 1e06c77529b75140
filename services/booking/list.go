package booking

import (
	"strconv"
	"time"

	"cabadmin/models"
)

// BuildRows joins bookings against the lookup tables for listing. A join that
// misses (stale or deleted reference row) falls back to the raw id string.
func BuildRows(bookings []models.Booking, lookups models.LookupSet, loc *time.Location) []models.BookingRow {
	rows := make([]models.BookingRow, 0, len(bookings))
	for _, b := range bookings {
		row := models.BookingRow{
			ID:             b.ID,
			TripType:       strconv.Itoa(b.TripTypeID),
			FromCity:       strconv.Itoa(b.FromCityID),
			ToCity:         strconv.Itoa(b.ToCityID),
			Vehicle:        strconv.Itoa(b.VehicleID),
			PickupDateTime: b.PickupDateTime,
			Fare:           b.Fare,
		}
		if tt, ok := lookups.TripTypeByID(b.TripTypeID); ok {
			row.TripType = tt.Label
		}
		if city, ok := lookups.CityByID(b.FromCityID); ok {
			row.FromCity = city.Name
		}
		if city, ok := lookups.CityByID(b.ToCityID); ok {
			row.ToCity = city.Name
		}
		if vehicle, ok := lookups.VehicleByID(b.VehicleID); ok {
			row.Vehicle = vehicle.Name
		}
		if t, err := time.Parse(time.RFC3339, b.PickupDateTime); err == nil {
			row.PickupDateTime = t.In(loc).Format("2006-01-02 15:04")
		}
		rows = append(rows, row)
	}
	return rows
}
