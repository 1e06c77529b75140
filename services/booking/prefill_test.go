package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabadmin/models"
)

func TestBuildPrefillDecomposesTimestamp(t *testing.T) {
	lookups := models.LookupSet{Cities: testCities}
	booking := &models.Booking{
		ID:             42,
		FromCityID:     1,
		ToCityID:       2,
		TripTypeID:     10,
		PickupDateTime: "2025-06-10T14:30:00.000Z",
	}

	form := buildPrefill(booking, lookups, time.UTC)
	assert.Equal(t, "2025-06-10", form.PickupDate)
	assert.Equal(t, "14:30", form.PickupTime)
	assert.Equal(t, "Mumbai, Maharashtra", form.Pickup.Input)
	assert.Equal(t, 1, form.Pickup.CityID)
	assert.Equal(t, "Pune, Maharashtra", form.Drop.Input)
	assert.Equal(t, 2, form.Drop.CityID)
}

func TestBuildPrefillShiftsIntoDisplayZone(t *testing.T) {
	loc := time.FixedZone("IST", int((5*time.Hour + 30*time.Minute).Seconds()))
	booking := &models.Booking{
		FromCityID:     1,
		ToCityID:       2,
		PickupDateTime: "2025-06-10T20:00:00.000Z",
	}

	form := buildPrefill(booking, models.LookupSet{Cities: testCities}, loc)
	assert.Equal(t, "2025-06-11", form.PickupDate)
	assert.Equal(t, "01:30", form.PickupTime)
}

func TestBuildPrefillMissingCityLeavesInputBlank(t *testing.T) {
	booking := &models.Booking{
		FromCityID:     99,
		ToCityID:       2,
		PickupDateTime: "2025-06-10T14:30:00.000Z",
	}

	form := buildPrefill(booking, models.LookupSet{Cities: testCities}, time.UTC)
	// The id is kept so the caller can see it, but the display stays blank.
	assert.Equal(t, 99, form.Pickup.CityID)
	assert.Empty(t, form.Pickup.Input)
	assert.Equal(t, "Pune, Maharashtra", form.Drop.Input)
}

func TestPrefillIntentRoundTrip(t *testing.T) {
	lookups := models.LookupSet{Cities: testCities}
	booking := &models.Booking{
		FromCityID:     1,
		ToCityID:       2,
		TripTypeID:     11,
		PickupDateTime: "2025-06-10T14:30:00.000Z",
	}

	form := buildPrefill(booking, lookups, time.UTC)
	intent := prefillIntent(form)
	require.NotNil(t, intent)

	// Resubmitting the untouched prefilled form must produce the same intent.
	validated, err := ValidateDetail(lookups, form)
	require.NoError(t, err)
	assert.Equal(t, *intent, *validated)
}
