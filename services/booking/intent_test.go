package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabadmin/models"
)

var testCities = []models.City{
	{ID: 1, Name: "Mumbai", State: "Maharashtra"},
	{ID: 2, Name: "Pune", State: "Maharashtra"},
	{ID: 3, Name: "Patna", State: "Bihar"},
}

func TestCitySuggestionsSubstringMatch(t *testing.T) {
	matches := CitySuggestions(testCities, "maha")
	assert.Len(t, matches, 2, "state substring should match both Maharashtra cities")

	matches = CitySuggestions(testCities, "PUN")
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].ID)
}

func TestCitySuggestionsExactDisplayMatchesOne(t *testing.T) {
	// An exact "Name, State" display must match exactly its own city.
	matches := CitySuggestions(testCities, "Pune, Maharashtra")
	require.Len(t, matches, 1)
	assert.Equal(t, "Pune", matches[0].Name)
}

func TestCityFieldInputClearsSelection(t *testing.T) {
	var f models.CityField
	f.Choose(testCities[0])
	require.Equal(t, 1, f.CityID)
	require.Equal(t, "Mumbai, Maharashtra", f.Input)

	f.SetInput("Mumbai, Maharashtr")
	assert.Zero(t, f.CityID, "typing must invalidate the resolved city")
}

func TestValidateDetailRequiresResolvedCities(t *testing.T) {
	lookups := models.LookupSet{Cities: testCities}

	form := models.DetailForm{
		TripTypeID: 10,
		PickupDate: "2025-05-05",
		PickupTime: "07:00",
	}
	form.Pickup.Choose(testCities[0])
	form.Drop.Choose(testCities[1])

	intent, err := ValidateDetail(lookups, form)
	require.NoError(t, err)
	assert.Equal(t, 1, intent.PickupCityID)
	assert.Equal(t, 2, intent.DropCityID)
	assert.Equal(t, "Mumbai, Maharashtra", intent.PickupLocation)

	// Free typing without selecting a suggestion leaves the id cleared.
	form.Pickup.SetInput("Mumbai somewhere")
	intent, err = ValidateDetail(lookups, form)
	assert.Nil(t, intent)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, FieldPickup, validationErr.Field)
	assert.Equal(t, "Please select a valid pickup city", validationErr.Message)
}

func TestValidateDetailEmptyLocations(t *testing.T) {
	lookups := models.LookupSet{Cities: testCities}

	_, err := ValidateDetail(lookups, models.DetailForm{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Pickup location required", validationErr.Message)

	form := models.DetailForm{}
	form.Pickup.Choose(testCities[0])
	_, err = ValidateDetail(lookups, form)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Drop location required", validationErr.Message)
}

func TestValidateDetailStaleCityID(t *testing.T) {
	// A selection made against an older city table must not pass.
	lookups := models.LookupSet{Cities: testCities[:1]}
	form := models.DetailForm{}
	form.Pickup.Choose(testCities[0])
	form.Drop.Choose(testCities[1])

	_, err := ValidateDetail(lookups, form)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, FieldDrop, validationErr.Field)
}
