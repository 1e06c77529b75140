package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabadmin/backend"
	"cabadmin/models"
)

func chainSession(gw *fakeGateway) *models.WizardSession {
	return &models.WizardSession{
		SessionID: "sess-1",
		State:     models.StateSelectingVehicle,
		Lookups: models.LookupSet{
			Cities:    gw.cities,
			TripTypes: gw.tripTypes,
			Vehicles:  gw.vehicles,
		},
		Intent: &models.BookingIntent{
			TripTypeID:     10,
			PickupLocation: "Mumbai, Maharashtra",
			PickupCityID:   1,
			DropLocation:   "Pune, Maharashtra",
			DropCityID:     2,
			PickupDate:     "2025-06-10",
			PickupTime:     "14:30",
		},
		SelectedVehicleID: 100,
		Fare:              1200,
		Contact: models.ContactForm{
			Name:          "Asha Rao",
			Email:         "asha@example.com",
			Phone:         "9800000000",
			PickupAddress: "12 Marine Drive",
			DropAddress:   "FC Road",
		},
	}
}

func TestRunChainNewEmailCreatesEverything(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw, newMemoryStore())
	session := chainSession(gw)

	result, err := svc.runChain(context.Background(), session)
	require.NoError(t, err)

	assert.Equal(t, 1, gw.createdUsers, "exactly one user for an unknown email")
	require.Equal(t, []string{backend.AddressTypePickup, backend.AddressTypeDrop}, gw.createdAddresses)
	require.Len(t, gw.createdBookings, 1)

	payload := gw.createdBookings[0]
	assert.Equal(t, result.UserID, payload.UserID)
	assert.Equal(t, result.PickupAddressID, payload.PickupAddressID)
	assert.Equal(t, result.DropAddressID, payload.DropAddressID)
	assert.Equal(t, "2025-06-10T14:30:00.000Z", payload.PickupDateTime)
	assert.Equal(t, 100, payload.VehicleID)
	assert.Equal(t, 1200.0, payload.Fare)
	assert.NotZero(t, result.BookingID)
}

func TestRunChainKnownEmailReusesUser(t *testing.T) {
	gw := newFakeGateway()
	existing := gw.seedUser("Asha Rao", "asha@example.com", "9800000000")
	svc := newTestService(gw, newMemoryStore())
	session := chainSession(gw)

	result, err := svc.runChain(context.Background(), session)
	require.NoError(t, err)

	assert.Zero(t, gw.createdUsers, "a known email must not create a user")
	assert.Equal(t, existing.ID, result.UserID)
}

func TestRunChainEditPatchesBooking(t *testing.T) {
	gw := newFakeGateway()
	user := gw.seedUser("Asha Rao", "asha@example.com", "9800000000")
	gw.seedBooking(models.Booking{ID: 42, UserID: user.ID})
	svc := newTestService(gw, newMemoryStore())

	session := chainSession(gw)
	session.State = models.StateEditingVehicle
	session.BookingID = 42
	session.EditUser = &user

	result, err := svc.runChain(context.Background(), session)
	require.NoError(t, err)

	assert.Equal(t, []int{42}, gw.updatedBookings)
	assert.Empty(t, gw.createdBookings, "editing must not create a second booking")
	assert.Equal(t, 42, result.BookingID)
	assert.Equal(t, user.ID, result.UserID)
	// Fresh addresses are still created; old ones are left in place.
	assert.Len(t, gw.createdAddresses, 2)
}

func TestRunChainStopsAtFirstFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.failures["createAddress"] = errors.New("Failed to create PICKUP address")
	svc := newTestService(gw, newMemoryStore())
	session := chainSession(gw)

	_, err := svc.runChain(context.Background(), session)
	var submitErr *SubmissionError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, "pickup address", submitErr.Step)

	// The user created by the first step is not rolled back.
	assert.Equal(t, 1, gw.createdUsers)
	assert.Empty(t, gw.createdBookings)
}

func TestCombineDateTime(t *testing.T) {
	assert.Equal(t, "2025-06-10T14:30:00.000Z", combineDateTime("2025-06-10", "14:30"))
	assert.Equal(t, "2025-06-10T14:30:00.000Z", combineDateTime(" 2025-06-10 ", " 14:30 "))
}
