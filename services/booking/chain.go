package booking

import (
	"context"
	"fmt"
	"strings"

	"cabadmin/backend"
	"cabadmin/models"
)

// runChain performs the strictly sequential submission protocol:
// resolve user -> create PICKUP address -> create DROP address -> create or
// patch the booking. Any step's failure aborts the remaining steps; already
// created records are not rolled back.
func (s *DefaultWizardService) runChain(ctx context.Context, session *models.WizardSession) (*models.ChainResult, error) {
	intent := session.Intent
	contact := session.Contact

	// Step 1: resolve the rider.
	var userID int
	if session.EditUser != nil {
		// Editing: reuse the injected user id with possibly-edited fields.
		userID = session.EditUser.ID
	} else {
		check, err := s.Gateway.CheckEmail(ctx, contact.Email)
		if err != nil {
			return nil, newSubmissionError("user", err)
		}
		if check.Exists && check.User != nil {
			userID = check.User.ID
		} else {
			user, err := s.Gateway.CreateUser(ctx, contact.Name, contact.Email, contact.Phone)
			if err != nil {
				return nil, newSubmissionError("user", err)
			}
			userID = user.ID
		}
	}

	// Steps 2 and 3: one address per booking side, owned by the rider.
	pickupAddr, err := s.Gateway.CreateAddress(ctx, userID, backend.AddressTypePickup, contact.PickupAddress)
	if err != nil {
		return nil, newSubmissionError("pickup address", err)
	}
	dropAddr, err := s.Gateway.CreateAddress(ctx, userID, backend.AddressTypeDrop, contact.DropAddress)
	if err != nil {
		return nil, newSubmissionError("drop address", err)
	}

	// Step 4: assemble and submit the booking.
	payload := backend.BookingPayload{
		UserID:          userID,
		VehicleID:       session.SelectedVehicleID,
		FromCityID:      intent.PickupCityID,
		ToCityID:        intent.DropCityID,
		PickupAddressID: pickupAddr.ID,
		DropAddressID:   dropAddr.ID,
		PickupDateTime:  combineDateTime(intent.PickupDate, intent.PickupTime),
		TripTypeID:      intent.TripTypeID,
		Fare:            session.Fare,
	}

	var booked *models.Booking
	if session.State.Editing() {
		booked, err = s.Gateway.UpdateBooking(ctx, session.BookingID, payload)
	} else {
		booked, err = s.Gateway.CreateBooking(ctx, payload)
	}
	if err != nil {
		return nil, newSubmissionError("booking", err)
	}

	return &models.ChainResult{
		UserID:          userID,
		PickupAddressID: pickupAddr.ID,
		DropAddressID:   dropAddr.ID,
		BookingID:       booked.ID,
	}, nil
}

// combineDateTime joins the form's date and time into the ISO timestamp the
// backend stores, exactly as the console has always assembled it.
func combineDateTime(date, clock string) string {
	return fmt.Sprintf("%sT%s:00.000Z", strings.TrimSpace(date), strings.TrimSpace(clock))
}
