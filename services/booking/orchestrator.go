package booking

import (
	"context"
	"fmt"
	"sync"

	"cabadmin/models"
	"cabadmin/utils"

	"github.com/google/uuid"
)

// StartCreate opens a new wizard session in the create flow. All transient
// selection state starts clean.
func (s *DefaultWizardService) StartCreate(ctx context.Context) (*models.WizardSession, error) {
	lookups, err := LoadLookups(ctx, s.Gateway)
	if err != nil {
		return nil, err
	}

	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		State:     models.StateCreating,
		Lookups:   lookups,
		Detail:    defaultDetail(lookups),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Sugar().Infof("wizard: started create session %s", session.SessionID)
	return session, nil
}

// StartEdit opens a wizard session prefilled from an existing booking. The
// whole load sequence (lookups, booking, both addresses, user) must succeed
// before the detail step is exposed; a partial prefill is never shown.
func (s *DefaultWizardService) StartEdit(ctx context.Context, bookingID int) (*models.WizardSession, error) {
	lookups, err := LoadLookups(ctx, s.Gateway)
	if err != nil {
		return nil, err
	}

	booking, err := s.Gateway.FetchBooking(ctx, bookingID)
	if err != nil {
		return nil, NewLoadError(err.Error())
	}

	// Pickup and drop addresses have no ordering dependency.
	var (
		pickupAddr, dropAddr *models.Address
		addrErrs             [2]error
		wg                   sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		pickupAddr, addrErrs[0] = s.Gateway.FetchAddress(ctx, booking.PickupAddressID)
	}()
	go func() {
		defer wg.Done()
		dropAddr, addrErrs[1] = s.Gateway.FetchAddress(ctx, booking.DropAddressID)
	}()
	wg.Wait()
	for _, addrErr := range addrErrs {
		if addrErr != nil {
			return nil, NewLoadError(addrErr.Error())
		}
	}

	user, err := s.Gateway.FetchUser(ctx, booking.UserID)
	if err != nil {
		return nil, NewLoadError(err.Error())
	}

	detail := buildPrefill(booking, lookups, s.loc())
	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		State:     models.StateEditingDetail,
		BookingID: bookingID,
		Lookups:   lookups,
		Detail:    detail,
		Intent:    prefillIntent(detail),
		Contact: models.ContactForm{
			Name:          user.Name,
			Email:         user.Email,
			Phone:         user.Phone,
			PickupAddress: pickupAddr.Address,
			DropAddress:   dropAddr.Address,
		},
		EditUser: user,
	}
	// Vehicle id resolved against the catalog; unknown ids leave no selection.
	if vehicle, ok := lookups.VehicleByID(booking.VehicleID); ok {
		session.SelectedVehicleID = vehicle.ID
		session.Fare = vehicle.Price
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	if err := s.Store.SetEditIndex(ctx, bookingID, session.SessionID); err != nil {
		return nil, err
	}
	utils.GetLogger().Sugar().Infof("wizard: started edit session %s for booking #%d", session.SessionID, bookingID)
	return session, nil
}

// Session returns the current state of a wizard session.
func (s *DefaultWizardService) Session(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// detailField picks the addressed city field of the detail form.
func detailField(session *models.WizardSession, field string) (*models.CityField, error) {
	switch field {
	case FieldPickup:
		return &session.Detail.Pickup, nil
	case FieldDrop:
		return &session.Detail.Drop, nil
	}
	return nil, NewValidationError(field, fmt.Sprintf("unknown location field %q", field))
}

// detailEditable reports whether the detail form may still be changed.
func detailEditable(state models.WizardState) bool {
	switch state {
	case models.StateCreating, models.StateSelectingVehicle,
		models.StateEditingDetail, models.StateEditingVehicle:
		return true
	}
	return false
}

// SetLocationInput records typed text into a location field, clearing any
// previously resolved city id, and returns the matching suggestions.
func (s *DefaultWizardService) SetLocationInput(ctx context.Context, sessionID, field, input string) (*models.WizardSession, []models.City, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !detailEditable(session.State) {
		return nil, nil, &InvalidTransitionError{State: string(session.State), Op: "edit trip details"}
	}

	cityField, err := detailField(session, field)
	if err != nil {
		return nil, nil, err
	}
	cityField.SetInput(input)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, CitySuggestions(session.Lookups.Cities, input), nil
}

// SelectCity applies a chosen suggestion; this is the only way a location
// field resolves to a concrete city id.
func (s *DefaultWizardService) SelectCity(ctx context.Context, sessionID, field string, cityID int) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !detailEditable(session.State) {
		return nil, &InvalidTransitionError{State: string(session.State), Op: "edit trip details"}
	}

	cityField, err := detailField(session, field)
	if err != nil {
		return nil, err
	}
	city, ok := session.Lookups.CityByID(cityID)
	if !ok {
		return nil, NewValidationError(field, "Please select a valid city")
	}
	cityField.Choose(city)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitDetails validates the detail form and advances to the vehicle step.
// Changing the search parameters invalidates any previously chosen vehicle
// and any completed contact submission; resubmitting identical parameters
// keeps them (edit-mode prefill relies on this).
func (s *DefaultWizardService) SubmitDetails(ctx context.Context, sessionID string, tripTypeID int, pickupDate, pickupTime string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !detailEditable(session.State) {
		return nil, &InvalidTransitionError{State: string(session.State), Op: "submit trip details"}
	}

	if tripTypeID != 0 {
		if _, ok := session.Lookups.TripTypeByID(tripTypeID); !ok {
			return nil, NewValidationError("tripType", "Please select a valid trip type")
		}
		session.Detail.TripTypeID = tripTypeID
	}
	if pickupDate != "" {
		session.Detail.PickupDate = pickupDate
	}
	if pickupTime != "" {
		session.Detail.PickupTime = pickupTime
	}

	intent, err := ValidateDetail(session.Lookups, session.Detail)
	if err != nil {
		return nil, err
	}

	changed := session.Intent == nil || *session.Intent != *intent
	session.Intent = intent
	if changed {
		session.SelectedVehicleID = 0
		session.Fare = 0
		session.Result = nil
		// Fresh step entry means fresh autocomplete sessions.
		session.PickupPlaceSession = uuid.New().String()
		session.DropPlaceSession = uuid.New().String()
	} else {
		if session.PickupPlaceSession == "" {
			session.PickupPlaceSession = uuid.New().String()
		}
		if session.DropPlaceSession == "" {
			session.DropPlaceSession = uuid.New().String()
		}
	}

	if session.State.Editing() {
		session.State = models.StateEditingVehicle
	} else {
		session.State = models.StateSelectingVehicle
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// vehicleSelectable reports whether the session is in a vehicle/contact step.
func vehicleSelectable(state models.WizardState) bool {
	return state == models.StateSelectingVehicle || state == models.StateEditingVehicle
}

// SelectVehicle records the chosen vehicle and sets the working fare to its
// price. The selection takes effect immediately; there is no confirmation.
func (s *DefaultWizardService) SelectVehicle(ctx context.Context, sessionID string, vehicleID int) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !vehicleSelectable(session.State) {
		return nil, &InvalidTransitionError{State: string(session.State), Op: "select a vehicle"}
	}

	vehicle, ok := session.Lookups.VehicleByID(vehicleID)
	if !ok {
		return nil, NewValidationError("vehicle", "Please select a valid vehicle")
	}
	session.SelectedVehicleID = vehicle.ID
	session.Fare = vehicle.Price

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CheckContactEmail looks up the typed email and, when it matches an existing
// rider, overwrites name and phone with the matched values. This is a
// convenience autofill for the create flow only; the fields stay editable.
func (s *DefaultWizardService) CheckContactEmail(ctx context.Context, sessionID, email string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !vehicleSelectable(session.State) {
		return nil, &InvalidTransitionError{State: string(session.State), Op: "check contact email"}
	}

	session.Contact.Email = email
	if !session.State.Editing() && email != "" {
		check, err := s.Gateway.CheckEmail(ctx, email)
		if err != nil {
			// Non-fatal: the admin can still type the details in.
			utils.GetLogger().Sugar().Warnf("wizard: email check failed: %v", err)
		} else if check.Exists && check.User != nil {
			session.Contact.Name = check.User.Name
			session.Contact.Phone = check.User.Phone
		}
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// PlaceSessionToken returns the autocomplete session token for a contact
// address field. Tokens are generated once per step entry and reused across
// keystrokes, so requesting one before the vehicle/contact step would hand
// out an empty token; that is rejected instead.
func PlaceSessionToken(session *models.WizardSession, field string) (string, error) {
	if !vehicleSelectable(session.State) {
		return "", &InvalidTransitionError{State: string(session.State), Op: "fetch address suggestions"}
	}
	switch field {
	case FieldPickup:
		return session.PickupPlaceSession, nil
	case FieldDrop:
		return session.DropPlaceSession, nil
	}
	return "", NewValidationError(field, fmt.Sprintf("unknown address field %q", field))
}

// SubmitContact runs the submission chain for the contact/address form and,
// on success, advances the session into review. A submission without a
// selected vehicle is rejected before any request is issued.
func (s *DefaultWizardService) SubmitContact(ctx context.Context, sessionID string, form models.ContactForm) (*models.WizardSession, *models.ConfirmationSummary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !vehicleSelectable(session.State) {
		return nil, nil, &InvalidTransitionError{State: string(session.State), Op: "submit contact details"}
	}
	if session.SelectedVehicleID == 0 {
		return nil, nil, NewValidationError("vehicle", "Please select a car first.")
	}

	session.Contact = form
	result, err := s.runChain(ctx, session)
	if err != nil {
		return nil, nil, err
	}
	session.Result = result

	if session.State.Editing() {
		session.State = models.StateReviewingEdit
	} else {
		session.State = models.StateReviewingNew
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}

	utils.GetLogger().Sugar().Infof("wizard: session %s submitted booking #%d", sessionID, result.BookingID)
	return session, BuildConfirmation(session), nil
}

// Confirm acknowledges the review step and discards the session. The booking
// itself was already persisted by the submission chain.
func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID string) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.State != models.StateReviewingNew && session.State != models.StateReviewingEdit {
		return &InvalidTransitionError{State: string(session.State), Op: "confirm"}
	}
	return s.discard(ctx, session)
}

// Cancel discards all transient session state without persisting anything.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.discard(ctx, session)
}

func (s *DefaultWizardService) discard(ctx context.Context, session *models.WizardSession) error {
	if session.BookingID != 0 {
		_ = s.Store.DeleteEditIndex(ctx, session.BookingID)
	}
	return s.Store.Delete(ctx, session.SessionID)
}

// ListBookings fetches the booking collection joined against fresh lookups.
func (s *DefaultWizardService) ListBookings(ctx context.Context) ([]models.BookingRow, error) {
	lookups, err := LoadLookups(ctx, s.Gateway)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Gateway.FetchBookings(ctx)
	if err != nil {
		return nil, NewLoadError(err.Error())
	}
	return BuildRows(bookings, lookups, s.loc()), nil
}

// DeleteBooking removes a booking and, if a wizard session is currently
// editing it, force-resets that session back to the listing.
func (s *DefaultWizardService) DeleteBooking(ctx context.Context, bookingID int) error {
	if err := s.Gateway.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	sessionID, err := s.Store.GetEditIndex(ctx, bookingID)
	if err != nil {
		return err
	}
	if sessionID != "" {
		_ = s.Store.Delete(ctx, sessionID)
		_ = s.Store.DeleteEditIndex(ctx, bookingID)
		utils.GetLogger().Sugar().Infof("wizard: booking #%d deleted, reset edit session %s", bookingID, sessionID)
	}
	return nil
}
