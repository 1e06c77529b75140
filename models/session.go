package models

// WizardState tags the single explicit step of a booking wizard session.
// A session only ever exists in one of these states; "listing" is the absence
// of a session.
type WizardState string

const (
	StateCreating         WizardState = "CREATING"
	StateSelectingVehicle WizardState = "SELECTING_VEHICLE"
	StateReviewingNew     WizardState = "REVIEWING_NEW"
	StateEditingLoad      WizardState = "EDITING_LOAD"
	StateEditingDetail    WizardState = "EDITING_DETAIL"
	StateEditingVehicle   WizardState = "EDITING_VEHICLE"
	StateReviewingEdit    WizardState = "REVIEWING_EDIT"
)

// Editing reports whether the state belongs to the edit flow.
func (s WizardState) Editing() bool {
	switch s {
	case StateEditingLoad, StateEditingDetail, StateEditingVehicle, StateReviewingEdit:
		return true
	}
	return false
}

// CityField is one free-text location input of the detail form. Selecting a
// suggestion is the only way to set CityID; any edit of the input clears it.
type CityField struct {
	Input  string `json:"input"`
	CityID int    `json:"cityId"`
}

// SetInput records typed text and invalidates any previously resolved city.
func (f *CityField) SetInput(s string) {
	f.Input = s
	f.CityID = 0
}

// Choose applies a selected suggestion, resolving the field to a concrete city.
func (f *CityField) Choose(c City) {
	f.Input = c.Display()
	f.CityID = c.ID
}

// DetailForm holds the booking detail step's working state.
type DetailForm struct {
	TripTypeID int       `json:"tripTypeId"`
	Pickup     CityField `json:"pickup"`
	Drop       CityField `json:"drop"`
	PickupDate string    `json:"pickupDate"`
	PickupTime string    `json:"pickupTime"`
}

// ContactForm holds the rider contact and address sub-form state.
type ContactForm struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PickupAddress string `json:"pickupAddress"`
	DropAddress   string `json:"dropAddress"`
}

// ChainResult records the ids produced by a completed submission chain.
type ChainResult struct {
	UserID          int    `json:"userId"`
	PickupAddressID string `json:"pickupAddressId"`
	DropAddressID   string `json:"dropAddressId"`
	BookingID       int    `json:"bookingId"`
}

// WizardSession holds all transient state between starting the wizard and the
// final confirm or cancel. It is cached server-side and discarded on exit;
// nothing in it is authoritative.
type WizardSession struct {
	SessionID string      `json:"sessionId"`
	State     WizardState `json:"state"`

	// BookingID is the booking being edited; zero in the create flow.
	BookingID int `json:"bookingId,omitempty"`

	Lookups LookupSet  `json:"lookups"`
	Detail  DetailForm `json:"detail"`

	// Intent is set once the detail form validates; changing search
	// parameters resets everything downstream of it.
	Intent *BookingIntent `json:"intent,omitempty"`

	SelectedVehicleID int     `json:"selectedVehicleId,omitempty"`
	Fare              float64 `json:"fare,omitempty"`

	Contact ContactForm `json:"contact"`

	// EditUser is the injected rider record when editing (reused verbatim
	// for the chain's user resolution).
	EditUser *User `json:"editUser,omitempty"`

	// Autocomplete session tokens, generated once per contact-step entry and
	// reused across keystrokes (provider billing/session semantics).
	PickupPlaceSession string `json:"pickupPlaceSession,omitempty"`
	DropPlaceSession   string `json:"dropPlaceSession,omitempty"`

	// Result is set once the submission chain has completed.
	Result *ChainResult `json:"result,omitempty"`
}
