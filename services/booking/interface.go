package booking

import (
	"context"
	"time"

	"cabadmin/backend"
	"cabadmin/models"
)

// Gateway is the slice of the REST backend the wizard consumes.
type Gateway interface {
	FetchCities(ctx context.Context) ([]models.City, error)
	FetchTripTypes(ctx context.Context) ([]models.TripType, error)
	FetchVehicles(ctx context.Context) ([]models.Vehicle, error)

	FetchBookings(ctx context.Context) ([]models.Booking, error)
	FetchBooking(ctx context.Context, id int) (*models.Booking, error)
	CreateBooking(ctx context.Context, payload backend.BookingPayload) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id int, payload backend.BookingPayload) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id int) error

	FetchAddress(ctx context.Context, id string) (*models.Address, error)
	CreateAddress(ctx context.Context, userID int, addrType, address string) (*models.Address, error)

	CheckEmail(ctx context.Context, email string) (*backend.EmailCheck, error)
	CreateUser(ctx context.Context, name, email, phone string) (*models.User, error)
	FetchUser(ctx context.Context, id int) (*models.User, error)
}

// Detail form field names.
const (
	FieldPickup = "pickup"
	FieldDrop   = "drop"
)

// WizardService drives the booking wizard's state machine for both the
// create and edit flows.
type WizardService interface {
	StartCreate(ctx context.Context) (*models.WizardSession, error)
	StartEdit(ctx context.Context, bookingID int) (*models.WizardSession, error)
	Session(ctx context.Context, sessionID string) (*models.WizardSession, error)

	SetLocationInput(ctx context.Context, sessionID, field, input string) (*models.WizardSession, []models.City, error)
	SelectCity(ctx context.Context, sessionID, field string, cityID int) (*models.WizardSession, error)
	SubmitDetails(ctx context.Context, sessionID string, tripTypeID int, pickupDate, pickupTime string) (*models.WizardSession, error)

	SelectVehicle(ctx context.Context, sessionID string, vehicleID int) (*models.WizardSession, error)
	CheckContactEmail(ctx context.Context, sessionID, email string) (*models.WizardSession, error)
	SubmitContact(ctx context.Context, sessionID string, form models.ContactForm) (*models.WizardSession, *models.ConfirmationSummary, error)

	Confirm(ctx context.Context, sessionID string) error
	Cancel(ctx context.Context, sessionID string) error

	ListBookings(ctx context.Context) ([]models.BookingRow, error)
	DeleteBooking(ctx context.Context, bookingID int) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Gateway Gateway
	Store   SessionStore
	// Loc is the timezone bookings are rendered in (prefill and listing).
	Loc *time.Location
}

func (s *DefaultWizardService) loc() *time.Location {
	if s.Loc != nil {
		return s.Loc
	}
	return time.Local
}
