package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cabadmin/backend"
	"cabadmin/models"
)

// fakeGateway is an in-memory stand-in for the REST backend. Failure modes
// are switched on per method via failures.
type fakeGateway struct {
	mu sync.Mutex

	cities    []models.City
	tripTypes []models.TripType
	vehicles  []models.Vehicle

	bookings  map[int]models.Booking
	addresses map[string]models.Address
	users     map[int]models.User
	byEmail   map[string]int

	failures map[string]error

	nextUserID    int
	nextAddressID int
	nextBookingID int

	createdUsers     int
	createdAddresses []string
	createdBookings  []backend.BookingPayload
	updatedBookings  []int
	deletedBookings  []int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		cities: []models.City{
			{ID: 1, Name: "Mumbai", State: "Maharashtra"},
			{ID: 2, Name: "Pune", State: "Maharashtra"},
			{ID: 3, Name: "Nagpur", State: "Maharashtra"},
		},
		tripTypes: []models.TripType{
			{ID: 10, Label: "One Way"},
			{ID: 11, Label: "Round Trip"},
		},
		vehicles: []models.Vehicle{
			{ID: 100, Name: "Sedan", Price: 1200},
			{ID: 101, Name: "SUV", Price: 1800},
		},
		bookings:      map[int]models.Booking{},
		addresses:     map[string]models.Address{},
		users:         map[int]models.User{},
		byEmail:       map[string]int{},
		failures:      map[string]error{},
		nextUserID:    500,
		nextAddressID: 9000,
		nextBookingID: 700,
	}
}

func (g *fakeGateway) fail(op string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.failures[op]
}

func (g *fakeGateway) FetchCities(ctx context.Context) ([]models.City, error) {
	if err := g.fail("cities"); err != nil {
		return nil, err
	}
	return g.cities, nil
}

func (g *fakeGateway) FetchTripTypes(ctx context.Context) ([]models.TripType, error) {
	if err := g.fail("tripTypes"); err != nil {
		return nil, err
	}
	return g.tripTypes, nil
}

func (g *fakeGateway) FetchVehicles(ctx context.Context) ([]models.Vehicle, error) {
	if err := g.fail("vehicles"); err != nil {
		return nil, err
	}
	return g.vehicles, nil
}

func (g *fakeGateway) FetchBookings(ctx context.Context) ([]models.Booking, error) {
	if err := g.fail("bookings"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []models.Booking
	for _, b := range g.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (g *fakeGateway) FetchBooking(ctx context.Context, id int) (*models.Booking, error) {
	if err := g.fail("booking"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	b, ok := g.bookings[id]
	if !ok {
		return nil, fmt.Errorf("Failed to fetch booking #%d", id)
	}
	return &b, nil
}

func (g *fakeGateway) CreateBooking(ctx context.Context, payload backend.BookingPayload) (*models.Booking, error) {
	if err := g.fail("createBooking"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextBookingID++
	b := models.Booking{
		ID:              g.nextBookingID,
		UserID:          payload.UserID,
		VehicleID:       payload.VehicleID,
		FromCityID:      payload.FromCityID,
		ToCityID:        payload.ToCityID,
		PickupAddressID: payload.PickupAddressID,
		DropAddressID:   payload.DropAddressID,
		PickupDateTime:  payload.PickupDateTime,
		TripTypeID:      payload.TripTypeID,
		Fare:            payload.Fare,
	}
	g.bookings[b.ID] = b
	g.createdBookings = append(g.createdBookings, payload)
	return &b, nil
}

func (g *fakeGateway) UpdateBooking(ctx context.Context, id int, payload backend.BookingPayload) (*models.Booking, error) {
	if err := g.fail("updateBooking"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	b, ok := g.bookings[id]
	if !ok {
		return nil, fmt.Errorf("Failed to update booking #%d", id)
	}
	b.UserID = payload.UserID
	b.VehicleID = payload.VehicleID
	b.FromCityID = payload.FromCityID
	b.ToCityID = payload.ToCityID
	b.PickupAddressID = payload.PickupAddressID
	b.DropAddressID = payload.DropAddressID
	b.PickupDateTime = payload.PickupDateTime
	b.TripTypeID = payload.TripTypeID
	b.Fare = payload.Fare
	g.bookings[id] = b
	g.updatedBookings = append(g.updatedBookings, id)
	return &b, nil
}

func (g *fakeGateway) DeleteBooking(ctx context.Context, id int) error {
	if err := g.fail("deleteBooking"); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.bookings, id)
	g.deletedBookings = append(g.deletedBookings, id)
	return nil
}

func (g *fakeGateway) FetchAddress(ctx context.Context, id string) (*models.Address, error) {
	if err := g.fail("address"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	a, ok := g.addresses[id]
	if !ok {
		return nil, errors.New("Failed to fetch address")
	}
	return &a, nil
}

func (g *fakeGateway) CreateAddress(ctx context.Context, userID int, addrType, address string) (*models.Address, error) {
	if err := g.fail("createAddress"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextAddressID++
	a := models.Address{
		ID:      fmt.Sprintf("addr-%d", g.nextAddressID),
		Address: address,
	}
	g.addresses[a.ID] = a
	g.createdAddresses = append(g.createdAddresses, addrType)
	return &a, nil
}

func (g *fakeGateway) CheckEmail(ctx context.Context, email string) (*backend.EmailCheck, error) {
	if err := g.fail("checkEmail"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if id, ok := g.byEmail[email]; ok {
		u := g.users[id]
		return &backend.EmailCheck{Exists: true, User: &u}, nil
	}
	return &backend.EmailCheck{Exists: false}, nil
}

func (g *fakeGateway) CreateUser(ctx context.Context, name, email, phone string) (*models.User, error) {
	if err := g.fail("createUser"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextUserID++
	u := models.User{ID: g.nextUserID, Name: name, Email: email, Phone: phone}
	g.users[u.ID] = u
	g.byEmail[email] = u.ID
	g.createdUsers++
	return &u, nil
}

func (g *fakeGateway) FetchUser(ctx context.Context, id int) (*models.User, error) {
	if err := g.fail("user"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	u, ok := g.users[id]
	if !ok {
		return nil, fmt.Errorf("Failed to fetch user #%d", id)
	}
	return &u, nil
}

// seedUser registers a rider and returns it.
func (g *fakeGateway) seedUser(name, email, phone string) models.User {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextUserID++
	u := models.User{ID: g.nextUserID, Name: name, Email: email, Phone: phone}
	g.users[u.ID] = u
	g.byEmail[email] = u.ID
	return u
}

// seedAddress registers an address and returns it.
func (g *fakeGateway) seedAddress(id, address string) models.Address {
	g.mu.Lock()
	defer g.mu.Unlock()
	a := models.Address{ID: id, Address: address}
	g.addresses[id] = a
	return a
}

// seedBooking registers a persisted booking.
func (g *fakeGateway) seedBooking(b models.Booking) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bookings[b.ID] = b
}

// memoryStore is an in-process SessionStore for tests.
type memoryStore struct {
	mu        sync.Mutex
	sessions  map[string]*models.WizardSession
	editIndex map[int]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		sessions:  map[string]*models.WizardSession{},
		editIndex: map[int]string{},
	}
}

func (m *memoryStore) Save(ctx context.Context, session *models.WizardSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *session
	m.sessions[session.SessionID] = &copied
	return nil
}

func (m *memoryStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *memoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *memoryStore) SetEditIndex(ctx context.Context, bookingID int, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editIndex[bookingID] = sessionID
	return nil
}

func (m *memoryStore) GetEditIndex(ctx context.Context, bookingID int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editIndex[bookingID], nil
}

func (m *memoryStore) DeleteEditIndex(ctx context.Context, bookingID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.editIndex, bookingID)
	return nil
}

// newTestService wires a wizard service over the fakes in UTC.
func newTestService(gw *fakeGateway, store *memoryStore) *DefaultWizardService {
	return &DefaultWizardService{Gateway: gw, Store: store, Loc: time.UTC}
}
