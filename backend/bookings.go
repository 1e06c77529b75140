package backend

import (
	"context"
	"fmt"

	"cabadmin/models"
)

// BookingPayload is the fully assembled body for creating or patching a booking.
type BookingPayload struct {
	UserID          int     `json:"userId"`
	VehicleID       int     `json:"vehicleId"`
	FromCityID      int     `json:"fromCityId"`
	ToCityID        int     `json:"toCityId"`
	PickupAddressID string  `json:"pickupAddressId"`
	DropAddressID   string  `json:"dropAddressId"`
	PickupDateTime  string  `json:"pickupDateTime"`
	TripTypeID      int     `json:"tripTypeId"`
	Fare            float64 `json:"fare"`
}

// FetchBookings retrieves the full booking collection.
func (c *Client) FetchBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.get(ctx, "/bookings", &bookings, "Failed to fetch bookings"); err != nil {
		return nil, err
	}
	return bookings, nil
}

// FetchBooking retrieves a single booking by its primary key.
func (c *Client) FetchBooking(ctx context.Context, id int) (*models.Booking, error) {
	var booking models.Booking
	failMsg := fmt.Sprintf("Failed to fetch booking #%d", id)
	if err := c.get(ctx, fmt.Sprintf("/bookings/%d", id), &booking, failMsg); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking submits a new booking.
func (c *Client) CreateBooking(ctx context.Context, payload BookingPayload) (*models.Booking, error) {
	var booking models.Booking
	if err := c.post(ctx, "/bookings", payload, &booking, "Failed to create booking"); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking patches an existing booking with the assembled payload.
func (c *Client) UpdateBooking(ctx context.Context, id int, payload BookingPayload) (*models.Booking, error) {
	var booking models.Booking
	failMsg := fmt.Sprintf("Failed to update booking #%d", id)
	if err := c.patch(ctx, fmt.Sprintf("/bookings/%d", id), payload, &booking, failMsg); err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking removes a booking.
func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	failMsg := fmt.Sprintf("Failed to delete booking #%d", id)
	return c.delete(ctx, fmt.Sprintf("/bookings/%d", id), failMsg)
}
