package backend

import (
	"context"

	"cabadmin/models"
)

// FetchCities retrieves the city reference table.
func (c *Client) FetchCities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	if err := c.get(ctx, "/cities", &cities, "Failed to fetch cities"); err != nil {
		return nil, err
	}
	return cities, nil
}

// FetchTripTypes retrieves the trip type reference table.
func (c *Client) FetchTripTypes(ctx context.Context) ([]models.TripType, error) {
	var tripTypes []models.TripType
	if err := c.get(ctx, "/trip-types", &tripTypes, "Failed to fetch trip types"); err != nil {
		return nil, err
	}
	return tripTypes, nil
}

// FetchVehicles retrieves the vehicle catalog.
func (c *Client) FetchVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := c.get(ctx, "/vehicles", &vehicles, "Failed to fetch vehicles"); err != nil {
		return nil, err
	}
	return vehicles, nil
}
