package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cabadmin/models"
)

// FetchAdminVehicles retrieves the vehicles admin table, optionally filtered
// by owning vendor or assigned driver. A zero id means no filter.
func (c *Client) FetchAdminVehicles(ctx context.Context, vendorID, driverID int) ([]models.AdminVehicle, error) {
	query := url.Values{}
	if vendorID != 0 {
		query.Set("vendorId", strconv.Itoa(vendorID))
	}
	if driverID != 0 {
		query.Set("driverId", strconv.Itoa(driverID))
	}

	var vehicles []models.AdminVehicle
	err := c.do(ctx, http.MethodGet, "/admin/vehicles", query, nil, &vehicles, "Failed to fetch vehicles")
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FetchAdminVehicle retrieves a single vehicle record.
func (c *Client) FetchAdminVehicle(ctx context.Context, id int) (*models.AdminVehicle, error) {
	var vehicle models.AdminVehicle
	if err := c.get(ctx, fmt.Sprintf("/admin/vehicles/%d", id), &vehicle, "Failed to fetch vehicle details"); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// AddVehicle creates a new vehicle record.
func (c *Client) AddVehicle(ctx context.Context, vehicle models.AdminVehicle) (*models.AdminVehicle, error) {
	var created models.AdminVehicle
	if err := c.post(ctx, "/admin/vehicles", vehicle, &created, "Failed to add vehicle"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateVehicle patches an existing vehicle record.
func (c *Client) UpdateVehicle(ctx context.Context, id int, vehicle models.AdminVehicle) (*models.AdminVehicle, error) {
	var updated models.AdminVehicle
	if err := c.patch(ctx, fmt.Sprintf("/admin/vehicles/%d", id), vehicle, &updated, "Failed to update vehicle"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVehicle removes a vehicle record.
func (c *Client) DeleteVehicle(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/admin/vehicles/%d", id), "Failed to delete vehicle")
}

// CheckRegistration asks whether a registration number is already in use.
// excludeID skips the record being edited; zero means no exclusion.
func (c *Client) CheckRegistration(ctx context.Context, registrationNumber string, excludeID int) (*models.RegistrationCheck, error) {
	query := url.Values{}
	query.Set("registrationNumber", registrationNumber)
	if excludeID != 0 {
		query.Set("excludeId", strconv.Itoa(excludeID))
	}

	var check models.RegistrationCheck
	err := c.do(ctx, http.MethodGet, "/admin/vehicles/check-registration", query, nil, &check, "Failed to check registration")
	if err != nil {
		return nil, err
	}
	return &check, nil
}
