package backend

import (
	"context"
	"fmt"

	"cabadmin/models"
)

// FetchAdminCities retrieves the cities admin table.
func (c *Client) FetchAdminCities(ctx context.Context) ([]models.AdminCity, error) {
	var cities []models.AdminCity
	if err := c.get(ctx, "/admin/cities", &cities, "Failed to fetch cities"); err != nil {
		return nil, err
	}
	return cities, nil
}

// AddCity creates a new city record.
func (c *Client) AddCity(ctx context.Context, city models.AdminCity) (*models.AdminCity, error) {
	var created models.AdminCity
	if err := c.post(ctx, "/admin/cities", city, &created, "Failed to add city"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCity patches an existing city record.
func (c *Client) UpdateCity(ctx context.Context, id int, city models.AdminCity) (*models.AdminCity, error) {
	var updated models.AdminCity
	failMsg := fmt.Sprintf("Failed to update city #%d", id)
	if err := c.patch(ctx, fmt.Sprintf("/admin/cities/%d", id), city, &updated, failMsg); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCity removes a city record.
func (c *Client) DeleteCity(ctx context.Context, id int) error {
	failMsg := fmt.Sprintf("Failed to delete city #%d", id)
	return c.delete(ctx, fmt.Sprintf("/admin/cities/%d", id), failMsg)
}
