package backend

import (
	"context"
	"fmt"

	"cabadmin/models"
)

// FetchDrivers retrieves all drivers.
func (c *Client) FetchDrivers(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := c.get(ctx, "/admin/drivers", &drivers, "Failed to fetch drivers"); err != nil {
		return nil, err
	}
	return drivers, nil
}

// FetchDriver retrieves a single driver.
func (c *Client) FetchDriver(ctx context.Context, id int) (*models.Driver, error) {
	var driver models.Driver
	if err := c.get(ctx, fmt.Sprintf("/admin/drivers/%d", id), &driver, "Failed to fetch driver details"); err != nil {
		return nil, err
	}
	return &driver, nil
}

// AddDriver registers a new driver.
func (c *Client) AddDriver(ctx context.Context, driver models.Driver) (*models.Driver, error) {
	var created models.Driver
	if err := c.post(ctx, "/admin/drivers/register", driver, &created, "Failed to add driver"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDriver patches an existing driver.
func (c *Client) UpdateDriver(ctx context.Context, id int, driver models.Driver) (*models.Driver, error) {
	var updated models.Driver
	if err := c.patch(ctx, fmt.Sprintf("/admin/drivers/%d", id), driver, &updated, "Failed to update driver"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDriver removes a driver.
func (c *Client) DeleteDriver(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/admin/drivers/%d", id), "Failed to delete driver")
}
