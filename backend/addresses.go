package backend

import (
	"context"
	"fmt"
	"strings"

	"cabadmin/models"
)

// Address side markers accepted by the backend.
const (
	AddressTypePickup = "PICKUP"
	AddressTypeDrop   = "DROP"
)

// CreateAddress creates a pickup or drop address owned by the given user.
func (c *Client) CreateAddress(ctx context.Context, userID int, addrType, address string) (*models.Address, error) {
	body := map[string]any{
		"userId":  userID,
		"type":    addrType,
		"address": strings.TrimSpace(address),
	}
	var addr models.Address
	failMsg := fmt.Sprintf("Failed to create %s address", addrType)
	if err := c.post(ctx, "/addresses", body, &addr, failMsg); err != nil {
		return nil, err
	}
	return &addr, nil
}

// FetchAddress retrieves an address by id (used for edit-mode prefill).
func (c *Client) FetchAddress(ctx context.Context, id string) (*models.Address, error) {
	var addr models.Address
	failMsg := fmt.Sprintf("Failed to fetch address #%s", id)
	if err := c.get(ctx, "/addresses/"+id, &addr, failMsg); err != nil {
		return nil, err
	}
	return &addr, nil
}
