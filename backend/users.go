package backend

import (
	"context"
	"fmt"
	"strings"

	"cabadmin/models"
)

// EmailCheck is the result of the backend's email lookup.
type EmailCheck struct {
	Exists bool         `json:"exists"`
	User   *models.User `json:"user,omitempty"`
}

// CheckEmail looks up an existing rider by email.
func (c *Client) CheckEmail(ctx context.Context, email string) (*EmailCheck, error) {
	body := map[string]string{"email": strings.TrimSpace(email)}
	var result EmailCheck
	if err := c.post(ctx, "/admin/users/check-email", body, &result, "Failed to check email"); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateUser registers a new rider record.
func (c *Client) CreateUser(ctx context.Context, name, email, phone string) (*models.User, error) {
	body := map[string]string{
		"name":  strings.TrimSpace(name),
		"email": strings.TrimSpace(email),
		"phone": strings.TrimSpace(phone),
	}
	var user models.User
	if err := c.post(ctx, "/admin/users", body, &user, "Failed to create user"); err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchUser retrieves a rider by id (used for edit-mode prefill).
func (c *Client) FetchUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	failMsg := fmt.Sprintf("Failed to fetch user #%d", id)
	if err := c.get(ctx, fmt.Sprintf("/admin/users/%d", id), &user, failMsg); err != nil {
		return nil, err
	}
	return &user, nil
}
