package backend

import (
	"context"
	"net/http"
	"net/url"

	"cabadmin/models"
)

// PlaceAutocomplete queries the external geocoding autocomplete through the
// backend proxy. The session token scopes billing on the provider side and
// must be reused across keystrokes of the same field. Cancellation of the
// context aborts the request.
func (c *Client) PlaceAutocomplete(ctx context.Context, input, sessionToken string) ([]models.PlaceSuggestion, error) {
	query := url.Values{}
	query.Set("input", input)
	query.Set("sessiontoken", sessionToken)

	var suggestions []models.PlaceSuggestion
	err := c.do(ctx, http.MethodGet, "/places/autocomplete", query, nil, &suggestions, "Failed to fetch place suggestions")
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}
