package bitrix24

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// FindProductByName returns the identifier of the first catalog product
// whose NAME matches exactly, or ErrNotFound.
func (c *Client) FindProductByName(ctx context.Context, name string) (int, error) {
	raw, err := c.call(ctx, http.MethodPost, "crm.product.list", Fields{
		"filter": Fields{"NAME": name},
		"select": []string{"ID", "NAME"},
	})
	if err != nil {
		return 0, err
	}

	var rows []struct {
		ID ID `json:"ID"`
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return 0, fmt.Errorf("decode error: %w", err)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("product %q: %w", name, ErrNotFound)
	}
	return int(rows[0].ID), nil
}

// AddProduct creates a catalog product and returns its identifier.
func (c *Client) AddProduct(ctx context.Context, fields Fields) (int, error) {
	raw, err := c.call(ctx, http.MethodPost, "crm.product.add", Fields{"fields": fields})
	if err != nil {
		return 0, err
	}
	return decodeID(raw)
}
