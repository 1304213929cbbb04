package bitrix24

import (
	"context"
	"net/http"
)

// AddLead creates a lead and returns its identifier. ASSIGNED_BY_ID is
// always the webhook user; a caller-supplied value is overridden. params is
// optional endpoint parameters (REGISTER_SONET_EVENT and friends).
func (c *Client) AddLead(ctx context.Context, fields, params Fields) (int, error) {
	payload := Fields{"fields": withAssignee(fields, c.opts.UserID)}
	if len(params) > 0 {
		payload["params"] = params
	}
	raw, err := c.call(ctx, http.MethodPost, "crm.lead.add", payload)
	if err != nil {
		return 0, err
	}
	return decodeID(raw)
}

// SetLeadProductRows replaces the line items of a lead. Each row is expected
// to carry at least a product reference, price and quantity; the row order
// is preserved as submitted.
func (c *Client) SetLeadProductRows(ctx context.Context, leadID int, rows []Fields) (bool, error) {
	raw, err := c.call(ctx, http.MethodPost, "crm.lead.productrows.set", Fields{
		"id":   leadID,
		"rows": rows,
	})
	if err != nil {
		return false, err
	}
	return truthy(raw), nil
}
