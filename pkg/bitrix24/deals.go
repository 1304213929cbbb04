package bitrix24

import (
	"context"
	"net/http"
)

// AddDeal creates a deal and returns its identifier. ASSIGNED_BY_ID is
// always the webhook user, as with AddLead.
func (c *Client) AddDeal(ctx context.Context, fields, params Fields) (int, error) {
	payload := Fields{"fields": withAssignee(fields, c.opts.UserID)}
	if len(params) > 0 {
		payload["params"] = params
	}
	raw, err := c.call(ctx, http.MethodPost, "crm.deal.add", payload)
	if err != nil {
		return 0, err
	}
	return decodeID(raw)
}

// SetDealProductRows replaces the line items of a deal.
func (c *Client) SetDealProductRows(ctx context.Context, dealID int, rows []Fields) (bool, error) {
	raw, err := c.call(ctx, http.MethodPost, "crm.deal.productrows.set", Fields{
		"id":   dealID,
		"rows": rows,
	})
	if err != nil {
		return false, err
	}
	return truthy(raw), nil
}

// AddDealWithContact resolves or creates a contact by name/phone/email, then
// creates a deal bound to it through CONTACT_ID. Returns the deal
// identifier.
func (c *Client) AddDealWithContact(ctx context.Context, fields, params Fields, name, phone, email string) (int, error) {
	contactID, err := c.GetOrCreateContact(ctx, name, phone, email)
	if err != nil {
		return 0, err
	}

	withContact := make(Fields, len(fields)+1)
	for k, v := range fields {
		withContact[k] = v
	}
	withContact["CONTACT_ID"] = contactID

	return c.AddDeal(ctx, withContact, params)
}
