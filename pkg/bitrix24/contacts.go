package bitrix24

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Communication types understood by the duplicate finder.
const (
	commTypePhone = "PHONE"
	commTypeEmail = "EMAIL"
)

// FindContactByPhoneOrEmail looks up an existing contact through the
// duplicate finder. The phone is normalized and tried first; email is only
// consulted when the phone pass finds nothing. That ordering is part of the
// contract. Returns ErrNotFound when neither channel matches.
func (c *Client) FindContactByPhoneOrEmail(ctx context.Context, phone, email string) (int, error) {
	phone = NormalizePhone(phone)
	if phone != "" {
		id, err := c.findDuplicateContact(ctx, commTypePhone, phone)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return 0, err
		}
	}
	if email != "" {
		id, err := c.findDuplicateContact(ctx, commTypeEmail, email)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return 0, err
		}
	}
	return 0, fmt.Errorf("contact by phone/email: %w", ErrNotFound)
}

// findDuplicateContact runs one crm.duplicate.findbycomm pass for a single
// communication value.
func (c *Client) findDuplicateContact(ctx context.Context, commType, value string) (int, error) {
	raw, err := c.call(ctx, http.MethodPost, "crm.duplicate.findbycomm", Fields{
		"entity_type": "CONTACT",
		"type":        commType,
		"values":      []string{value},
	})
	if err != nil {
		return 0, err
	}

	// The endpoint answers {} or [] when nothing matches.
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return 0, ErrNotFound
	}

	var res struct {
		Contact []ID `json:"CONTACT"`
	}
	if err := json.Unmarshal(trimmed, &res); err != nil {
		return 0, fmt.Errorf("decode error: %w", err)
	}
	if len(res.Contact) == 0 {
		return 0, ErrNotFound
	}
	return int(res.Contact[0]), nil
}

// AddContact creates a contact with server-side duplicate control enabled
// and returns its identifier. When the portal rejects the creation as a
// duplicate, the existing contact is located by the phone or email submitted
// in fields and its identifier is returned instead; if that lookup finds
// nothing, the original rejection is returned unchanged. Any non-duplicate
// failure propagates immediately.
func (c *Client) AddContact(ctx context.Context, fields Fields) (int, error) {
	raw, err := c.call(ctx, http.MethodPost, "crm.contact.add", Fields{
		"fields": fields,
		"params": Fields{"ENABLE_DUPLICATE_CONTROL": "Y"},
	})
	if err == nil {
		return decodeID(raw)
	}
	if !isDuplicateError(err) {
		return 0, err
	}

	phone := firstMultifieldValue(fields, "PHONE")
	email := firstMultifieldValue(fields, "EMAIL")
	id, lookupErr := c.FindContactByPhoneOrEmail(ctx, phone, email)
	if lookupErr != nil {
		return 0, err
	}
	return id, nil
}

// GetOrCreateContact returns the identifier of an existing contact matching
// phone/email, creating one (NAME plus a MOBILE phone and/or WORK email
// entry) when nothing matches. Creation goes through AddContact and so
// inherits duplicate control.
func (c *Client) GetOrCreateContact(ctx context.Context, name, phone, email string) (int, error) {
	id, err := c.FindContactByPhoneOrEmail(ctx, phone, email)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return 0, err
	}

	fields := Fields{"NAME": name}
	if p := NormalizePhone(phone); p != "" {
		fields["PHONE"] = []Fields{{"VALUE": p, "VALUE_TYPE": "MOBILE"}}
	}
	if email != "" {
		fields["EMAIL"] = []Fields{{"VALUE": email, "VALUE_TYPE": "WORK"}}
	}
	return c.AddContact(ctx, fields)
}
