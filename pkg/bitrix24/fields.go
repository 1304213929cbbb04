package bitrix24

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// entityFieldMethods maps supported entity names to their metadata
// endpoints.
var entityFieldMethods = map[string]string{
	"DEAL":    "crm.deal.fields",
	"LEAD":    "crm.lead.fields",
	"CONTACT": "crm.contact.fields",
	"COMPANY": "crm.company.fields",
}

// FieldMeta is the raw metadata of one entity field as reported by the
// portal.
type FieldMeta map[string]any

// userFieldPrefix marks tenant-defined (custom) field codes.
const userFieldPrefix = "UF_"

// fieldLabelKeys are the candidate label sources checked when matching a
// custom field by its human title, in priority order.
var fieldLabelKeys = []string{"title", "formLabel", "name", "NAME"}

// GetEntityFields returns the field-metadata mapping for one of DEAL, LEAD,
// CONTACT or COMPANY. The entity name is case-insensitive; anything else
// fails with ErrInvalidEntity before any network call.
func (c *Client) GetEntityFields(ctx context.Context, entity string) (map[string]FieldMeta, error) {
	raw, err := c.entityFieldsRaw(ctx, entity)
	if err != nil {
		return nil, err
	}
	var out map[string]FieldMeta
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	return out, nil
}

func (c *Client) entityFieldsRaw(ctx context.Context, entity string) (json.RawMessage, error) {
	method, ok := entityFieldMethods[strings.ToUpper(strings.TrimSpace(entity))]
	if !ok {
		return nil, fmt.Errorf("entity %q: %w", entity, ErrInvalidEntity)
	}
	return c.call(ctx, http.MethodGet, method, nil)
}

// FindUserFieldCodeByTitle resolves the generated UF_ code of a custom field
// by its human title. Matching ignores case and surrounding whitespace and
// considers, per field, the title, form label, name and NAME labels in that
// order. Fields are scanned in the order the metadata endpoint lists them,
// so when two custom fields share a title the first-listed one wins; a
// token-level walk is required because Go maps do not keep that order.
func (c *Client) FindUserFieldCodeByTitle(ctx context.Context, entity, title string) (string, error) {
	raw, err := c.entityFieldsRaw(ctx, entity)
	if err != nil {
		return "", err
	}

	want := foldLabel(title)

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return "", fmt.Errorf("decode error: field metadata is not an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("decode error: %w", err)
		}
		code, _ := keyTok.(string)

		var meta FieldMeta
		if err := dec.Decode(&meta); err != nil {
			return "", fmt.Errorf("decode error: %w", err)
		}
		if !strings.HasPrefix(code, userFieldPrefix) {
			continue
		}
		for _, labelKey := range fieldLabelKeys {
			label, ok := meta[labelKey].(string)
			if !ok || label == "" {
				continue
			}
			if foldLabel(label) == want {
				return code, nil
			}
		}
	}
	return "", fmt.Errorf("user field %q on %s: %w", title, entity, ErrNotFound)
}

func foldLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
