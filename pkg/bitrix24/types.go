package bitrix24

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Fields is an arbitrary Bitrix24 field mapping. The structure is dictated
// by the remote schema per endpoint and is not validated locally.
type Fields map[string]any

// ID decodes a Bitrix24 identifier. The portal returns ids as JSON numbers
// on some endpoints and quoted strings on others (list endpoints in
// particular), so both forms are accepted.
type ID int

func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse id %q: %w", s, err)
	}
	*id = ID(n)
	return nil
}

func decodeID(raw json.RawMessage) (int, error) {
	var id ID
	if err := json.Unmarshal(raw, &id); err != nil {
		return 0, fmt.Errorf("decode error: %w", err)
	}
	return int(id), nil
}

// truthy coerces a raw result value to a success flag the way the
// productrows endpoints are consumed: false/0/""/null are failure,
// everything else is success.
func truthy(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// withAssignee copies fields and pins ASSIGNED_BY_ID to the webhook user,
// overriding any caller-supplied value. The caller's map is not mutated.
func withAssignee(fields Fields, userID string) Fields {
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["ASSIGNED_BY_ID"] = userID
	return out
}

// firstMultifieldValue extracts the first VALUE from a Bitrix24 multifield
// slice (PHONE, EMAIL) in a submitted fields mapping, tolerating the slice
// element shapes callers actually pass.
func firstMultifieldValue(fields Fields, key string) string {
	var first any
	switch items := fields[key].(type) {
	case []Fields:
		if len(items) == 0 {
			return ""
		}
		first = items[0]
	case []map[string]any:
		if len(items) == 0 {
			return ""
		}
		first = items[0]
	case []any:
		if len(items) == 0 {
			return ""
		}
		first = items[0]
	default:
		return ""
	}

	switch m := first.(type) {
	case Fields:
		v, _ := m["VALUE"].(string)
		return v
	case map[string]any:
		v, _ := m["VALUE"].(string)
		return v
	}
	return ""
}
