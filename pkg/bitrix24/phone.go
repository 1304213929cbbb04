package bitrix24

import "strings"

// NormalizePhone canonicalizes a phone number for duplicate matching:
// everything except digits and a leading plus is stripped, then the common
// Russian forms are rewritten to +7 notation (11 digits starting with 8 or
// with a bare 7). The function is pure and idempotent; an empty or
// digit-free input yields the empty string. The same rules run server-side
// in stored duplicate-detection logic, so the rewrite must not drift.
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	s := b.String()

	if len(s) == 11 && s[0] == '8' {
		return "+7" + s[1:]
	}
	if len(s) == 11 && s[0] == '7' {
		return "+" + s
	}
	return s
}
