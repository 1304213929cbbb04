package cli

import (
	"fmt"
	"strings"

	"github.com/crmgate/bitrix24-go/pkg/bitrix24"
)

// parseFieldArgs turns repeated --field KEY=VALUE arguments into a Bitrix24
// fields mapping. Values are passed through as strings; the remote schema
// decides their meaning.
func parseFieldArgs(args []string) (bitrix24.Fields, error) {
	fields := make(bitrix24.Fields, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --field %q (expected KEY=VALUE)", arg)
		}
		fields[strings.TrimSpace(key)] = value
	}
	return fields, nil
}
