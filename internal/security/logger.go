package security

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sgaunet/cikit/internal/logger"
)

// DebugAuth logs which credentials a service will use without leaking them.
// Sensitive keys are redacted and every other value is sanitized.
//
// Example:
//
//	DebugAuth(log, "NuGet", map[string]string{
//	    "source":  "https://api.nuget.org/v3/index.json",
//	    "api_key": key.Value(),
//	})
func DebugAuth(log logger.Logger, service string, details map[string]string) {
	if log == nil {
		return
	}

	raw := make(map[string]any, len(details))
	for k, v := range details {
		raw[k] = v
	}
	sanitized := SanitizeMap(raw)

	keys := make([]string, 0, len(sanitized))
	for k := range sanitized {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, sanitized[k]))
	}
	log.Debug(fmt.Sprintf("Using %s credentials: %s", service, strings.Join(pairs, " ")))
}
