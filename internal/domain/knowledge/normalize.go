package knowledge

import "strings"

func normalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}
