package utils

import (
	"strings"
)

// CompactQuery reduziert eine mehrzeilige GraphQL-Query auf eine Zeile
func CompactQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

// TruncateText kürzt Text auf maximale Länge
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	if maxLength <= 3 {
		return text[:maxLength]
	}

	return text[:maxLength-3] + "..."
}
