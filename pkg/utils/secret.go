package utils

import "strings"

// MaskSecret zeigt nur die letzten vier Zeichen eines Schlüssels an
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	runes := []rune(secret)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}

	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
