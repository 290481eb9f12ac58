package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// floatToString keeps full precision; prices are stored as strings so the
// table never rounds them.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
