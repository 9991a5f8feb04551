package sysguard

import "os"

// GetenvOrDefault returns the value of the environment variable key, or def
// when the variable is unset or empty.
func GetenvOrDefault(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return def
}

// WindowingAvailable reports whether a display server marker is present in
// the environment. An empty DISPLAY still counts as present.
func WindowingAvailable() bool {
	_, ok := os.LookupEnv("DISPLAY")

	return ok
}
