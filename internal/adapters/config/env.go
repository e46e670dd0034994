package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup treats unset and blank variables the same way.
func lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func getIntEnv(key string, defaultValue int) int {
	value, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getUintEnv(key string, defaultValue uint64) uint64 {
	value, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return uintValue
}

func getStringEnv(key string, defaultValue string) string {
	value, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// getDurationEnv accepts Go durations ("500ms", "2m") and bare integers, read as seconds.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
