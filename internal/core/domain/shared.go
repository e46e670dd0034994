package domain

import "regexp"

type ID string

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidateID reports whether id is a 24-character hexadecimal object identifier.
func ValidateID(id string) bool {
	return idPattern.MatchString(id)
}

type Event interface {
	GetName() string
	GetEntityName() string
}
