package vocab

import (
	"fmt"
	"strings"
)

// UnknownTableError indicates a lookup against a table that was never
// queried from the device (and is not in the cache). It usually means the
// caller should trigger a vocabulary rebuild.
type UnknownTableError struct {
	// Name is the missing table
	Name string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("vocabulary table %q has not been queried", e.Name)
}

// UnknownCodeError indicates a code with no entry in its table. The decoded
// record cannot be trusted, so the code is never passed through numerically.
type UnknownCodeError struct {
	// Table is the table that was consulted
	Table string

	// Code is the code with no label
	Code uint16
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("vocabulary table %q has no entry for code %d", e.Table, e.Code)
}

// InvalidValueError indicates an attempted property write whose value is not
// among the labels the device accepts. It is raised before anything is sent
// to the device.
type InvalidValueError struct {
	// Table is the vocabulary governing the property
	Table string

	// Value is the rejected value
	Value string

	// Accepted lists every label the device accepts, sorted
	Accepted []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: accepted values are %s",
		e.Value, e.Table, strings.Join(e.Accepted, ", "))
}
