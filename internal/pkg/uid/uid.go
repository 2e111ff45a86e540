// Package uid provides ID generation behind small interfaces so callers can
// swap implementations (and fake them in tests).
package uid

// NumberID generates numeric identifiers, typically for database primary keys.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers, typically for correlation IDs and tokens.
type StringID interface {
	Generate() string
}
