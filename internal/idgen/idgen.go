// Package idgen produces and checks repository identifiers.
package idgen

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidID is returned by a Validator for identifiers it does not accept.
var ErrInvalidID = errors.New("invalid identifier")

// Generator generates unique identifiers.
// Implementations should be safe for concurrent use.
type Generator interface {
	Generate() (uuid.UUID, error)
}

// Validator checks that a client-supplied identifier is well formed.
type Validator interface {
	Validate(s string) (uuid.UUID, error)
}

// Version selects a UUID variant.
type Version uint8

const (
	V4 Version = 4
	V7 Version = 7
)

// ParseVersion accepts "4", "v4", "7" or "v7".
func ParseVersion(s string) (Version, error) {
	switch s {
	case "4", "v4":
		return V4, nil
	case "7", "v7":
		return V7, nil
	default:
		return 0, fmt.Errorf("unsupported uuid version %q (must be 4 or 7)", s)
	}
}

type v4Gen struct{}

// NewV4 returns a Generator that produces random UUIDs.
func NewV4() Generator { return v4Gen{} }

func (v4Gen) Generate() (uuid.UUID, error) {
	return uuid.NewRandom()
}

type v7Gen struct {
	maxRetries int
}

type V7Option func(*v7Gen)

// WithRetries sets how many times to retry uuid.NewV7() after the initial attempt.
// Defaults to 1. Set to 0 to disable retries.
func WithRetries(n int) V7Option {
	return func(g *v7Gen) {
		if n >= 0 {
			g.maxRetries = n
		}
	}
}

// NewV7 returns a Generator that produces time-ordered UUIDs.
func NewV7(opts ...V7Option) Generator {
	g := &v7Gen{maxRetries: 1}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *v7Gen) Generate() (uuid.UUID, error) {
	var last error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		id, err := uuid.NewV7()
		if err == nil {
			return id, nil
		}
		last = err
	}
	return uuid.Nil, fmt.Errorf("uuid v7 generation failed after %d attempts: %w", g.maxRetries+1, last)
}

// New returns a Generator for the requested UUID version.
func New(v Version, v7opts ...V7Option) Generator {
	switch v {
	case V7:
		return NewV7(v7opts...)
	default:
		return NewV4()
	}
}

type uuidValidator struct{}

// NewValidator returns a Validator accepting canonical RFC 9562 UUIDs of any
// version except the nil UUID.
func NewValidator() Validator { return uuidValidator{} }

func (uuidValidator) Validate(s string) (uuid.UUID, error) {
	// uuid.Parse also accepts braced and urn: forms; identifiers are only ever
	// handed out in the 36-char form.
	if len(s) != 36 {
		return uuid.Nil, ErrInvalidID
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil || id.Variant() != uuid.RFC4122 {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// Decode lets envconfig populate a Version from "4"/"v4"/"7"/"v7".
func (v *Version) Decode(value string) error {
	parsed, err := ParseVersion(value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
