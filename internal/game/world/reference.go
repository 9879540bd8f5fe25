package world

import (
	_ "embed"
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLocale is the language the reference world is presented in.
var DefaultLocale = language.Chinese

//go:embed content/cavern.yaml
var referenceZone []byte

// Reference builds the five-room reference cavern in the default locale.
// Every call decodes into fresh storage, so callers may hold independent copies.
//
// Postcondition: Returns a validated Graph or a non-nil error.
func Reference() (*Graph, error) {
	return ReferenceIn(DefaultLocale)
}

// ReferenceIn builds the reference cavern with display text in the given language.
func ReferenceIn(tag language.Tag) (*Graph, error) {
	g, err := LoadGraphFromBytes(referenceZone, tag)
	if err != nil {
		return nil, fmt.Errorf("loading reference world: %w", err)
	}
	return g, nil
}

// MustReference is like Reference but panics if the embedded world is invalid.
func MustReference() *Graph {
	g, err := Reference()
	if err != nil {
		panic(err)
	}
	return g
}
