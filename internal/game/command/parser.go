package command

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/cavern/internal/game/world"
)

// Kind identifies how a line of input was classified.
type Kind int

const (
	// KindUnknown is input that matched nothing.
	KindUnknown Kind = iota
	// KindCommand is an exact-match or prefix command.
	KindCommand
	// KindDirection is a direction token.
	KindDirection
)

// Input is one classified line of operator input.
type Input struct {
	// Kind is the classification result.
	Kind Kind
	// Line is the trimmed, case-folded input.
	Line string
	// Command is set when Kind is KindCommand.
	Command *Command
	// Argument is the text after a matched prefix, as typed (already case-folded).
	Argument string
	// Direction is set when Kind is KindDirection.
	Direction world.Direction
}

// Normalize trims surrounding whitespace and case-folds a line of input.
func Normalize(line string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(line))
}

// Classify normalizes line and matches it against reg and the direction
// tokens. Exact commands take precedence over prefix commands, which take
// precedence over directions.
//
// Postcondition: Returns an Input; Kind is KindUnknown if nothing matched.
func Classify(reg *Registry, line string) Input {
	in := Input{Line: Normalize(line)}

	if cmd, ok := reg.Resolve(in.Line); ok {
		in.Kind = KindCommand
		in.Command = cmd
		return in
	}
	if cmd, rest, ok := reg.ResolvePrefix(in.Line); ok {
		in.Kind = KindCommand
		in.Command = cmd
		in.Argument = rest
		return in
	}
	if d, ok := world.ParseDirection(in.Line); ok {
		in.Kind = KindDirection
		in.Direction = d
		return in
	}
	return in
}
