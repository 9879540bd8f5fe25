package console

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/text/message"

	"github.com/cory-johannsen/cavern/internal/game/locale"
	"github.com/cory-johannsen/cavern/internal/game/world"
)

// Renderer formats rooms and feedback for the terminal.
type Renderer struct {
	printer *message.Printer
	color   bool
	width   int
}

// NewRenderer creates a Renderer. A width of 0 disables wrapping.
//
// Precondition: printer must be non-nil; width must be >= 0.
func NewRenderer(printer *message.Printer, color bool, width int) *Renderer {
	return &Renderer{
		printer: printer,
		color:   color,
		width:   width,
	}
}

// Room formats a room: its name, description, any items lying there, and
// the labels of its exits in the room's exit order. Destination IDs are
// never shown.
func (r *Renderer) Room(room *world.Room) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.paint(BrightYellow, "== "+room.Name()+" =="))
	b.WriteString("\n")
	b.WriteString(r.paint(White, r.wrap(room.Description())))
	b.WriteString("\n")

	if items := room.Items(); len(items) > 0 {
		b.WriteString(r.paint(Green, r.wrap(r.printer.Sprintf(locale.MsgItemsHere)+" "+strings.Join(items, ", "))))
		b.WriteString("\n")
	}

	if exits := room.Directions(); len(exits) > 0 {
		b.WriteString("\n")
		b.WriteString(r.paint(Cyan, r.printer.Sprintf(locale.MsgExits)))
		b.WriteString("\n")
		for _, d := range exits {
			b.WriteString("- ")
			b.WriteString(r.paint(BrightCyan, locale.Direction(r.printer, d)))
			b.WriteString("\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Feedback formats an interpreter message.
func (r *Renderer) Feedback(text string) string {
	return r.paint(Yellow, text)
}

// Error formats a fatal error message.
func (r *Renderer) Error(text string) string {
	return r.paint(Red, text)
}

// Prompt formats the command prompt.
func (r *Renderer) Prompt(prompt string) string {
	return r.paint(Bold, prompt)
}

func (r *Renderer) paint(color, text string) string {
	if !r.color || text == "" {
		return text
	}
	return Colorize(color, text)
}

// wrap breaks text at word boundaries, then hard-wraps anything still too
// long (unspaced CJK text has no word boundaries).
func (r *Renderer) wrap(text string) string {
	if r.width <= 0 {
		return text
	}
	return wrap.String(wordwrap.String(text, r.width), r.width)
}
