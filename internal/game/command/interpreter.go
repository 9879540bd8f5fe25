package command

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/cory-johannsen/cavern/internal/game/locale"
	"github.com/cory-johannsen/cavern/internal/game/player"
	"github.com/cory-johannsen/cavern/internal/game/world"
)

// ErrRoomNotFound is returned when the player's current room is not in the
// world graph. It ends the game loop.
var ErrRoomNotFound = errors.New("room not found")

// Action names the effect a line of input had.
type Action string

// Interpreter actions.
const (
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionInventory Action = "inventory"
	ActionTake      Action = "take"
	ActionTakeEmpty Action = "take_empty"
	ActionMove      Action = "move"
	ActionNoExit    Action = "no_exit"
	ActionUnknown   Action = "unknown"
)

// Outcome is the result of interpreting one line.
type Outcome struct {
	// Action is what the line did.
	Action Action
	// Message is the localized feedback for the operator; may span lines.
	Message string
	// Quit is true when the game loop must stop.
	Quit bool
	// Direction is set for ActionMove and ActionNoExit.
	Direction world.Direction
	// Destination is the new room ID for ActionMove.
	Destination string
	// Item is the picked-up item name for ActionTake.
	Item string
}

// Interpreter applies classified input to a player within a world graph.
// It holds no game state; the graph and player are passed in on every call.
type Interpreter struct {
	registry *Registry
	printer  *message.Printer
	logger   *zap.Logger
}

// NewInterpreter creates an Interpreter.
//
// Precondition: reg, printer, and logger must be non-nil.
func NewInterpreter(reg *Registry, printer *message.Printer, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		registry: reg,
		printer:  printer,
		logger:   logger,
	}
}

// CurrentRoom resolves the player's current room in g.
//
// Postcondition: Returns the room, or an error wrapping ErrRoomNotFound.
func (in *Interpreter) CurrentRoom(g *world.Graph, p *player.Player) (*world.Room, error) {
	room, ok := g.GetRoom(p.RoomID())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, p.RoomID())
	}
	return room, nil
}

// Step interprets one line of input against the player's current room and
// applies it. Recoverable problems (unknown input, no exit) are reported in
// the Outcome message and leave the player unchanged.
//
// Precondition: g and p must be non-nil.
// Postcondition: Returns the Outcome, or an error wrapping ErrRoomNotFound
// when the player's room is missing from g.
func (in *Interpreter) Step(g *world.Graph, p *player.Player, line string) (Outcome, error) {
	room, err := in.CurrentRoom(g, p)
	if err != nil {
		return Outcome{}, err
	}

	input := Classify(in.registry, line)
	var out Outcome
	switch input.Kind {
	case KindCommand:
		out = in.runCommand(p, input)
	case KindDirection:
		out = in.move(p, room, input.Direction)
	default:
		out = Outcome{Action: ActionUnknown, Message: in.printer.Sprintf(locale.MsgUnknown)}
	}

	in.logger.Debug("command interpreted",
		zap.String("input", input.Line),
		zap.String("action", string(out.Action)),
		zap.String("room", room.ID()),
		zap.String("player_room", p.RoomID()),
	)
	return out, nil
}

func (in *Interpreter) runCommand(p *player.Player, input Input) Outcome {
	switch input.Command.Handler {
	case HandlerQuit:
		return Outcome{Action: ActionQuit, Quit: true, Message: in.printer.Sprintf(locale.MsgFarewell)}
	case HandlerHelp:
		return Outcome{Action: ActionHelp, Message: in.helpText()}
	case HandlerInventory:
		return Outcome{Action: ActionInventory, Message: in.inventoryText(p)}
	case HandlerTake:
		return in.take(p, input.Argument)
	default:
		return Outcome{Action: ActionUnknown, Message: in.printer.Sprintf(locale.MsgUnknown)}
	}
}

// take adds the named item to the inventory. The room's items are neither
// checked nor removed.
func (in *Interpreter) take(p *player.Player, arg string) Outcome {
	item := strings.TrimSpace(arg)
	if item == "" {
		return Outcome{Action: ActionTakeEmpty, Message: in.printer.Sprintf(locale.MsgTakeWhat)}
	}
	p.AddItem(item)
	return Outcome{Action: ActionTake, Item: item, Message: in.printer.Sprintf(locale.MsgTaken, item)}
}

func (in *Interpreter) move(p *player.Player, room *world.Room, dir world.Direction) Outcome {
	target, ok := room.Exit(dir)
	if !ok {
		return Outcome{Action: ActionNoExit, Direction: dir, Message: in.printer.Sprintf(locale.MsgNoExit)}
	}
	p.MoveTo(target)
	return Outcome{
		Action:      ActionMove,
		Direction:   dir,
		Destination: target,
		Message:     in.printer.Sprintf(locale.MsgMoved, locale.Direction(in.printer, dir)),
	}
}

func (in *Interpreter) helpText() string {
	lines := []string{
		in.printer.Sprintf(locale.MsgHelpHeader),
		"- " + in.printer.Sprintf(locale.MsgHelpMove),
	}
	for _, cmd := range in.registry.Commands() {
		lines = append(lines, "- "+in.printer.Sprintf(cmd.Help))
	}
	return strings.Join(lines, "\n")
}

func (in *Interpreter) inventoryText(p *player.Player) string {
	items := p.Inventory()
	if len(items) == 0 {
		return in.printer.Sprintf(locale.MsgInvEmpty)
	}
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, in.printer.Sprintf(locale.MsgInvHeader))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
