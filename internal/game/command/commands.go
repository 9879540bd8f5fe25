// Package command provides the command registry, input classification, and
// the interpreter that applies one line of input to the player.
package command

import "github.com/cory-johannsen/cavern/internal/game/locale"

// Categories for organizing commands.
const (
	CategoryWorld  = "world"
	CategorySystem = "system"
)

// Handler identifiers mapping commands to interpreter actions.
const (
	HandlerQuit      = "quit"
	HandlerHelp      = "help"
	HandlerInventory = "inventory"
	HandlerTake      = "take"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name. It is matched exactly unless the
	// command is a prefix command.
	Name string
	// Aliases are alternate exact-match names for this command.
	Aliases []string
	// Prefixes, when set, make this a prefix command: a line starting with
	// any prefix invokes it and the remainder is the argument.
	Prefixes []string
	// Help is the catalog key of the help line for this command.
	Help string
	// Category groups the command (world, system).
	Category string
	// Handler maps to the interpreter action.
	Handler string
}

// IsPrefix reports whether c is matched by prefix rather than exactly.
func (c *Command) IsPrefix() bool {
	return len(c.Prefixes) > 0
}

// BuiltinCommands returns all built-in commands in help-listing order.
// Movement is not listed here; any line that parses as a direction moves the player.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "inventory", Aliases: []string{"背包", "查看背包"}, Help: locale.MsgHelpInv, Category: CategoryWorld, Handler: HandlerInventory},
		{Name: "take", Prefixes: []string{"拿取 ", "take ", "get "}, Help: locale.MsgHelpTake, Category: CategoryWorld, Handler: HandlerTake},
		{Name: "help", Aliases: []string{"帮助"}, Help: locale.MsgHelpHelp, Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "退出"}, Help: locale.MsgHelpQuit, Category: CategorySystem, Handler: HandlerQuit},
	}
}
