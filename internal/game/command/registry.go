package command

import (
	"fmt"
	"strings"
)

// Registry maps command names, aliases, and prefixes to Command definitions.
type Registry struct {
	commands map[string]*Command // canonical name → command
	aliases  map[string]string   // alias → canonical name
	prefixes []prefixEntry       // registration order
	order    []*Command
}

type prefixEntry struct {
	prefix string
	cmd    *Command
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a canonical name, alias, or prefix.
// Postcondition: Returns a Registry or an error on collisions or empty prefixes.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string),
	}

	for i := range cmds {
		cmd := &cmds[i]
		if _, exists := r.commands[cmd.Name]; exists {
			return nil, fmt.Errorf("duplicate command name: %q", cmd.Name)
		}
		if _, exists := r.aliases[cmd.Name]; exists {
			return nil, fmt.Errorf("command name %q conflicts with an existing alias", cmd.Name)
		}
		r.commands[cmd.Name] = cmd
		r.order = append(r.order, cmd)

		for _, alias := range cmd.Aliases {
			if _, exists := r.commands[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with command name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, cmd.Name)
			}
			r.aliases[alias] = cmd.Name
		}

		for _, prefix := range cmd.Prefixes {
			if strings.TrimSpace(prefix) == "" {
				return nil, fmt.Errorf("command %q: prefix must not be blank", cmd.Name)
			}
			for _, pe := range r.prefixes {
				if pe.prefix == prefix {
					return nil, fmt.Errorf("duplicate prefix %q: used by %q and %q", prefix, pe.cmd.Name, cmd.Name)
				}
			}
			r.prefixes = append(r.prefixes, prefixEntry{prefix: prefix, cmd: cmd})
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in commands.
//
// Postcondition: Returns a Registry with all built-in commands registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up an exact-match command by name or alias.
// Prefix commands are never returned.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Command, bool) {
	if cmd, ok := r.commands[input]; ok && !cmd.IsPrefix() {
		return cmd, true
	}
	if canonical, ok := r.aliases[input]; ok {
		if cmd := r.commands[canonical]; !cmd.IsPrefix() {
			return cmd, true
		}
	}
	return nil, false
}

// ResolvePrefix finds the first registered prefix that input starts with and
// returns its command and the text after the prefix.
//
// Postcondition: Returns (command, remainder, true) on a match, or (nil, "", false).
func (r *Registry) ResolvePrefix(input string) (*Command, string, bool) {
	for _, pe := range r.prefixes {
		if rest, ok := strings.CutPrefix(input, pe.prefix); ok {
			return pe.cmd, rest, true
		}
	}
	return nil, "", false
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.order))
	copy(out, r.order)
	return out
}

// CommandsByCategory returns commands grouped by category.
func (r *Registry) CommandsByCategory() map[string][]*Command {
	categories := make(map[string][]*Command)
	for _, cmd := range r.order {
		categories[cmd.Category] = append(categories[cmd.Category], cmd)
	}
	return categories
}
