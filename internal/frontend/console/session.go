package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/cory-johannsen/cavern/internal/config"
	"github.com/cory-johannsen/cavern/internal/game/command"
	"github.com/cory-johannsen/cavern/internal/game/locale"
	"github.com/cory-johannsen/cavern/internal/game/player"
	"github.com/cory-johannsen/cavern/internal/game/world"
)

// Session runs one player's game over a Conn: the name prompt, then one
// room render, read, and interpret cycle per turn.
type Session struct {
	id         string
	conn       *Conn
	graph      *world.Graph
	interp     *command.Interpreter
	renderer   *Renderer
	printer    *message.Printer
	prompt     string
	playerName string
	logger     *zap.Logger

	player *player.Player
}

// NewSession creates a Session over the given world. When playerName is
// non-empty the name prompt is skipped.
//
// Precondition: conn, graph, reg, printer, and logger must be non-nil.
// Postcondition: Returns a Session with a fresh session ID.
func NewSession(conn *Conn, graph *world.Graph, reg *command.Registry, printer *message.Printer, cfg config.ConsoleConfig, playerName string, logger *zap.Logger) *Session {
	id := uuid.New().String()
	logger = logger.With(zap.String("session_id", id))
	return &Session{
		id:         id,
		conn:       conn,
		graph:      graph,
		interp:     command.NewInterpreter(reg, printer, logger),
		renderer:   NewRenderer(printer, cfg.Color, cfg.Width),
		printer:    printer,
		prompt:     cfg.Prompt,
		playerName: playerName,
		logger:     logger,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Player returns the session's player, or nil before Run has created one.
func (s *Session) Player() *player.Player { return s.player }

// Run plays the game until the operator quits or input ends.
//
// Postcondition: Returns nil on quit or end of input, ctx.Err() if ctx is
// done between turns, or an error wrapping command.ErrRoomNotFound if the
// player's room is missing from the world.
func (s *Session) Run(ctx context.Context) error {
	start := time.Now()

	if err := s.conn.WriteLine(s.printer.Sprintf(locale.MsgStarting)); err != nil {
		return fmt.Errorf("writing banner: %w", err)
	}

	name, err := s.readName()
	if errors.Is(err, io.EOF) {
		s.logger.Info("input closed before name was entered")
		return nil
	}
	if err != nil {
		return err
	}

	s.player = player.New(name, s.graph.StartRoom)
	s.logger.Info("session started",
		zap.String("player", name),
		zap.String("world", s.graph.ID),
		zap.String("room", s.player.RoomID()),
	)

	welcome := s.printer.Sprintf(locale.MsgWelcome, name) + "\n" + s.printer.Sprintf(locale.MsgHelpHint)
	if err := s.conn.WriteLine(welcome); err != nil {
		return fmt.Errorf("writing welcome: %w", err)
	}

	turns := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		room, err := s.interp.CurrentRoom(s.graph, s.player)
		if err != nil {
			return s.fail(err)
		}
		if err := s.conn.WriteLine(s.renderer.Room(room)); err != nil {
			return fmt.Errorf("writing room: %w", err)
		}
		if err := s.conn.WritePrompt("\n" + s.renderer.Prompt(s.prompt)); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}

		line, err := s.conn.ReadLine()
		if errors.Is(err, io.EOF) {
			s.logger.Info("input closed",
				zap.Int("turns", turns),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}
		turns++

		out, err := s.interp.Step(s.graph, s.player, line)
		if err != nil {
			return s.fail(err)
		}
		if err := s.conn.WriteLine(s.renderer.Feedback(out.Message)); err != nil {
			return fmt.Errorf("writing feedback: %w", err)
		}
		if out.Action == command.ActionMove {
			s.logger.Info("player moved",
				zap.String("direction", string(out.Direction)),
				zap.String("room", out.Destination),
			)
		}
		if out.Quit {
			s.logger.Info("player quit",
				zap.Int("turns", turns),
				zap.Int("items", s.player.Carrying()),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		}
	}
}

// readName returns the configured player name, or prompts for one.
// The typed name is trimmed but otherwise accepted as is, even when empty.
func (s *Session) readName() (string, error) {
	if s.playerName != "" {
		return s.playerName, nil
	}
	if err := s.conn.WritePrompt(s.printer.Sprintf(locale.MsgNamePrompt)); err != nil {
		return "", fmt.Errorf("writing name prompt: %w", err)
	}
	line, err := s.conn.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", err
		}
		return "", fmt.Errorf("reading player name: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// fail reports a lost room to the operator and returns err.
func (s *Session) fail(err error) error {
	s.logger.Error("current room not found",
		zap.String("room", s.player.RoomID()),
		zap.Error(err),
	)
	_ = s.conn.WriteLine(s.renderer.Error(s.printer.Sprintf(locale.MsgRoomNotFound)))
	return err
}
