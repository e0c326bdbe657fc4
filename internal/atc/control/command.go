package control

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("control: unknown command")
	ErrBadArguments   = errors.New("control: bad command arguments")
)

type CommandType int

const (
	ADD CommandType = iota
	GENERATE
	PEEK
	LAND
	ASSIGN
	HEAP
)

var CommandStringMap = map[CommandType]string{
	ADD:      "ADD",
	GENERATE: "GEN",
	PEEK:     "PEEK",
	LAND:     "LAND",
	ASSIGN:   "AC",
	HEAP:     "HEAP",
}

type Command struct {
	Type     CommandType
	Flight   string
	Position int
	Code     int
}

func (c Command) String() string {
	switch c.Type {
	case ADD:
		return fmt.Sprintf("ADD %s", c.Flight)
	case ASSIGN:
		return fmt.Sprintf("AC %d %d", c.Position, c.Code)
	default:
		return CommandStringMap[c.Type]
	}
}

// ParseCommand reads one line of the form "<Command> [<Args>]".
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}

	args := parts[1:]
	switch strings.ToUpper(parts[0]) {
	case "A", "ADD":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: expected ADD <Flight>", ErrBadArguments)
		}
		return Command{Type: ADD, Flight: args[0]}, nil
	case "G", "GEN", "GENERATE":
		return noArgs(GENERATE, args)
	case "P", "PEEK":
		return noArgs(PEEK, args)
	case "L", "LAND", "POP":
		return noArgs(LAND, args)
	case "V", "HEAP", "VIEW":
		return noArgs(HEAP, args)
	case "I", "AC", "INCREASE":
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: expected AC <Position> <Code>", ErrBadArguments)
		}
		position, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: position %q is not a number", ErrBadArguments, args[0])
		}
		code, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: approach code %q is not a number", ErrBadArguments, args[1])
		}
		return Command{Type: ASSIGN, Position: position, Code: code}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}
}

func noArgs(t CommandType, args []string) (Command, error) {
	if len(args) != 0 {
		return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadArguments, CommandStringMap[t])
	}
	return Command{Type: t}, nil
}

// Execute runs cmd against the session.
func (s *Session) Execute(cmd Command) (View, error) {
	s.logger.Debugf("Executing %s", cmd)
	switch cmd.Type {
	case ADD:
		return s.Add(cmd.Flight)
	case GENERATE:
		return s.Generate(), nil
	case PEEK:
		_, v, err := s.Peek()
		return v, err
	case LAND:
		_, v, err := s.Land()
		return v, err
	case ASSIGN:
		return s.AssignApproachCode(cmd.Position, cmd.Code)
	case HEAP:
		return s.ViewHeap(), nil
	default:
		return s.view, fmt.Errorf("%w: %d", ErrUnknownCommand, cmd.Type)
	}
}

// ExecuteLine parses and runs one line of input.
func (s *Session) ExecuteLine(line string) (View, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		s.logger.Warnf("Invalid command %q: %v", line, err)
		return s.view, err
	}
	return s.Execute(cmd)
}
