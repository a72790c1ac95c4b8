package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-lines/internal/games/lines/engine"
)

// ErrBadCommand is wrapped by every move-command parse error.
var ErrBadCommand = errors.New("lines: bad move command")

// MoveCommand asks for the piece on From to move to To.
type MoveCommand struct {
	From, To engine.Cell
}

// String formats the command in the form ParseMoveCommand accepts.
func (c MoveCommand) String() string {
	return c.From.String() + " " + c.To.String()
}

// ParseMoveCommand parses "{r1,c1} {r2,c2}". Whitespace is allowed around
// the cells and inside the braces.
func ParseMoveCommand(s string) (MoveCommand, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return MoveCommand{}, fmt.Errorf("%w: empty command", ErrBadCommand)
	}

	var cells [2]engine.Cell
	for i := range cells {
		if rest == "" {
			return MoveCommand{}, fmt.Errorf("%w: missing destination in %q", ErrBadCommand, s)
		}
		if rest[0] != '{' {
			return MoveCommand{}, fmt.Errorf("%w: expected '{' at %q", ErrBadCommand, token(rest))
		}
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return MoveCommand{}, fmt.Errorf("%w: unterminated cell %q", ErrBadCommand, rest)
		}

		c, err := parseCell(rest[:end+1])
		if err != nil {
			return MoveCommand{}, err
		}
		cells[i] = c
		rest = strings.TrimSpace(rest[end+1:])
	}

	if rest != "" {
		return MoveCommand{}, fmt.Errorf("%w: unexpected %q after destination", ErrBadCommand, token(rest))
	}
	return MoveCommand{From: cells[0], To: cells[1]}, nil
}

// parseCell parses a single "{r,c}" token.
func parseCell(tok string) (engine.Cell, error) {
	inner := tok[1 : len(tok)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		return engine.Cell{}, fmt.Errorf("%w: cell %q needs two comma-separated numbers", ErrBadCommand, tok)
	}

	var n [2]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return engine.Cell{}, fmt.Errorf("%w: %q in cell %q is not a number", ErrBadCommand, strings.TrimSpace(p), tok)
		}
		n[i] = v
	}
	return engine.At(n[0], n[1]), nil
}

// token returns the leading non-space run of s, for error messages.
func token(s string) string {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i]
	}
	return s
}

// ReadCommands parses one command per line. Blank lines and lines starting
// with # are skipped; errors carry the line number.
func ReadCommands(r io.Reader) ([]MoveCommand, error) {
	var cmds []MoveCommand
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := ParseMoveCommand(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lines: cannot read commands: %w", err)
	}
	return cmds, nil
}
