package lines

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lines/internal/games/lines/engine"
)

func TestParseMoveCommand(t *testing.T) {
	tests := []struct {
		input string
		want  MoveCommand
	}{
		{"{1,0} {0,4}", MoveCommand{engine.At(1, 0), engine.At(0, 4)}},
		{"  {4,4}   {3,4}  ", MoveCommand{engine.At(4, 4), engine.At(3, 4)}},
		{"{ 8 , 2 } { 0 ,0 }", MoveCommand{engine.At(8, 2), engine.At(0, 0)}},
		{"{1,2}{3,4}", MoveCommand{engine.At(1, 2), engine.At(3, 4)}},
		{"{-1,0} {0,10}", MoveCommand{engine.At(-1, 0), engine.At(0, 10)}},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMoveCommand(tc.input)
			if err != nil {
				t.Fatalf("ParseMoveCommand(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseMoveCommand(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseMoveCommandErrors(t *testing.T) {
	tests := []struct {
		input   string
		mention string
	}{
		{"", "empty"},
		{"{1,2}", "missing destination"},
		{"1,2 {3,4}", "1,2"},
		{"{1,2} {3,4", "{3,4"},
		{"{1,2,3} {3,4}", "{1,2,3}"},
		{"{a,2} {3,4}", `"a"`},
		{"{1,2} {3,4} extra", "extra"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseMoveCommand(tc.input)
			if !errors.Is(err, ErrBadCommand) {
				t.Fatalf("ParseMoveCommand(%q) error = %v, want ErrBadCommand", tc.input, err)
			}
			if !strings.Contains(err.Error(), tc.mention) {
				t.Errorf("error %q should mention %q", err, tc.mention)
			}
		})
	}
}

func TestMoveCommandRoundTrip(t *testing.T) {
	cmd := MoveCommand{engine.At(2, 7), engine.At(6, 1)}
	got, err := ParseMoveCommand(cmd.String())
	if err != nil || got != cmd {
		t.Errorf("ParseMoveCommand(%q) = %v, %v", cmd.String(), got, err)
	}
}

func TestReadCommands(t *testing.T) {
	script := `# opening
{0,0} {0,1}

  {1,1} {2,2}
# done
`
	cmds, err := ReadCommands(strings.NewReader(script))
	if err != nil {
		t.Fatalf("ReadCommands() failed: %v", err)
	}
	if len(cmds) != 2 {
		t.Fatalf("ReadCommands() returned %d commands, want 2", len(cmds))
	}
	if cmds[1].To != engine.At(2, 2) {
		t.Errorf("second command = %v", cmds[1])
	}

	_, err = ReadCommands(strings.NewReader("{0,0} {0,1}\n{bad}\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("ReadCommands() error = %v, want it to name line 2", err)
	}
}
