// Package input parses the command prompt.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/grid"
	"github.com/javiermolinar/gridline/internal/importer"
)

var (
	// ErrUnknownCommand is returned for a prompt verb that is not recognised.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a known verb has malformed arguments.
	ErrUsage = errors.New("invalid arguments")
)

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Usage       string
	Description string
}

// Commands lists the prompt verbs in suggestion order.
var Commands = []PromptCommand{
	{Name: "load", Usage: "load PATH [sheet=NAME] [table=NAME]", Description: "Import a JSON, XLSX or SQLite file"},
	{Name: "insert", Usage: "insert rows|cols", Description: "Insert lines at the selection"},
	{Name: "delete", Usage: "delete rows|cols", Description: "Delete the selected lines"},
	{Name: "goto", Usage: "goto COL ROW", Description: "Select a cell"},
	{Name: "undo", Usage: "undo", Description: "Undo the last change"},
	{Name: "redo", Usage: "redo", Description: "Redo the last undone change"},
	{Name: "quit", Usage: "quit", Description: "Exit"},
}

// Verb identifies a parsed prompt command.
type Verb int

const (
	VerbLoad Verb = iota
	VerbInsert
	VerbDelete
	VerbGoto
	VerbUndo
	VerbRedo
	VerbQuit
)

// Command is a parsed prompt line.
type Command struct {
	Verb    Verb
	Path    string
	Options importer.Options
	Axis    grid.Axis
	Col     int
	Row     int
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(cmd.Name, prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	if strings.TrimSpace(input) == "" {
		return "", false
	}
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// ParsePrompt parses one prompt line.
func ParsePrompt(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty prompt", ErrUsage)
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "load", "open", "e":
		return parseLoad(args)
	case "insert", "ins":
		axis, err := parseAxis(verb, args)
		return Command{Verb: VerbInsert, Axis: axis}, err
	case "delete", "del":
		axis, err := parseAxis(verb, args)
		return Command{Verb: VerbDelete, Axis: axis}, err
	case "goto", "g":
		return parseGoto(args)
	case "undo", "u":
		return Command{Verb: VerbUndo}, noArgs(verb, args)
	case "redo":
		return Command{Verb: VerbRedo}, noArgs(verb, args)
	case "quit", "q":
		return Command{Verb: VerbQuit}, noArgs(verb, args)
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
}

func parseLoad(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: load needs a path", ErrUsage)
	}
	cmd := Command{Verb: VerbLoad, Path: args[0]}
	for _, arg := range args[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return Command{}, fmt.Errorf("%w: load option %q", ErrUsage, arg)
		}
		switch strings.ToLower(key) {
		case "sheet":
			cmd.Options.Sheet = value
		case "table":
			cmd.Options.Table = value
		case "limit":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return Command{}, fmt.Errorf("%w: limit %q", ErrUsage, value)
			}
			cmd.Options.Limit = n
		default:
			return Command{}, fmt.Errorf("%w: load option %q", ErrUsage, key)
		}
	}
	return cmd, nil
}

func parseAxis(verb string, args []string) (grid.Axis, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s rows|cols", ErrUsage, verb)
	}
	switch strings.ToLower(args[0]) {
	case "row", "rows", "r":
		return grid.Rows, nil
	case "col", "cols", "column", "columns", "c":
		return grid.Columns, nil
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUsage, verb, args[0])
}

// parseGoto accepts "goto B 12", "goto 2 12" and "goto B12".
func parseGoto(args []string) (Command, error) {
	var colStr, rowStr string
	switch len(args) {
	case 1:
		i := strings.IndexFunc(args[0], func(r rune) bool { return r >= '0' && r <= '9' })
		if i <= 0 {
			return Command{}, fmt.Errorf("%w: goto COL ROW", ErrUsage)
		}
		colStr, rowStr = args[0][:i], args[0][i:]
	case 2:
		colStr, rowStr = args[0], args[1]
	default:
		return Command{}, fmt.Errorf("%w: goto COL ROW", ErrUsage)
	}

	col, err := cells.ParseColumn(colStr)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	row, err := strconv.Atoi(rowStr)
	if err != nil || row < 1 {
		return Command{}, fmt.Errorf("%w: row %q", ErrUsage, rowStr)
	}
	return Command{Verb: VerbGoto, Col: col, Row: row}, nil
}

func noArgs(verb string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments", ErrUsage, verb)
	}
	return nil
}
