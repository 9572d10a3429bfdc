package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeColor  Type = "color"
	TypeLayout Type = "layout"
	TypeFont   Type = "font"
	TypeShape  Type = "shape"
	TypeSize   Type = "size"
	TypeText   Type = "text"
	TypeClock  Type = "clock"
	TypeStats  Type = "stats"
	TypeReset  Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// TokenArgs carries the raw picker value; the handler validates it.
type TokenArgs struct {
	Value string
}

type TextArgs struct {
	Text string
}

type ToggleMode string

const (
	ToggleOn   ToggleMode = "on"
	ToggleOff  ToggleMode = "off"
	ToggleFlip ToggleMode = "toggle"
)

type ToggleArgs struct {
	Mode ToggleMode
}

// Apply resolves the mode against the current value.
func (a ToggleArgs) Apply(current bool) bool {
	switch a.Mode {
	case ToggleOn:
		return true
	case ToggleOff:
		return false
	default:
		return !current
	}
}

type Command struct {
	Type   Type
	Raw    string
	Token  *TokenArgs
	Text   *TextArgs
	Toggle *ToggleArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch t := Type(head); t {
	case TypeColor, TypeLayout, TypeFont, TypeShape, TypeSize:
		return parseToken(input, t, args)
	case TypeText:
		return parseText(input, raw)
	case TypeClock, TypeStats:
		return parseToggle(input, t, args)
	case TypeReset:
		return Command{Type: TypeReset, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseToken(raw string, t Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one value", t)}
	}
	return Command{Type: t, Raw: raw, Token: &TokenArgs{Value: args[0]}}, nil
}

// parseText keeps the user's spacing after the command word; an empty text
// clears the field.
func parseText(raw string, body string) (Command, error) {
	text := strings.TrimSpace(body[len(TypeText):])
	return Command{Type: TypeText, Raw: raw, Text: &TextArgs{Text: text}}, nil
}

func parseToggle(raw string, t Type, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{Type: t, Raw: raw, Toggle: &ToggleArgs{Mode: ToggleFlip}}, nil
	}
	switch strings.ToLower(args[0]) {
	case "on", "show", "true":
		return Command{Type: t, Raw: raw, Toggle: &ToggleArgs{Mode: ToggleOn}}, nil
	case "off", "hide", "false":
		return Command{Type: t, Raw: raw, Toggle: &ToggleArgs{Mode: ToggleOff}}, nil
	case "toggle":
		return Command{Type: t, Raw: raw, Toggle: &ToggleArgs{Mode: ToggleFlip}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s expects on, off or toggle", t)}
	}
}
