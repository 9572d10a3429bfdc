package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Color  func(TokenArgs) (Result, error)
	Layout func(TokenArgs) (Result, error)
	Font   func(TokenArgs) (Result, error)
	Shape  func(TokenArgs) (Result, error)
	Size   func(TokenArgs) (Result, error)
	Text   func(TextArgs) (Result, error)
	Clock  func(ToggleArgs) (Result, error)
	Stats  func(ToggleArgs) (Result, error)
	Reset  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeColor:
		return runToken(cmd, handlers.Color)
	case TypeLayout:
		return runToken(cmd, handlers.Layout)
	case TypeFont:
		return runToken(cmd, handlers.Font)
	case TypeShape:
		return runToken(cmd, handlers.Shape)
	case TypeSize:
		return runToken(cmd, handlers.Size)
	case TypeText:
		if handlers.Text == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Text(*cmd.Text)
	case TypeClock:
		return runToggle(cmd, handlers.Clock)
	case TypeStats:
		return runToggle(cmd, handlers.Stats)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Reset()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func runToken(cmd Command, fn func(TokenArgs) (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missing(cmd.Type)
	}
	return fn(*cmd.Token)
}

func runToggle(cmd Command, fn func(ToggleArgs) (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missing(cmd.Type)
	}
	return fn(*cmd.Toggle)
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
