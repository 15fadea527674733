package application

import "context"

// Command represents a request that modifies stored todos.
type Command interface {
	CommandName() string
}

// CommandHandler handles a command that reports only success or failure.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultCommandHandler handles a command that returns the changed state.
type ResultCommandHandler[C Command, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}
