package command

import (
	"flag"
	"fmt"
	"io"
)

///////////////////////////////////////////////////////////////////////////////////////////////////
//
// Represents a metrack command: check, view, export, add.

type Command interface {
	// Brief lines for the help text
	Summary() []string

	// Add all arguments including shared arguments
	Add(fs *flag.FlagSet)

	// Validate all arguments including shared arguments
	Validate() error

	// Perform the operation
	Perform(stdin io.Reader, stdout, stderr io.Writer) error
}

// Commands that take trailing file operands implement this.
type SetRestArgumentsAPI interface {
	SetRestArguments(args []string)
}

// CommandError means an external-facing precondition failed: wrong file extension, a directory
// where a file was expected, and the like.

type CommandError struct {
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func Errorf(format string, args ...any) error {
	return &CommandError{fmt.Sprintf(format, args...)}
}
