// The "add" command runs an interactive entry session against each target series file: show the
// last record, prompt for a new value, append it with the current wall-clock timestamp, and
// rewrite the file.  Two consecutive blank inputs skip the file without touching it.

package add

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"metrack/command"
)

var addHelp = []string{
	"Interactively append one observation per target series file.  With file",
	"operands, visit those files; otherwise visit every series file under",
	"the data directory.  A blank input, confirmed by a second blank input,",
	"skips the file.",
}

type AddCommand struct {
	command.VerboseArgs
	command.ConfigArgs
	files []string
}

func (ac *AddCommand) Summary() []string {
	return addHelp
}

func (ac *AddCommand) Add(fs *flag.FlagSet) {
	ac.VerboseArgs.Add(fs)
	ac.ConfigArgs.Add(fs)
}

func (ac *AddCommand) SetRestArguments(args []string) {
	ac.files = args
}

func (ac *AddCommand) Validate() error {
	return errors.Join(ac.VerboseArgs.Validate(), ac.ConfigArgs.Validate())
}

// Sessions are independent: one file's failure is reported and the loop moves on to the next
// file, it never aborts the run.

func (ac *AddCommand) Perform(stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := ac.Config()
	files, err := command.ResolveTargets(cfg, ac.files, true)
	if err != nil {
		return err
	}
	in := bufio.NewReader(stdin)
	for _, f := range files {
		if err := runSession(in, stdout, cfg, f); err != nil {
			fmt.Fprintf(stderr, "%s: error: %v\n", f, err)
		}
	}
	return nil
}
