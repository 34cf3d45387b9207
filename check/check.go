// The "check" command validates series files best-effort: every defective row is reported with
// its file and 1-based row number, and neither a bad row nor a bad file stops the run.

package check

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"metrack/command"
	"metrack/common"
	"metrack/series"
)

var checkHelp = []string{
	"Validate series files.  With file operands, check those files; otherwise",
	"check every series file under the data directory.  Defects are reported",
	"per row and do not stop the run.",
}

type CheckCommand struct {
	command.VerboseArgs
	command.ConfigArgs
	files []string
}

func (cc *CheckCommand) Summary() []string {
	return checkHelp
}

func (cc *CheckCommand) Add(fs *flag.FlagSet) {
	cc.VerboseArgs.Add(fs)
	cc.ConfigArgs.Add(fs)
}

func (cc *CheckCommand) SetRestArguments(args []string) {
	cc.files = args
}

func (cc *CheckCommand) Validate() error {
	return errors.Join(cc.VerboseArgs.Validate(), cc.ConfigArgs.Validate())
}

func (cc *CheckCommand) Perform(_ io.Reader, stdout, _ io.Writer) error {
	cfg := cc.Config()
	files, err := command.ResolveTargets(cfg, cc.files, false)
	if err != nil {
		return err
	}
	defects := 0
	for _, f := range files {
		n, err := checkFile(stdout, cfg, f)
		if err != nil {
			return err
		}
		defects += n
	}
	if defects == 0 {
		fmt.Fprintf(stdout, "OK: %d file(s)\n", len(files))
	} else {
		fmt.Fprintf(stdout, "%d defect(s) in %d file(s)\n", defects, len(files))
	}
	return nil
}

func checkFile(stdout io.Writer, cfg *common.Config, filename string) (int, error) {
	common.Log.Infof("checking %s", filename)
	input, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer input.Close()
	defects := 0
	err = series.ValidateSeries(input, cfg.NumericSeries(filename),
		func(row int, _ series.Record, err error) {
			if err != nil {
				fmt.Fprintf(stdout, "%s:%d: %s\n", filename, row, err.Error())
				defects++
			}
		})
	return defects, err
}
