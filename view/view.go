// The "view" command pretty-prints a single series: one line per record with the instant in local
// time and numeric values right-aligned with thousands grouping.  Defective rows are reported in
// place, like check.

package view

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"metrack/command"
	"metrack/series"
)

const instantFormat = "2006-01-02 15:04:05"

var viewHelp = []string{
	"Pretty-print one series file: timestamp and value per line, numeric",
	"values right-aligned with thousands grouping.",
}

type ViewCommand struct {
	command.VerboseArgs
	command.ConfigArgs
	files []string
}

func (vc *ViewCommand) Summary() []string {
	return viewHelp
}

func (vc *ViewCommand) Add(fs *flag.FlagSet) {
	vc.VerboseArgs.Add(fs)
	vc.ConfigArgs.Add(fs)
}

func (vc *ViewCommand) SetRestArguments(args []string) {
	vc.files = args
}

func (vc *ViewCommand) Validate() error {
	e1 := errors.Join(vc.VerboseArgs.Validate(), vc.ConfigArgs.Validate())
	var e2 error
	if len(vc.files) != 1 {
		e2 = errors.New("view requires exactly one series file operand")
	}
	return errors.Join(e1, e2)
}

func (vc *ViewCommand) Perform(_ io.Reader, stdout, _ io.Writer) error {
	cfg := vc.Config()
	files, err := command.ResolveTargets(cfg, vc.files, false)
	if err != nil {
		return err
	}
	filename := files[0]
	numeric := cfg.NumericSeries(filename)
	input, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer input.Close()

	type line struct {
		row   int
		rec   series.Record
		err   error
		value string
	}
	lines := []line{}
	width := 0
	err = series.ValidateSeries(input, numeric, func(row int, r series.Record, err error) {
		l := line{row: row, rec: r, err: err}
		if err == nil {
			if numeric {
				l.value = GroupDigits(r.Num)
			} else {
				l.value = r.Text
			}
			if numeric && len(l.value) > width {
				width = len(l.value)
			}
		}
		lines = append(lines, l)
	})
	if err != nil {
		return err
	}
	for _, l := range lines {
		if l.err != nil {
			fmt.Fprintf(stdout, "%s:%d: %s\n", filename, l.row, l.err.Error())
			continue
		}
		if numeric {
			fmt.Fprintf(stdout, "%s  %*s\n", l.rec.When.Local().Format(instantFormat), width, l.value)
		} else {
			fmt.Fprintf(stdout, "%s  %s\n", l.rec.When.Local().Format(instantFormat), l.value)
		}
	}
	return nil
}

// GroupDigits formats n in base 10 with "," between each group of three digits.

func GroupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(sign)
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
