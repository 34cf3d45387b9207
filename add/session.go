package add

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"metrack/common"
	"metrack/series"
	"metrack/store"
)

const instantFormat = "2006-01-02 15:04:05"

// runSession is one entry session: load, report the last record, prompt, append, rewrite.  A
// cancelled prompt is a normal no-op; an unreadable trailing record is an error, we must not
// append after a record we can't interpret.

func runSession(in *bufio.Reader, out io.Writer, cfg *common.Config, filename string) error {
	numeric := cfg.NumericSeries(filename)
	rows, err := store.ReadRows(filename)
	if err != nil {
		return err
	}

	var last series.Record
	havePrior := false
	if len(rows) > 0 {
		last, err = series.DecodeRecord(rows[len(rows)-1], numeric)
		if err != nil {
			return fmt.Errorf("cannot append after unreadable last record: %w", err)
		}
		havePrior = true
		fmt.Fprintf(out, "%s: last record %s  %s\n",
			filename, last.When.Local().Format(instantFormat), formatValue(last, numeric))
	} else {
		fmt.Fprintf(out, "%s: no records yet\n", filename)
	}

	hint, found := store.ProfileHint(filename, cfg.ProfileFile)
	if !found {
		hint = cfg.MetricName(filename)
	}

	input, ok := promptValue(in, out, hint, numeric)
	if !ok {
		fmt.Fprintf(out, "skipped\n")
		return nil
	}

	rec := series.Record{When: time.Now().UTC().Truncate(time.Second)}
	if numeric {
		// promptValue only accepts integers for numeric series
		rec.Num, _ = strconv.ParseInt(input, 10, 64)
	} else {
		rec.Text = input
	}
	rows = append(rows, series.EncodeRecord(rec, numeric))
	if err := store.RewriteRows(filename, rows); err != nil {
		return err
	}

	delta := ""
	if numeric && havePrior {
		delta = fmt.Sprintf("  (%+d)", rec.Num-last.Num)
	}
	fmt.Fprintf(out, "recorded %s  %s%s\n",
		rec.When.Local().Format(instantFormat), formatValue(rec, numeric), delta)
	return nil
}

// promptValue runs the prompt loop.  The cancellation protocol is a two-state machine: a blank
// input moves to a confirmation prompt, where a second blank cancels and anything else is taken
// as the real input.  For numeric series a non-integer input restarts the loop; it does not count
// as a blank.  EOF on the input cancels.

func promptValue(in *bufio.Reader, out io.Writer, hint string, numeric bool) (string, bool) {
	for {
		fmt.Fprintf(out, "%s> ", hint)
		line, ok := readLine(in)
		if !ok {
			return "", false
		}
		if line == "" {
			fmt.Fprintf(out, "blank again to skip> ")
			line, ok = readLine(in)
			if !ok || line == "" {
				return "", false
			}
		}
		if !numeric {
			return line, true
		}
		if _, err := strconv.ParseInt(line, 10, 64); err == nil {
			return line, true
		}
		fmt.Fprintf(out, "not an integer: %s\n", line)
	}
}

func readLine(in *bufio.Reader) (string, bool) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func formatValue(r series.Record, numeric bool) string {
	if numeric {
		return strconv.FormatInt(r.Num, 10)
	}
	return r.Text
}
