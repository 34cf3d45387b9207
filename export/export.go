// The "export" command consolidates the whole series tree into one flat table:
//
//   timestamp,platform,account,metric,value
//
// sorted by timestamp ascending (numerically; ties keep encounter order).  Unlike check, export
// assumes a clean tree: the first malformed row or unattributable file aborts the run.  The
// reserved errors log is never exported.

package export

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"metrack/command"
	"metrack/common"
	"metrack/series"
	"metrack/store"
)

var exportHelp = []string{
	"Merge every series file under the data directory into one sorted CSV",
	"table annotated with platform, account, and metric.  With -db, also",
	"mirror the table into a Postgres database.",
}

type ExportCommand struct {
	command.VerboseArgs
	command.ConfigArgs
	OutputFile  string
	DatabaseURI string
}

func (ec *ExportCommand) Summary() []string {
	return exportHelp
}

func (ec *ExportCommand) Add(fs *flag.FlagSet) {
	ec.VerboseArgs.Add(fs)
	ec.ConfigArgs.Add(fs)
	fs.StringVar(&ec.OutputFile, "o", "", "Output `filename` (required)")
	fs.StringVar(&ec.DatabaseURI, "db", "", "Postgres connection `uri` to mirror the table into")
}

func (ec *ExportCommand) Validate() error {
	e1 := errors.Join(ec.VerboseArgs.Validate(), ec.ConfigArgs.Validate())
	var e2, e3 error
	if ec.OutputFile == "" {
		e2 = errors.New("Required -o argument is absent")
	}
	if ec.Config() != nil && ec.Config().DataDir == "" {
		e3 = errors.New("Required -data-dir argument is absent")
	}
	return errors.Join(e1, e2, e3)
}

// One merged observation, denormalized with its identity.
type exportRow struct {
	epoch int64
	id    store.Identity
	value string
}

func (ec *ExportCommand) Perform(_ io.Reader, stdout, _ io.Writer) error {
	cfg := ec.Config()
	s, err := store.Open(cfg)
	if err != nil {
		return err
	}
	rows, err := collectRows(s, cfg)
	if err != nil {
		return err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].epoch < rows[j].epoch
	})
	if err := writeTable(ec.OutputFile, rows); err != nil {
		return err
	}
	if ec.DatabaseURI != "" {
		if err := mirrorTable(ec.DatabaseURI, rows); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "Exported %d records to %s\n", len(rows), ec.OutputFile)
	return nil
}

func collectRows(s *store.Store, cfg *common.Config) ([]exportRow, error) {
	files, err := s.EnumerateSeries()
	if err != nil {
		return nil, err
	}
	rows := []exportRow{}
	for _, f := range files {
		if filepath.Base(f) == cfg.ErrorsFile {
			continue
		}
		id, err := s.Decompose(f)
		if err != nil {
			return nil, err
		}
		common.Log.Infof("exporting %s/%s/%s", id.Platform, id.Account, id.Metric)
		numeric := cfg.NumericSeries(f)
		raw, err := store.ReadRows(f)
		if err != nil {
			return nil, err
		}
		for i, fields := range raw {
			r, err := series.DecodeRecord(fields, numeric)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", f, i+1, err)
			}
			value := r.Text
			if numeric {
				value = strconv.FormatInt(r.Num, 10)
			}
			rows = append(rows, exportRow{epoch: r.When.Unix(), id: id, value: value})
		}
	}
	return rows, nil
}

func writeTable(filename string, rows []exportRow) error {
	output, err := os.CreateTemp(filepath.Dir(filename), "metrack-export")
	if err != nil {
		return err
	}
	tmpname := output.Name()
	wr := csv.NewWriter(output)
	wr.Write([]string{"timestamp", "platform", "account", "metric", "value"})
	for _, r := range rows {
		wr.Write([]string{
			strconv.FormatInt(r.epoch, 10), r.id.Platform, r.id.Account, r.id.Metric, r.value,
		})
	}
	wr.Flush()
	if err := wr.Error(); err != nil {
		output.Close()
		os.Remove(tmpname)
		return err
	}
	if err := output.Close(); err != nil {
		os.Remove(tmpname)
		return err
	}
	return os.Rename(tmpname, filename)
}
