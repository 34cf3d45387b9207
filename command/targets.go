package command

import (
	"os"
	"path/filepath"

	"metrack/common"
	"metrack/store"
)

// ResolveTargets turns the command's operands into the list of series files to work on.  Explicit
// file operands win; otherwise the whole tree under the configured data directory qualifies.
// With allowMissing, a nonexistent operand is accepted as an empty series about to be created.

func ResolveTargets(cfg *common.Config, operands []string, allowMissing bool) ([]string, error) {
	if len(operands) == 0 {
		s, err := store.Open(cfg)
		if err != nil {
			return nil, err
		}
		return s.EnumerateSeries()
	}
	files := make([]string, 0, len(operands))
	for _, f := range operands {
		f = filepath.Clean(f)
		if !cfg.IsSeriesFile(f) {
			return nil, Errorf("%s does not have the series extension %s", f, cfg.Extension)
		}
		info, err := os.Stat(f)
		if err != nil {
			if !(allowMissing && os.IsNotExist(err)) {
				return nil, Errorf("cannot access %s: %v", f, err)
			}
		} else if info.IsDir() {
			return nil, Errorf("%s is a directory, expected a series file", f)
		}
		files = append(files, f)
	}
	return files, nil
}
