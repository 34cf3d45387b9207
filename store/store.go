// File-level access to the series tree.  The layout convention is
//
//   <data-dir>/<platform>/<account...>/<metric>.csv
//
// and the identity of a series is carried entirely by its location, never by file content.

package store

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"metrack/common"
)

type Store struct {
	root string
	cfg  *common.Config
}

type Identity struct {
	Platform string
	Account  string
	Metric   string
}

// DecompositionError means a file's location cannot be mapped to a (platform, account) pair.

type DecompositionError struct {
	Path string
	What string
}

func (e *DecompositionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.What)
}

// Open requires cfg.DataDir to name an existing directory and returns a store rooted there.

func Open(cfg *common.Config) (*Store, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("no data directory configured")
	}
	root := filepath.Clean(cfg.DataDir)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("bad data directory %s", root)
	}
	return &Store{root: root, cfg: cfg}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Decompose derives the series identity from the file's location relative to the store root.

func (s *Store) Decompose(filename string) (Identity, error) {
	metric := s.cfg.MetricName(filename)
	dir := filepath.Dir(filepath.Clean(filename))
	prefix := s.root + string(filepath.Separator)
	if !strings.HasPrefix(dir, prefix) {
		if dir == s.root {
			return Identity{}, &DecompositionError{filename, "no platform/account directories below the root"}
		}
		return Identity{}, &DecompositionError{filename, "not under data directory " + s.root}
	}
	rel := dir[len(prefix):]
	i := strings.IndexByte(rel, filepath.Separator)
	if i < 0 {
		return Identity{}, &DecompositionError{filename, "no account directory below the platform"}
	}
	return Identity{Platform: rel[:i], Account: rel[i+1:], Metric: metric}, nil
}

// EnumerateSeries returns every series file under the root, sorted by path (WalkDir order).  The
// reserved errors log is included; callers that must not see it filter on the base name.

func (s *Store) EnumerateSeries() ([]string, error) {
	files := []string{}
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && s.cfg.IsSeriesFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ReadRows reads all raw CSV rows of one series file.  A missing file is an empty series.

func ReadRows(filename string) ([][]string, error) {
	input, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer input.Close()
	rdr := csv.NewReader(input)
	rdr.FieldsPerRecord = -1
	return rdr.ReadAll()
}

// RewriteRows replaces the file's contents wholesale.  The write goes to a temp file in the same
// directory which is then renamed over the target, so a crash can't leave a half-written series.

func RewriteRows(filename string, rows [][]string) error {
	output, err := os.CreateTemp(filepath.Dir(filename), "metrack-series")
	if err != nil {
		return err
	}
	tmpname := output.Name()
	wr := csv.NewWriter(output)
	for _, row := range rows {
		wr.Write(row)
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
