// Shared configuration for the data store layout.  All filesystem-name conventions live here and
// are threaded explicitly into the commands, there is no other ambient state.

package common

import (
	"fmt"
	"path"
	"strings"

	"github.com/gobwas/glob"
)

const (
	DefaultExtension   = ".csv"
	DefaultErrorsFile  = "errors.csv"
	DefaultProfileFile = "profile.txt"
)

type Config struct {
	// Root of the series tree.  May be empty when a command operates on explicit files only.
	DataDir string

	// Suffix of series files, with the leading dot.
	Extension string

	// Base name of the reserved errors log.  Always string-valued, never exported.
	ErrorsFile string

	// Base name of the per-account profile descriptor.
	ProfileFile string

	// Patterns over metric names that select string-valued series in addition to the errors log.
	stringSeries []glob.Glob
}

// NewConfig fills in defaults for empty fields and compiles the string-series patterns, which are
// given as a comma-separated list.

func NewConfig(dataDir, extension, errorsFile, profileFile, stringSeries string) (*Config, error) {
	if extension == "" {
		extension = DefaultExtension
	}
	if !strings.HasPrefix(extension, ".") {
		return nil, fmt.Errorf("extension must start with '.': %s", extension)
	}
	if errorsFile == "" {
		errorsFile = DefaultErrorsFile
	}
	if profileFile == "" {
		profileFile = DefaultProfileFile
	}
	cfg := &Config{
		DataDir:     dataDir,
		Extension:   extension,
		ErrorsFile:  errorsFile,
		ProfileFile: profileFile,
	}
	for _, pattern := range strings.Split(stringSeries, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad string-series pattern %s: %w", pattern, err)
		}
		cfg.stringSeries = append(cfg.stringSeries, g)
	}
	return cfg, nil
}

// IsSeriesFile tests whether the file's base name marks it as a series file.

func (c *Config) IsSeriesFile(filename string) bool {
	return strings.HasSuffix(path.Base(filename), c.Extension)
}

// MetricName is the base name of the file with the series extension stripped.

func (c *Config) MetricName(filename string) string {
	return strings.TrimSuffix(path.Base(filename), c.Extension)
}

// NumericSeries tests whether the file holds integer values.  The errors log and any metric
// matching a string-series pattern hold verbatim strings instead.

func (c *Config) NumericSeries(filename string) bool {
	base := path.Base(filename)
	if base == c.ErrorsFile {
		return false
	}
	metric := c.MetricName(filename)
	for _, g := range c.stringSeries {
		if g.Match(metric) {
			return false
		}
	}
	return true
}
