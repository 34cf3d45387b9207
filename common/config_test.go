package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig("/data", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, DefaultExtension, cfg.Extension)
	assert.Equal(t, DefaultErrorsFile, cfg.ErrorsFile)
	assert.Equal(t, DefaultProfileFile, cfg.ProfileFile)
}

func TestNewConfigBadExtension(t *testing.T) {
	_, err := NewConfig("", "csv", "", "", "")
	require.Error(t, err)
}

func TestNewConfigBadPattern(t *testing.T) {
	_, err := NewConfig("", "", "", "", "[")
	require.Error(t, err)
}

func TestSeriesFileNaming(t *testing.T) {
	cfg, err := NewConfig("", "", "", "", "")
	require.NoError(t, err)
	assert.True(t, cfg.IsSeriesFile("x/y/followers.csv"))
	assert.False(t, cfg.IsSeriesFile("x/y/profile.txt"))
	assert.Equal(t, "followers", cfg.MetricName("x/y/followers.csv"))
}

func TestValueKind(t *testing.T) {
	cfg, err := NewConfig("", "", "", "", "notes*, remark")
	require.NoError(t, err)

	assert.True(t, cfg.NumericSeries("x/y/followers.csv"))
	assert.False(t, cfg.NumericSeries("x/y/errors.csv"), "the errors log is always string-valued")
	assert.False(t, cfg.NumericSeries("x/y/notes.csv"))
	assert.False(t, cfg.NumericSeries("x/y/notes-extra.csv"))
	assert.False(t, cfg.NumericSeries("x/y/remark.csv"))
	assert.True(t, cfg.NumericSeries("x/y/remarkable.csv"))
}

func TestValueKindCustomErrorsFile(t *testing.T) {
	cfg, err := NewConfig("", "", "failures.csv", "", "")
	require.NoError(t, err)
	assert.False(t, cfg.NumericSeries("x/failures.csv"))
	assert.True(t, cfg.NumericSeries("x/errors.csv"), "only the configured name is reserved")
}

func TestDefaultsApply(t *testing.T) {
	defaults, err := ParseDefaults(strings.NewReader(
		"[store]\ndata-dir=/srv/metrics\nerrors-file=failures.csv\n"))
	require.NoError(t, err)

	dataDir := ""
	require.True(t, defaults.Apply(&dataDir, StoreDataDir))
	assert.Equal(t, "/srv/metrics", dataDir)

	// A flag that was given wins over the ini default
	dataDir = "/explicit"
	require.False(t, defaults.Apply(&dataDir, StoreDataDir))
	assert.Equal(t, "/explicit", dataDir)

	// Absent keys leave the value alone
	extension := ""
	require.False(t, defaults.Apply(&extension, StoreExtension))
	assert.Equal(t, "", extension)
}
