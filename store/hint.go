package store

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ProfileHint looks for the account's profile descriptor next to the series file and returns the
// value of its first `url:` line.  This is a deliberately minimal one-key scanner, not a config
// format; the descriptor is written by hand and anything but the url line is ignored.

func ProfileHint(seriesFile, profileFile string) (string, bool) {
	input, err := os.Open(filepath.Join(filepath.Dir(seriesFile), profileFile))
	if err != nil {
		return "", false
	}
	defer input.Close()
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, found := strings.CutPrefix(line, "url:"); found {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}
