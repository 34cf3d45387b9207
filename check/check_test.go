package check

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"metrack/common"
)

func TestCheckFile(t *testing.T) {
	cfg, err := common.NewConfig("", "", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(t.TempDir(), "followers.csv")
	if err := os.WriteFile(fn, []byte("100,1\n100,2\nabc,3\n200,4\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	defects, err := checkFile(&out, cfg, fn)
	if err != nil {
		t.Fatal(err)
	}
	if defects != 2 {
		t.Fatalf("Expected 2 defects, got %d", defects)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 report lines, got %v", lines)
	}
	if !strings.HasPrefix(lines[0], fn+":2:") || !strings.HasPrefix(lines[1], fn+":3:") {
		t.Fatalf("Reports must carry file and row, got %v", lines)
	}
}

func TestCheckCleanFile(t *testing.T) {
	cfg, err := common.NewConfig("", "", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(t.TempDir(), "followers.csv")
	if err := os.WriteFile(fn, []byte("100,1\n200,2\n300,3\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	defects, err := checkFile(&out, cfg, fn)
	if err != nil {
		t.Fatal(err)
	}
	if defects != 0 || out.Len() != 0 {
		t.Fatalf("Expected clean report, got %d defects, %q", defects, out.String())
	}
}
