package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"metrack/common"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	cfg, err := common.NewConfig(root, "", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	s, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s, root
}

func mustWrite(t *testing.T, root string, relative, content string) string {
	t.Helper()
	fn := filepath.Join(root, relative)
	if err := os.MkdirAll(filepath.Dir(fn), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fn, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestDecompose(t *testing.T) {
	s, root := testStore(t)

	id, err := s.Decompose(filepath.Join(root, "platA/acctB/metricC.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if id != (Identity{Platform: "platA", Account: "acctB", Metric: "metricC"}) {
		t.Fatalf("Bad identity %v", id)
	}

	// Multi-segment accounts keep their internal structure
	id, err = s.Decompose(filepath.Join(root, "reddit/r/somesub/subscribers.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if id != (Identity{Platform: "reddit", Account: "r/somesub", Metric: "subscribers"}) {
		t.Fatalf("Bad identity %v", id)
	}
}

func TestDecomposeErrors(t *testing.T) {
	s, root := testStore(t)

	var bad *DecompositionError
	_, err := s.Decompose(filepath.Join(root, "onlyplatform.csv"))
	if !errors.As(err, &bad) {
		t.Fatalf("Expected DecompositionError, got %v", err)
	}
	_, err = s.Decompose(filepath.Join(root, "platA/metric.csv"))
	if !errors.As(err, &bad) {
		t.Fatalf("Expected DecompositionError, got %v", err)
	}
	_, err = s.Decompose("/somewhere/else/plat/acct/metric.csv")
	if !errors.As(err, &bad) {
		t.Fatalf("Expected DecompositionError, got %v", err)
	}
}

func TestEnumerateSeries(t *testing.T) {
	s, root := testStore(t)
	a := mustWrite(t, root, "twitter/acct/followers.csv", "100,1\n")
	b := mustWrite(t, root, "twitter/acct/errors.csv", "100,oops\n")
	mustWrite(t, root, "twitter/acct/profile.txt", "url: https://example.org/acct\n")
	c := mustWrite(t, root, "reddit/sub/subscribers.csv", "100,2\n")

	files, err := s.EnumerateSeries()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(files, []string{c, b, a}) {
		t.Fatalf("Wrong files %v", files)
	}
}

func TestReadAndRewriteRows(t *testing.T) {
	root := t.TempDir()
	fn := filepath.Join(root, "followers.csv")

	rows, err := ReadRows(fn)
	if err != nil || rows != nil {
		t.Fatalf("Missing file must read as empty, got %v %v", rows, err)
	}

	want := [][]string{{"100", "1"}, {"200", "2"}}
	if err := RewriteRows(fn, want); err != nil {
		t.Fatal(err)
	}
	rows, err = ReadRows(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("Expected %v, got %v", want, rows)
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "100,1\n200,2\n" {
		t.Fatalf("Bad file contents %q", string(data))
	}
}

func TestProfileHint(t *testing.T) {
	root := t.TempDir()
	fn := mustWrite(t, root, "x/acct/followers.csv", "")
	mustWrite(t, root, "x/acct/profile.txt",
		"name: An Account\nurl: https://example.org/acct\nurl: https://example.org/other\n")

	hint, found := ProfileHint(fn, "profile.txt")
	if !found || hint != "https://example.org/acct" {
		t.Fatalf("Bad hint %q %v", hint, found)
	}

	_, found = ProfileHint(filepath.Join(root, "x/nowhere/f.csv"), "profile.txt")
	if found {
		t.Fatal("Expected no hint")
	}
}
