// Defaults for command line options can be kept in an ini file, by default ~/.metrack.  Every key
// has a corresponding flag; the flag wins when both are present.

package common

import (
	"errors"
	"io"
	"os"
	"path"

	ini "github.com/lars-t-hansen/ini"
)

// MT: Constant after initialization
var (
	p                 = ini.NewParser()
	storeSection      = p.AddSection("store")
	StoreDataDir      = storeSection.AddString("data-dir")
	StoreExtension    = storeSection.AddString("extension")
	StoreErrorsFile   = storeSection.AddString("errors-file")
	StoreProfileFile  = storeSection.AddString("profile-file")
	StoreStringSeries = storeSection.AddString("string-series")
)

type Defaults struct {
	store *ini.Store
}

// ReadDefaults loads the defaults file.  An empty filename means the standard location; a missing
// file at the standard location is not an error, but a missing file named explicitly is.

func ReadDefaults(filename string) (*Defaults, error) {
	explicit := filename != ""
	if !explicit {
		home := os.Getenv("HOME")
		if home == "" {
			return &Defaults{}, nil
		}
		filename = path.Join(path.Clean(home), ".metrack")
	}
	input, err := os.Open(filename)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Defaults{}, nil
		}
		return nil, err
	}
	defer input.Close()
	store, err := p.Parse(input)
	if err != nil {
		return nil, err
	}
	return &Defaults{store: store}, nil
}

func ParseDefaults(input io.Reader) (*Defaults, error) {
	store, err := p.Parse(input)
	if err != nil {
		return nil, err
	}
	return &Defaults{store: store}, nil
}

// Apply sets *sp from the field's value if *sp is empty and the field is present, and returns true
// if it did so.

func (d *Defaults) Apply(sp *string, f *ini.Field) bool {
	if *sp != "" || d.store == nil || !f.Present(d.store) {
		return false
	}
	*sp = os.ExpandEnv(f.StringVal(d.store))
	return true
}
