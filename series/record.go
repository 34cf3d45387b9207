// A series file is two-column CSV: an integer epoch-seconds timestamp and a value.  Whether the
// value is an integer or a verbatim string is a property of the file, not of the row; the caller
// passes that in as `numeric`.

package series

import (
	"fmt"
	"strconv"
	"time"
)

type Record struct {
	When time.Time // always UTC, second granularity
	Num  int64     // the value when the series is numeric
	Text string    // the value otherwise
}

// The timestamp must decode to a sane calendar datetime.  Anything proleptic or absurdly far out
// is treated as a corrupt field, not a real observation.
var (
	minInstant = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxInstant = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// MalformedError means a row's fields are structurally or semantically invalid: wrong arity, a
// non-integer or out-of-range timestamp, or an invalid value for the series type.

type MalformedError struct {
	What string
}

func (e *MalformedError) Error() string {
	return "malformed record: " + e.What
}

// OrderingError means a row decoded fine but its timestamp is not strictly greater than its
// predecessor's.

type OrderingError struct {
	Prev time.Time
	This time.Time
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf(
		"timestamp not increasing: %d then %d", e.Prev.Unix(), e.This.Unix())
}

// DecodeRecord parses one raw CSV row.  Pure transform, no I/O.

func DecodeRecord(fields []string, numeric bool) (Record, error) {
	var r Record
	if len(fields) != 2 {
		return r, &MalformedError{fmt.Sprintf("expected 2 fields, got %d", len(fields))}
	}
	epoch, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return r, &MalformedError{"bad timestamp " + fields[0]}
	}
	when := time.Unix(epoch, 0).UTC()
	if when.Before(minInstant) || when.After(maxInstant) {
		return r, &MalformedError{"timestamp out of range " + fields[0]}
	}
	r.When = when
	if numeric {
		r.Num, err = strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return r, &MalformedError{"bad value " + fields[1]}
		}
	} else {
		if fields[1] == "" {
			return r, &MalformedError{"empty value"}
		}
		r.Text = fields[1]
	}
	return r, nil
}

// EncodeRecord is the inverse of DecodeRecord: DecodeRecord(EncodeRecord(r, n), n) == r for every
// valid r.  The timestamp is always canonical base-10 epoch seconds.

func EncodeRecord(r Record, numeric bool) []string {
	value := r.Text
	if numeric {
		value = strconv.FormatInt(r.Num, 10)
	}
	return []string{strconv.FormatInt(r.When.Unix(), 10), value}
}
