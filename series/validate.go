package series

import (
	"encoding/csv"
	"io"
	"time"
)

// ValidateSeries streams CSV rows from input and calls emit once per row with the 1-based row
// number and either the decoded record or that row's error.  A defective row never aborts the
// stream; the ordering check resumes from the last good record.  The returned error is reserved
// for reader-level failures.

func ValidateSeries(input io.Reader, numeric bool, emit func(row int, r Record, err error)) error {
	rdr := csv.NewReader(input)
	// Arity is checked by DecodeRecord, uneven rows must reach it.
	rdr.FieldsPerRecord = -1
	prev := minInstant.Add(-time.Second)
	row := 0
	for {
		fields, err := rdr.Read()
		if err == io.EOF {
			return nil
		}
		row++
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				emit(row, Record{}, &MalformedError{err.Error()})
				continue
			}
			return err
		}
		r, err := DecodeRecord(fields, numeric)
		if err != nil {
			emit(row, Record{}, err)
			continue
		}
		if !r.When.After(prev) {
			emit(row, r, &OrderingError{Prev: prev, This: r.When})
			continue
		}
		prev = r.When
		emit(row, r, nil)
	}
}
