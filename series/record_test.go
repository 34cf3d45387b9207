package series

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestRecordRoundTrip(t *testing.T) {
	r := Record{When: time.Unix(1700000000, 0).UTC(), Num: -42}
	back, err := DecodeRecord(EncodeRecord(r, true), true)
	if err != nil {
		t.Fatal(err)
	}
	if back != r {
		t.Fatalf("Expected %v, got %v", r, back)
	}

	s := Record{When: time.Unix(12345, 0).UTC(), Text: "rate limited"}
	back, err = DecodeRecord(EncodeRecord(s, false), false)
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatalf("Expected %v, got %v", s, back)
	}
}

func TestDecodeRecord(t *testing.T) {
	r, err := DecodeRecord([]string{"100", "5"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if r.When.Unix() != 100 || r.Num != 5 {
		t.Fatalf("Bad decode %v", r)
	}
	if !reflect.DeepEqual(EncodeRecord(r, true), []string{"100", "5"}) {
		t.Fatalf("Bad encode %v", EncodeRecord(r, true))
	}
}

func TestDecodeMalformed(t *testing.T) {
	expectMalformed(t, []string{"100"}, true)               // arity
	expectMalformed(t, []string{"100", "5", "6"}, true)     // arity
	expectMalformed(t, []string{"abc", "5"}, true)          // timestamp not integer
	expectMalformed(t, []string{"999999999999999", "5"}, true) // timestamp out of calendar range
	expectMalformed(t, []string{"100", "x"}, true)          // numeric value not integer
	expectMalformed(t, []string{"100", ""}, false)          // string value empty
}

func expectMalformed(t *testing.T, fields []string, numeric bool) {
	t.Helper()
	_, err := DecodeRecord(fields, numeric)
	var bad *MalformedError
	if !errors.As(err, &bad) {
		t.Fatalf("Expected MalformedError for %v, got %v", fields, err)
	}
}
