package format

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type cell struct {
	Day     int  `json:"day"`
	InMonth bool `json:"inMonth"`
}

type textPayload struct{}

func (textPayload) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, "Su Mo\n")
	return err
}

func TestWriteEDN(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{
		"data": map[string]any{
			"onScreen": map[string]int{"year": 2024, "month": 2},
			"row":      []cell{{Day: 31, InMonth: false}, {Day: 1, InMonth: true}},
			"picked":   nil,
		},
	}
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatal(err)
	}
	want := `{:data {:on-screen {:month 2 :year 2024} :picked nil :row [{:day 31 :in-month false} {:day 1 :in-month true}]}}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestWriteEDNPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []int{1, 2}, "b": []int{}}, true); err != nil {
		t.Fatal(err)
	}
	want := "{\n  :a [\n    1\n    2\n  ]\n  :b []\n}\n"
	if got := buf.String(); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"day": 1}, "", false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "{\"day\":1}\n"; got != want {
		t.Fatalf("json: got %q, want %q", got, want)
	}

	buf.Reset()
	if err := Write(&buf, textPayload{}, "text", false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "Su Mo\n"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	if err := Write(&buf, map[string]int{}, "text", false); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("text for a plain map: expected ErrUnknownFormat, got %v", err)
	}
	if err := Write(&buf, 1, "yaml", false); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
