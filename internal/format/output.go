package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownFormat is returned by Write for unsupported format names.
var ErrUnknownFormat = errors.New("unknown format")

// Texter is implemented by payloads that have a plain-text rendering.
type Texter interface {
	WriteText(w io.Writer) error
}

// Names lists the supported formats.
func Names() []string { return []string{"json", "edn", "text"} }

// Write writes v in the requested format.
//
// Supported formats:
// - json (default)
// - edn
// - text (only for values implementing Texter)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	case "text":
		t, ok := v.(Texter)
		if !ok {
			return fmt.Errorf("%w: text is not available for %T", ErrUnknownFormat, v)
		}
		return t.WriteText(w)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteJSON writes v as a single JSON document followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
