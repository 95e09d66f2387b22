package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	indent    = "  "
	formatter = "terminal256"
	style     = "monokai"
)

// PrettyJSON returns s indented by two spaces if it is a single JSON value.
// It reports false and returns s unchanged otherwise.
func PrettyJSON(s string) (string, bool) {
	if !json.Valid([]byte(s)) {
		return s, false
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", indent); err != nil {
		return s, false
	}
	return buf.String(), true
}

// Highlight writes JSON source to w with ANSI colours. On failure nothing
// useful can be assumed about w, so callers should fall back to plain output.
func Highlight(w io.Writer, source string) error {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, "json", formatter, style); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
