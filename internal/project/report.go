package project

import (
	"io"

	json "github.com/goccy/go-json"
)

// WriteJSONReport emits the batch summary as an indented JSON document, for
// machine consumption of batch results.
func WriteJSONReport(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
