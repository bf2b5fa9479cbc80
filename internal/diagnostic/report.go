package diagnostic

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Report is the machine-readable form of a build's diagnostics.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Failed      bool         `json:"failed"`
}

// Report builds the report for the recorded diagnostics.
func (d *Diagnostics) Report() Report {
	all := d.All()
	if all == nil {
		all = []Diagnostic{}
	}

	return Report{
		Diagnostics: all,
		Failed:      d.HasErrors(),
	}
}

// WriteJSON writes the report as indented JSON.
func (d *Diagnostics) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(d.Report()); err != nil {
		return fmt.Errorf("encoding diagnostics: %w", err)
	}

	return nil
}

// WriteText writes one line per diagnostic.
func (d *Diagnostics) WriteText(w io.Writer) error {
	for _, diag := range d.All() {
		if _, err := fmt.Fprintln(w, diag.String()); err != nil {
			return fmt.Errorf("writing diagnostics: %w", err)
		}
	}

	return nil
}
