package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/jsamuelsen11/pixell-roster/internal/domain"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// render writes v as indented JSON or calls text with a tab-aligned writer,
// depending on --output.
func (o *globalOptions) render(w io.Writer, v any, text func(w io.Writer)) error {
	if o.output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

// writeError prints err for a human. Validation failures are listed one
// message per line under their field.
func writeError(w io.Writer, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		_, _ = fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(w, "error: the server rejected the employee")
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		for _, msg := range verr.Fields[f] {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", f, msg)
		}
	}
}
