package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// tableWriter is a tabwriter that remembers the first write error.
type tableWriter struct {
	tw  *tabwriter.Writer
	err error
}

func (t *tableWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.tw, format, args...)
}

// render writes v to w in the named format. The table format is produced
// by table.
func render(w io.Writer, format string, v any, table func(*tableWriter)) error {
	switch format {
	case "table", "":
		tw := &tableWriter{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
		table(tw)
		if tw.err != nil {
			return tw.err
		}
		return tw.tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (table, json, yaml)", format)
	}
}
