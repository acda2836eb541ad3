package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/meetingsummarizer/models"
	"gopkg.in/yaml.v3"
)

// OutputFlags control how records are printed by the one-shot commands.
type OutputFlags struct {
	Format string `help:"The output format." enum:"json,yaml" default:"json"`
	Pretty bool   `help:"Pretty print the JSON output." default:"true" negatable:""`
}

func (o OutputFlags) write(w io.Writer, s models.Summary) error {
	switch o.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		if o.Pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(s)
	}
}
