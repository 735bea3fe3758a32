package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/statsdump/pkg/statsdump"
)

// writeRecord renders rec as text, json or yaml
func writeRecord(w io.Writer, rec *statsdump.Record, format string) error {
	switch format {
	case "text":
		return rec.WriteText(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// newDecoder builds a decoder from config, letting an explicit --strict win
func newDecoder(flags *pflag.FlagSet, e *env) *statsdump.Decoder {
	strict := e.cfg.Decoder.Strict
	if flags.Changed("strict") {
		strict, _ = flags.GetBool("strict")
	}
	return statsdump.NewDecoder(statsdump.Options{Strict: strict, Logger: e.logger})
}
