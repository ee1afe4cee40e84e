package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects how results are written.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unrecognized output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates an output format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (valid: text, json, yaml)", ErrUnknownFormat, name)
	}
}

// Write renders results to w.
//
// text writes one "call -> value" line per result with values in JSON
// notation; json writes one JSON object per line; yaml writes a single
// YAML sequence.
func Write(w io.Writer, results []Result, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encode %s: %w", r.Call, err)
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		return enc.Close()
	case FormatText:
		for _, r := range results {
			if err := writeText(w, r); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, r Result) error {
	var err error
	switch {
	case r.Error != "":
		_, err = fmt.Fprintf(w, "%s -> error: %s\n", r.Call, r.Error)
	case r.Self:
		_, err = fmt.Fprintf(w, "%s -> self\n", r.Call)
	default:
		var data []byte
		data, err = json.Marshal(r.Value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", r.Call, err)
		}
		_, err = fmt.Fprintf(w, "%s -> %s\n", r.Call, data)
	}
	return err
}
