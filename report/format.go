package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Render encodes s in the given format.
func Render(format Format, s *Summary) ([]byte, error) {
	switch format {
	case FormatText:
		return renderText(s), nil
	case FormatJSON:
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("report: json: %w", err)
		}
		return append(b, '\n'), nil
	case FormatYAML:
		b, err := yaml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("report: yaml: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write renders s to w.
func Write(w io.Writer, format Format, s *Summary) error {
	b, err := Render(format, s)
	if err != nil {
		return err
	}
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}

// WriteFile renders s into path, replacing any existing file.
// Nothing is created when rendering fails.
func WriteFile(path string, format Format, s *Summary) error {
	b, err := Render(format, s)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}

func renderText(s *Summary) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Graph has %s nodes and %s edges\n",
		humanize.Comma(int64(s.Nodes)), humanize.Comma(int64(s.Edges)))
	fmt.Fprintf(&buf, "Average node degree: %.2f\n", s.AverageDegree)
	fmt.Fprintf(&buf, "Connected components: %s (largest %s nodes)\n",
		humanize.Comma(int64(s.Components)), humanize.Comma(int64(s.Largest)))

	fmt.Fprintf(&buf, "\nTop %d entities by closeness centrality:\n", len(s.Closeness))
	for _, r := range s.Closeness {
		fmt.Fprintf(&buf, "%s: %.3f\n", r.ID, r.Score)
	}

	fmt.Fprintf(&buf, "\nDensest subgraph: %s nodes, density = %.3f\n",
		humanize.Comma(int64(s.Densest.Nodes)), s.Densest.Density)
	fmt.Fprintf(&buf, "Top %d nodes in densest subgraph by degree:\n", len(s.Densest.Top))
	for _, m := range s.Densest.Top {
		fmt.Fprintf(&buf, "%s (degree %d)\n", m.ID, m.Degree)
	}

	return buf.Bytes()
}
