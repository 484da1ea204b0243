package plan

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// ExportVersion is the version of the descriptor document written by ExportJSON.
const ExportVersion = "1"

// exportDocument is the root of the descriptor JSON document.
type exportDocument struct {
	Version string  `json:"version"`
	Records []*Plan `json:"records"`
}

// ExportJSON writes the method descriptors of plans as an indented JSON
// document. Plans with equal inputs export to equal bytes.
func ExportJSON(plans ...*Plan) ([]byte, error) {
	doc := exportDocument{
		Version: ExportVersion,
		Records: make([]*Plan, 0, len(plans)),
	}

	for _, p := range plans {
		if p != nil {
			doc.Records = append(doc.Records, p)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptors: %w", err)
	}

	return append(data, '\n'), nil
}

// FormatReport formats plans as human-readable text, one line per method.
func FormatReport(plans ...*Plan) string {
	var sb strings.Builder

	for _, p := range plans {
		if p == nil {
			continue
		}

		fmt.Fprintf(&sb, "=== %s (%d methods) ===\n", p.RecordName, len(p.Methods))

		for _, m := range p.Methods {
			fmt.Fprintf(&sb, "  %-4s %-8s %s.%s -> %s (%s) [%s, %s]\n",
				m.Kind, m.Visibility, p.RecordName, m.Field, m.Name, m.GoName, m.Category, m.Body)
		}

		for _, group := range [][]string{diagLines(p, true), diagLines(p, false)} {
			for _, line := range group {
				sb.WriteString("  ! " + line + "\n")
			}
		}
	}

	return sb.String()
}

func diagLines(p *Plan, warnings bool) []string {
	src := p.Diagnostics.Infos
	if warnings {
		src = p.Diagnostics.Warnings
	}

	lines := make([]string, 0, len(src))
	for _, d := range src {
		lines = append(lines, d.String())
	}

	return lines
}
