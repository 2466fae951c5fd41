package render

import (
	"encoding/json"
	"fmt"

	"github.com/praetorian-inc/minigrep/pkg/config"
	"github.com/praetorian-inc/minigrep/pkg/sarif"
)

type jsonMatch struct {
	Offset int    `json:"offset"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

type jsonReport struct {
	Query   string         `json:"query"`
	Source  string         `json:"source"`
	Options config.Options `json:"options"`
	Matches []jsonMatch    `json:"matches"`
}

func (r *Renderer) writeJSON(res *Result) error {
	report := jsonReport{
		Source:  res.Name,
		Matches: []jsonMatch{},
	}
	if res.Options != nil {
		report.Options = *res.Options
	}
	if res.Matches != nil {
		report.Query = res.Matches.Query
		for _, m := range res.Matches.Matches {
			span := m.Location.Offset
			report.Matches = append(report.Matches, jsonMatch{
				Offset: span.Start,
				End:    span.End,
				Line:   m.Location.Source.Start.Line,
				Column: m.Location.Source.Start.Column,
				Text:   string(res.Content[span.Start:span.End]),
			})
		}
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func (r *Renderer) writeSARIF(res *Result) error {
	report := sarif.NewReport()
	report.AddMatchSet(res.Matches, res.Options, res.Name)

	data, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode SARIF: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}
