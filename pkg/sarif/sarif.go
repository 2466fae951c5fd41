// Package sarif renders match sets as SARIF 2.1.0 logs.
package sarif

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/praetorian-inc/minigrep/pkg/config"
	"github.com/praetorian-inc/minigrep/pkg/types"
)

// SARIF 2.1.0 constants
const (
	SchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	Version   = "2.1.0"
	ToolName  = "minigrep"
)

// ToolVersion is reported in the driver block. The CLI overrides it with
// its build version.
var ToolVersion = "0.1.0"

// Report is the top-level SARIF report structure
type Report struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single invocation of the tool
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

// Tool describes the analysis tool
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver contains tool metadata
type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Rules   []Rule `json:"rules,omitempty"`
}

// Rule describes one matching mode
type Rule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ShortDescription ShortDescription `json:"shortDescription"`
}

// ShortDescription contains rule description text
type ShortDescription struct {
	Text string `json:"text"`
}

// Result represents a single match
type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

// Message contains the result message
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation specifies file location
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation identifies the file
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region specifies the line/column range and the byte range
type Region struct {
	StartLine   int      `json:"startLine"`
	StartColumn int      `json:"startColumn"`
	EndLine     int      `json:"endLine"`
	EndColumn   int      `json:"endColumn"`
	ByteOffset  int      `json:"byteOffset"`
	ByteLength  int      `json:"byteLength"`
	Snippet     *Snippet `json:"snippet,omitempty"`
}

// Snippet contains the matched text
type Snippet struct {
	Text string `json:"text"`
}

// NewReport creates a new SARIF report with initialized structure
func NewReport() *Report {
	return &Report{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    ToolName,
						Version: ToolVersion,
						Rules:   []Rule{},
					},
				},
				Results: []Result{},
			},
		},
	}
}

// RuleID names the rule for a set of matching options, e.g.
// "minigrep.match" or "minigrep.match.iw".
func RuleID(opts *config.Options) string {
	if flags := opts.String(); flags != "" {
		return "minigrep.match." + flags
	}
	return "minigrep.match"
}

func ruleFor(opts *config.Options) Rule {
	name := "Literal match"
	if opts.Has(config.FlagExactMatch) {
		name = "Whole-word match"
	}
	desc := "Occurrence of the query"
	if opts.Has(config.FlagIgnoreCase) {
		name += ", ignoring case"
		desc += " ignoring letter case"
	}
	return Rule{
		ID:               RuleID(opts),
		Name:             name,
		ShortDescription: ShortDescription{Text: desc},
	}
}

// AddRule registers the rule for opts once.
func (r *Report) AddRule(opts *config.Options) string {
	rule := ruleFor(opts)
	driver := &r.Runs[0].Tool.Driver
	for _, existing := range driver.Rules {
		if existing.ID == rule.ID {
			return rule.ID
		}
	}
	driver.Rules = append(driver.Rules, rule)
	return rule.ID
}

// AddResult adds one match found in filePath under ruleID.
func (r *Report) AddResult(match *types.Match, query, ruleID, filePath string) {
	offset := match.Location.Offset
	region := Region{
		StartLine:   match.Location.Source.Start.Line,
		StartColumn: match.Location.Source.Start.Column,
		EndLine:     match.Location.Source.End.Line,
		EndColumn:   match.Location.Source.End.Column,
		ByteOffset:  offset.Start,
		ByteLength:  offset.Len(),
	}

	if len(match.Snippet.Matching) > 0 {
		region.Snippet = &Snippet{
			Text: string(match.Snippet.Matching),
		}
	}

	result := Result{
		RuleID: ruleID,
		Level:  "note",
		Message: Message{
			Text: fmt.Sprintf("match for query %q", query),
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI: formatFileURI(filePath),
					},
					Region: region,
				},
			},
		},
	}

	r.Runs[0].Results = append(r.Runs[0].Results, result)
}

// AddMatchSet adds the rule for opts and one result per match in set.
func (r *Report) AddMatchSet(set *types.MatchSet, opts *config.Options, filePath string) {
	ruleID := r.AddRule(opts)
	if set == nil {
		return
	}
	for i := range set.Matches {
		r.AddResult(&set.Matches[i], set.Query, ruleID, filePath)
	}
}

// ToJSON serializes the report to JSON bytes
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// formatFileURI converts a file path to SARIF URI format
// Absolute paths get file:// prefix, relative paths stay as-is
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
