package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/praetorian-inc/minigrep/pkg/config"
	"github.com/praetorian-inc/minigrep/pkg/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func search(t *testing.T, name, content, query string, opts *config.Options) *Result {
	t.Helper()
	set, err := matcher.FindMatches([]byte(content), query, opts)
	require.NoError(t, err)
	return &Result{Name: name, Options: opts, Content: []byte(content), Matches: set}
}

func render(t *testing.T, res *Result, format Format, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, format, opts...).Render(res))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestParseColorMode(t *testing.T) {
	for _, s := range []string{"auto", "always", "never"} {
		got, err := ParseColorMode(s)
		require.NoError(t, err)
		assert.Equal(t, ColorMode(s), got)
	}

	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestColorMode_Enabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorAlways.Enabled(&buf))
	assert.False(t, ColorNever.Enabled(&buf))
	assert.False(t, ColorAuto.Enabled(&buf), "buffers are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorAuto.Enabled(&buf))
	assert.True(t, ColorAlways.Enabled(&buf))
}

func TestHighlight_Plain(t *testing.T) {
	res := search(t, "poem.txt", "This is test data.\n", "is", nil)
	assert.Equal(t, "This is test data.\n", render(t, res, FormatHighlight))
}

func TestHighlight_Colored(t *testing.T) {
	res := search(t, "poem.txt", "This is test data.\n", "is", nil)
	out := render(t, res, FormatHighlight, WithColor(true))

	assert.Contains(t, out, "Th\x1b[1;32mis")
	assert.Contains(t, out, " \x1b[1;32mis")
	assert.Contains(t, out, " test data.\n")
}

func TestHighlight_NoMatchesPrintsNothing(t *testing.T) {
	res := search(t, "poem.txt", "This is test data.\n", "Aloy", nil)
	assert.Empty(t, render(t, res, FormatHighlight, WithColor(true)))
}

func TestHighlight_UsesMatchedSpan(t *testing.T) {
	// the matched text is wider in bytes than the query
	res := search(t, "f", "xäbc y\n", "ÄBC", &config.Options{IgnoreCase: true})
	out := render(t, res, FormatHighlight, WithColor(true))
	assert.Contains(t, out, "\x1b[1;32mäbc")
	assert.Contains(t, out, " y\n")
}

func TestLines(t *testing.T) {
	res := search(t, "poem.txt", "first\nThis is test data.\nlast\n", "is", nil)
	want := "poem.txt:2:3: This is test data.\n" +
		"                ^^ ^^\n"
	assert.Equal(t, want, render(t, res, FormatLines))
}

func TestLines_Context(t *testing.T) {
	res := search(t, "poem.txt", "first\nThis is test data.\nlast\n", "test", nil)
	want := "poem.txt-1- first\n" +
		"poem.txt:2:9: This is test data.\n" +
		"                      ^^^^\n" +
		"poem.txt-3- last\n"
	assert.Equal(t, want, render(t, res, FormatLines, WithContextLines(1)))
}

func TestLines_GroupSeparator(t *testing.T) {
	res := search(t, "f", "x\n1\n2\n3\n4\nx\n", "x", nil)
	want := "f:1:1: x\n" +
		"       ^\n" +
		"f-2- 1\n" +
		"--\n" +
		"f-5- 4\n" +
		"f:6:1: x\n" +
		"       ^\n"
	assert.Equal(t, want, render(t, res, FormatLines, WithContextLines(1)))
}

func TestLines_AdjacentContextMerges(t *testing.T) {
	res := search(t, "f", "x\n1\nx\n", "x", nil)
	want := "f:1:1: x\n" +
		"       ^\n" +
		"f-2- 1\n" +
		"f:3:1: x\n" +
		"       ^\n"
	assert.Equal(t, want, render(t, res, FormatLines, WithContextLines(1)))
}

func TestLines_TabsAndWideRunes(t *testing.T) {
	res := search(t, "t", "\tis\n", "is", nil)
	assert.Equal(t, "t:1:2:     is\n           ^^\n", render(t, res, FormatLines))

	res = search(t, "w", "日本 is\n", "is", nil)
	assert.Equal(t, "w:1:8: 日本 is\n            ^^\n", render(t, res, FormatLines))
}

func TestLines_TabWidth(t *testing.T) {
	res := search(t, "t", "\tis\n", "is", nil)
	assert.Equal(t, "t:1:2:         is\n               ^^\n", render(t, res, FormatLines, WithTabWidth(8)))

	// non-positive widths keep the default
	assert.Equal(t, "t:1:2:     is\n           ^^\n", render(t, res, FormatLines, WithTabWidth(0)))
}

func TestLines_Colored(t *testing.T) {
	res := search(t, "poem.txt", "This is test data.\n", "test", nil)
	out := render(t, res, FormatLines, WithColor(true))

	assert.Contains(t, out, "\x1b[1;32mtest")
	assert.NotContains(t, out, "^")
}

func TestLines_NoMatches(t *testing.T) {
	res := search(t, "poem.txt", "This is test data.\n", "Aloy", nil)
	assert.Empty(t, render(t, res, FormatLines, WithContextLines(2)))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "2\n", render(t, search(t, "f", "This is test data.\n", "is", nil), FormatCount))
	assert.Equal(t, "0\n", render(t, search(t, "f", "This is test data.\n", "Aloy", nil), FormatCount))
}

func TestJSON(t *testing.T) {
	res := search(t, "poem.txt", "This is test data.\n", "is", &config.Options{ExactMatch: true})
	out := render(t, res, FormatJSON)

	var got struct {
		Query   string         `json:"query"`
		Source  string         `json:"source"`
		Options config.Options `json:"options"`
		Matches []struct {
			Offset int    `json:"offset"`
			End    int    `json:"end"`
			Line   int    `json:"line"`
			Column int    `json:"column"`
			Text   string `json:"text"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "is", got.Query)
	assert.Equal(t, "poem.txt", got.Source)
	assert.True(t, got.Options.ExactMatch)
	assert.False(t, got.Options.IgnoreCase)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, 5, got.Matches[0].Offset)
	assert.Equal(t, 7, got.Matches[0].End)
	assert.Equal(t, 1, got.Matches[0].Line)
	assert.Equal(t, 6, got.Matches[0].Column)
	assert.Equal(t, "is", got.Matches[0].Text)
}

func TestJSON_NoMatchesIsEmptyArray(t *testing.T) {
	out := render(t, search(t, "poem.txt", "This is test data.\n", "Aloy", nil), FormatJSON)
	assert.Contains(t, out, `"matches": []`)
	assert.Contains(t, out, `"ignore_case": false`)
}

func TestSARIF(t *testing.T) {
	out := render(t, search(t, "poem.txt", "This is test data.\n", "TEST", &config.Options{IgnoreCase: true}), FormatSARIF)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "2.1.0", parsed["version"])
	assert.Contains(t, out, `"ruleId": "minigrep.match.i"`)
	assert.Contains(t, out, `"byteOffset": 8`)
	assert.Contains(t, out, `"uri": "poem.txt"`)
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, Format("xml")).Render(search(t, "f", "x", "x", nil))
	assert.Error(t, err)
}
