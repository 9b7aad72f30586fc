package output_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/depanalyzer/depanalyzer/internal/output"
	"github.com/depanalyzer/depanalyzer/internal/types"
)

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&output.TextFormatter{}).Format(&buf, types.NewAnalysisResult("/tmp")))

	out := buf.String()
	require.Contains(t, out, "Target: /tmp")
	require.Contains(t, out, "Status: success")
	require.Contains(t, out, "Findings: 0")

	seps := 0
	for line := range strings.SplitSeq(out, "\n") {
		if strings.Trim(line, "=") == "" && line != "" {
			require.Len(t, line, 50)
			seps++
		}
	}
	require.Equal(t, 3, seps)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&output.JSONFormatter{}).Format(&buf, types.NewAnalysisResult("/tmp")))

	require.Equal(t, "{\n  \"status\": \"success\",\n  \"target\": \"/tmp\",\n  \"findings\": []\n}\n", buf.String())
}

func TestJSONFormatterWithFindings(t *testing.T) {
	result := types.NewAnalysisResult("proj")
	result.Findings = append(result.Findings, types.Finding{Check: "c1", Path: "proj/go.mod", Line: 3, Severity: types.SeverityMedium, Message: "m"})

	var buf bytes.Buffer
	require.NoError(t, (&output.JSONFormatter{}).Format(&buf, result))

	var parsed types.AnalysisResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed.Findings, 1)
	require.Equal(t, types.SeverityMedium, parsed.Findings[0].Severity)
	require.Equal(t, 3, parsed.Findings[0].Line)
}

func TestJSONFormatterIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, (&output.JSONFormatter{}).Format(&a, types.NewAnalysisResult("/tmp")))
	require.NoError(t, (&output.JSONFormatter{}).Format(&b, types.NewAnalysisResult("/tmp")))
	require.Equal(t, a.Bytes(), b.Bytes())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&output.YAMLFormatter{}).Format(&buf, types.NewAnalysisResult("/tmp")))

	require.Equal(t, "status: success\ntarget: /tmp\nfindings: []\n", buf.String())

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed))
	require.Equal(t, "/tmp", parsed["target"])
	require.Empty(t, parsed["findings"])
}

func TestYAMLFormatterSeverityByName(t *testing.T) {
	result := types.NewAnalysisResult("proj")
	result.Findings = append(result.Findings, types.Finding{Check: "c1", Path: "a", Severity: types.SeverityCritical})

	var buf bytes.Buffer
	require.NoError(t, (&output.YAMLFormatter{}).Format(&buf, result))
	require.Contains(t, buf.String(), "severity: CRITICAL")
}

// parseMarkdown returns the text of every heading and the number of tables.
func parseMarkdown(t *testing.T, src []byte) (headings []string, tables int) {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			var sb strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					sb.Write(txt.Segment.Value(src))
				}
			}
			headings = append(headings, sb.String())
		case east.KindTable:
			tables++
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return headings, tables
}

func TestMarkdownFormatterNoFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&output.MarkdownFormatter{}).Format(&buf, types.NewAnalysisResult("/tmp")))

	headings, tables := parseMarkdown(t, buf.Bytes())
	require.Equal(t, []string{"Dependency Analysis: success"}, headings)
	require.Equal(t, 1, tables)
	require.Contains(t, buf.String(), "| Target | `/tmp` |")
	require.Contains(t, buf.String(), "No findings.")
}

func TestMarkdownFormatterWithFindings(t *testing.T) {
	result := types.NewAnalysisResult("proj")
	result.Findings = append(result.Findings, types.Finding{
		Check: "c1", Path: "proj/go.mod", Line: 7, Severity: types.SeverityHigh, Message: "a|b",
	})

	var buf bytes.Buffer
	require.NoError(t, (&output.MarkdownFormatter{}).Format(&buf, result))

	headings, tables := parseMarkdown(t, buf.Bytes())
	require.Equal(t, []string{"Dependency Analysis: success", "Findings"}, headings)
	require.Equal(t, 2, tables)
	require.Contains(t, buf.String(), "`proj/go.mod:7`")
	require.Contains(t, buf.String(), `a\|b`)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want output.Formatter
	}{
		{"text", &output.TextFormatter{}},
		{"", &output.TextFormatter{}},
		{"JSON", &output.JSONFormatter{}},
		{"yaml", &output.YAMLFormatter{}},
		{"yml", &output.YAMLFormatter{}},
		{"markdown", &output.MarkdownFormatter{}},
		{"md", &output.MarkdownFormatter{}},
	}
	for _, tt := range tests {
		got, err := output.New(tt.name)
		require.NoError(t, err, tt.name)
		require.IsType(t, tt.want, got, tt.name)
	}

	_, err := output.New("sarif")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown format")
}

func TestIsMachine(t *testing.T) {
	require.False(t, output.IsMachine("text"))
	require.False(t, output.IsMachine(""))
	require.True(t, output.IsMachine("json"))
	require.True(t, output.IsMachine("yaml"))
	require.True(t, output.IsMachine("markdown"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	require.NoError(t, output.WriteFile(path, &output.JSONFormatter{}, types.NewAnalysisResult("/tmp")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed types.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Equal(t, types.StatusSuccess, parsed.Status)
	require.Equal(t, "/tmp", parsed.Target)
	require.Empty(t, parsed.Findings)
}

func TestWriteFileMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "r.json")
	err := output.WriteFile(path, &output.JSONFormatter{}, types.NewAnalysisResult("/tmp"))
	require.Error(t, err)

	var fe *output.FileError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, path, fe.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMachineFormattersRejectInvalidUTF8(t *testing.T) {
	for _, f := range []output.Formatter{&output.JSONFormatter{}, &output.YAMLFormatter{}} {
		var buf bytes.Buffer
		err := f.Format(&buf, types.NewAnalysisResult("dir/a\xffb"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "not valid UTF-8")
		require.Empty(t, buf.String())
	}

	result := types.NewAnalysisResult("ok")
	result.Findings = append(result.Findings, types.Finding{Check: "c1", Path: "bad\xfe"})
	require.Error(t, (&output.JSONFormatter{}).Format(&bytes.Buffer{}, result))
}

func TestWriteFileRenderErrorLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	err := output.WriteFile(path, &output.JSONFormatter{}, types.NewAnalysisResult("a\xffb"))
	require.Error(t, err)
	require.NoFileExists(t, path)
}

// countTableCells returns the number of cells in every table of src.
func countTableCells(t *testing.T, src []byte) int {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))
	cells := 0
	require.NoError(t, ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == east.KindTableCell {
			cells++
		}
		return ast.WalkContinue, nil
	}))
	return cells
}

func TestMarkdownFormatterEscapesTarget(t *testing.T) {
	for _, target := range []string{"a|b", "a`b", "`edge`", "x``y|z"} {
		var buf bytes.Buffer
		require.NoError(t, (&output.MarkdownFormatter{}).Format(&buf, types.NewAnalysisResult(target)))

		// header row plus target, status and findings rows, two cells each
		require.Equal(t, 8, countTableCells(t, buf.Bytes()), "target %q:\n%s", target, buf.String())
	}

	var buf bytes.Buffer
	require.NoError(t, (&output.MarkdownFormatter{}).Format(&buf, types.NewAnalysisResult("a`b")))
	require.Contains(t, buf.String(), "| Target | ``a`b`` |")
}
