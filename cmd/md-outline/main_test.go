package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sriram-PR/md-outline/pkg/outline"
	"github.com/Sriram-PR/md-outline/pkg/utils"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDoSlug(t *testing.T) {
	var stdout bytes.Buffer
	doSlug([]string{"Hello, World!", "123 Start"}, &stdout)

	assert.Equal(t, "hello-world\n_123-start\n", stdout.String())
}

func TestDoOutline_Markdown(t *testing.T) {
	tmpDir := t.TempDir()
	mdPath := writeFile(t, tmpDir, "guide.md", "# Guide\n\n## Install\n\n## Usage\n")

	var stdout, stderr bytes.Buffer
	exitCode := doOutline("", "1,2", false, "", 1, "error", []string{mdPath}, &stdout, &stderr)

	require.Equal(t, 0, exitCode)

	var results []fileOutline
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
	require.Len(t, results, 1)
	require.Len(t, results[0].Headers, 1)
	assert.Equal(t, "Guide", results[0].Headers[0].Title)
	assert.Len(t, results[0].Headers[0].Children, 2)
}

func TestDoOutline_TokensMode(t *testing.T) {
	tokens := `[
		{"type": "heading_open", "tag": "h2", "attrs": [["id", "pinned"]]},
		{"type": "inline", "children": [{"type": "text", "content": "Pinned Section"}]},
		{"type": "heading_close", "tag": "h2"}
	]`
	tmpDir := t.TempDir()
	tokPath := writeFile(t, tmpDir, "page.tokens.json", tokens)

	var stdout, stderr bytes.Buffer
	exitCode := doOutline("", "2", true, "", 1, "error", []string{tokPath}, &stdout, &stderr)

	require.Equal(t, 0, exitCode)

	var results []fileOutline
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
	require.Len(t, results, 1)
	require.Len(t, results[0].Headers, 1)
	assert.Equal(t, "pinned", results[0].Headers[0].Slug)
}

func TestDoOutline_OutputDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	mdPath := writeFile(t, tmpDir, "doc.md", "## Only Section\n")
	outDir := filepath.Join(tmpDir, "outlines")

	var stdout, stderr bytes.Buffer
	exitCode := doOutline("", "2", false, outDir, 2, "error", []string{mdPath}, &stdout, &stderr)

	require.Equal(t, 0, exitCode)

	data, err := os.ReadFile(filepath.Join(outDir, "doc.outline.json"))
	require.NoError(t, err)

	var result fileOutline
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result.Headers, 1)
	assert.Equal(t, "only-section", result.Headers[0].Slug)
}

func TestDoOutline_MissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := doOutline("", "", false, "", 1, "error", []string{"/nonexistent/doc.md"}, &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Failed to process")
}

func TestResolveFile_MissingFileKeepsCause(t *testing.T) {
	_, err := resolveFile("/nonexistent/doc.md", false, outline.Options{Levels: []int{2}})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrFilesystem)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "Filesystem_NotExist", utils.CategorizeError(err))
}

func TestResolveFile_BadTokenJSONKeepsCause(t *testing.T) {
	tmpDir := t.TempDir()
	tokPath := writeFile(t, tmpDir, "broken.json", "{not json")

	_, err := resolveFile(tokPath, true, outline.Options{Levels: []int{2}})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrTokenJSON)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "Content_TokenJSON", utils.CategorizeError(err))
}

func TestDoOutline_BadTokenJSON(t *testing.T) {
	tmpDir := t.TempDir()
	tokPath := writeFile(t, tmpDir, "broken.json", "{not json")

	var stdout, stderr bytes.Buffer
	exitCode := doOutline("", "", true, "", 1, "error", []string{tokPath}, &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
}

func TestDoOutline_InvalidLevelsFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := doOutline("", "2,nope", false, "", 1, "error", []string{"whatever.md"}, &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Invalid -levels")
}

func TestDoGuard_File(t *testing.T) {
	tmpDir := t.TempDir()
	srcPath := writeFile(t, tmpDir, "env.ts", "const url = import.meta.env.BASE_URL\n")

	var stdout, stderr bytes.Buffer
	exitCode := doGuard("", "", srcPath, nil, &stdout, &stderr)

	require.Equal(t, 0, exitCode)
	assert.Equal(t, "const url = i​mport.meta.env.BASE_URL\n", stdout.String())
}

func TestDoGuard_StdinWithDefines(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := writeFile(t, tmpDir, "md-outline.yaml", "defines:\n  __DEV__: true\n")

	stdin := bytes.NewBufferString("if (__DEV__) log()\n")
	var stdout, stderr bytes.Buffer
	exitCode := doGuard(cfgPath, "", "-", stdin, &stdout, &stderr)

	require.Equal(t, 0, exitCode)
	assert.Equal(t, "if (_​_DEV__) log()\n", stdout.String())
}

func TestDoValidate_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := writeFile(t, tmpDir, "md-outline.yaml", "levels: [2, 3]\n")

	var stdout, stderr bytes.Buffer
	exitCode := doValidate(cfgPath, &stdout, &stderr)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "Config OK")
}

func TestDoValidate_WarnsAndDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := writeFile(t, tmpDir, "md-outline.yaml", "allow_html: true\n")

	var stdout, stderr bytes.Buffer
	exitCode := doValidate(cfgPath, &stdout, &stderr)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "WARN: levels not specified")
}

func TestDoValidate_BadLevels(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := writeFile(t, tmpDir, "md-outline.yaml", "levels: [0]\n")

	var stdout, stderr bytes.Buffer
	exitCode := doValidate(cfgPath, &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "heading level 0")
}

func TestParseLevels(t *testing.T) {
	levels, err := parseLevels("2, 3,4")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, levels)

	_, err = parseLevels("7")
	assert.Error(t, err)

	_, err = parseLevels("")
	assert.Error(t, err)
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsageTo(&buf)

	assert.Contains(t, buf.String(), "outline")
	assert.Contains(t, buf.String(), "guard")
}
