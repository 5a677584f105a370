package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkeleton(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.go")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const skeleton = `package worlds

// AppWorld drives the browser for the acceptance suite.
//worldgen:world
type AppWorld struct{}
`

func TestGenerate_PrintsToWriter(t *testing.T) {
	path := writeSkeleton(t, skeleton)

	var buf bytes.Buffer
	require.NoError(t, RunGenerate(&buf, []string{path}, false))

	out := buf.String()
	assert.Contains(t, out, "// Code generated by worldgen. DO NOT EDIT.")
	assert.Contains(t, out, "package worlds")
	assert.Contains(t, out, "// AppWorld drives the browser for the acceptance suite.")
	assert.Contains(t, out, "type AppWorld struct {")
	assert.Contains(t, out, "func NewAppWorld(ctx context.Context) (*AppWorld, error) {")

	// the skeleton file is untouched without -w
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, skeleton, string(content))
}

func TestGenerate_WriteRewritesInPlace(t *testing.T) {
	path := writeSkeleton(t, skeleton)

	var buf bytes.Buffer
	require.NoError(t, RunGenerate(&buf, []string{path}, true))

	assert.Contains(t, buf.String(), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "func NewAppWorld(ctx context.Context) (*AppWorld, error) {")
	assert.NotContains(t, string(content), "//worldgen:world")
}

func TestGenerate_WriteSummaryForMultipleFiles(t *testing.T) {
	first := writeSkeleton(t, skeleton)
	second := writeSkeleton(t, strings.ReplaceAll(skeleton, "AppWorld", "AdminWorld"))

	var buf bytes.Buffer
	require.NoError(t, RunGenerate(&buf, []string{first, second}, true))

	assert.Contains(t, buf.String(), "generated 2 files")
}

func TestGenerate_DirectiveOptionsHonored(t *testing.T) {
	path := writeSkeleton(t, `package worlds

//worldgen:world enable-concurrency-guard=false, driver-library-path=example.com/wd
type AppWorld struct{}
`)

	var buf bytes.Buffer
	require.NoError(t, RunGenerate(&buf, []string{path}, false))

	out := buf.String()
	assert.Contains(t, out, `"example.com/wd"`)
	assert.Contains(t, out, "wd.WebDriver")
	assert.NotContains(t, out, "ConcurrencyGuard")
}

func TestGenerate_UnknownOptionFails(t *testing.T) {
	path := writeSkeleton(t, `package worlds

//worldgen:world frobnicate=yes
type AppWorld struct{}
`)

	var buf bytes.Buffer
	err := RunGenerate(&buf, []string{path}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown option "frobnicate"`)
	assert.Contains(t, err.Error(), path)
}

func TestGenerate_MissingDirectiveFails(t *testing.T) {
	path := writeSkeleton(t, `package worlds

type AppWorld struct{}
`)

	var buf bytes.Buffer
	err := RunGenerate(&buf, []string{path}, false)
	assert.ErrorContains(t, err, "no //worldgen:world directive found")
}

func TestGenerate_StructWithBodyFails(t *testing.T) {
	path := writeSkeleton(t, `package worlds

//worldgen:world
type AppWorld struct {
	URL string
}
`)

	var buf bytes.Buffer
	err := RunGenerate(&buf, []string{path}, false)
	assert.ErrorContains(t, err, "type AppWorld struct{}")
}

func TestGenerate_MissingFileFails(t *testing.T) {
	var buf bytes.Buffer
	err := RunGenerate(&buf, []string{filepath.Join(t.TempDir(), "missing.go")}, false)
	assert.ErrorContains(t, err, "reading")
}
