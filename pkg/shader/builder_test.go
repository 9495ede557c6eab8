package shader_test

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/gldemo/pkg/shader"
	"github.com/kjkrol/gldemo/pkg/shader/shadertest"
)

const passThroughVertex = `#version 330 core
layout(location = 0) in vec3 vertexPosition;
void main() {
	gl_Position = vec4(vertexPosition, 1.0);
}
`

const solidFragment = `#version 330 core
out vec3 color;
void main() {
	color = vec3(1, 0, 0);
}
`

const brokenVertex = `#version 330 core
layout(location = 0) in vec3 vertexPosition;
gl_Position = vec4(vertexPosition 1.0)
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newBuilder(opts shader.Options) (*shader.Builder, *shadertest.Driver, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	driver := shadertest.NewDriver()
	return shader.NewBuilder(driver, logger, opts), driver, &buf
}

func TestBuild_ValidSources(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "main.vs.glsl", passThroughVertex)
	frag := writeFile(t, dir, "main.frag.glsl", solidFragment)

	b, driver, logs := newBuilder(shader.Options{})
	res, err := b.Build(vs, frag)

	require.NoError(t, err)
	assert.True(t, res.Program.Valid())
	assert.True(t, res.Usable())
	assert.Equal(t, shader.StatusClean, res.Status)
	assert.Empty(t, res.Logs())
	assert.True(t, driver.Linked(res.Program))
	assert.NotContains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "Compiling shader : "+vs)
	assert.Contains(t, logs.String(), "Compiling shader : "+frag)
	assert.Contains(t, logs.String(), "Linking program")
}

func TestBuild_ReleasesIntermediateShaders(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "main.vs.glsl", passThroughVertex)
	frag := writeFile(t, dir, "main.frag.glsl", solidFragment)

	b, driver, _ := newBuilder(shader.Options{})
	res, err := b.Build(vs, frag)

	require.NoError(t, err)
	assert.Equal(t, 0, driver.LiveShaders())
	assert.Equal(t, 1, driver.LivePrograms())
	assert.Equal(t, 2, driver.Detached)
	assert.Len(t, driver.DeletedShaders, 2)
	assert.Equal(t, 0, driver.Attached(uint32(res.Program)))
}

func TestBuild_MissingVertexFile(t *testing.T) {
	dir := t.TempDir()
	vs := filepath.Join(dir, "missing.vs.glsl")
	frag := writeFile(t, dir, "main.frag.glsl", solidFragment)

	b, driver, logs := newBuilder(shader.Options{})
	res, err := b.Build(vs, frag)

	require.Error(t, err)
	var readErr *shader.ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, vs, readErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "Unable to open "+vs+".", err.Error())
	assert.False(t, res.Program.Valid())
	assert.Equal(t, 0, driver.Created())
	assert.Contains(t, logs.String(), "Unable to open "+vs)
	assert.Contains(t, logs.String(), "level=ERROR")
}

func TestBuild_VertexSyntaxError(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "broken.vs.glsl", brokenVertex)
	frag := writeFile(t, dir, "main.frag.glsl", solidFragment)

	b, _, logs := newBuilder(shader.Options{})
	res, err := b.Build(vs, frag)

	require.NoError(t, err)
	assert.True(t, res.Program.Valid(), "log-and-continue keeps the handle")
	assert.False(t, res.Usable())
	assert.Equal(t, shader.StatusFailed, res.Status)

	failures := res.Failures()
	require.NotEmpty(t, failures)
	assert.Equal(t, shader.StepCompileVertex, failures[0].Step)
	assert.Equal(t, vs, failures[0].Path)
	assert.NotEmpty(t, failures[0].Log)
	assert.Contains(t, logs.String(), "syntax error")
	assert.Contains(t, logs.String(), "level=ERROR")

	clean, _, _ := newBuilder(shader.Options{})
	ok, err := clean.Build(writeFile(t, dir, "ok.vs.glsl", passThroughVertex), frag)
	require.NoError(t, err)
	assert.NotEqual(t, ok.Status, res.Status)
	assert.Empty(t, ok.Logs())
	assert.NotEmpty(t, res.Logs())
}

func TestBuild_StrictPolicyFailsOnCompileError(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "broken.vs.glsl", brokenVertex)
	frag := writeFile(t, dir, "main.frag.glsl", solidFragment)

	b, driver, _ := newBuilder(shader.Options{Policy: shader.PolicyStrict})
	res, err := b.Build(vs, frag)

	require.Error(t, err)
	var buildErr *shader.BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.NotEmpty(t, buildErr.Failures)
	assert.Contains(t, err.Error(), "compile vertex")
	assert.False(t, res.Program.Valid())
	assert.Equal(t, shader.StatusFailed, res.Status)
	assert.Equal(t, 0, driver.LivePrograms())
	assert.Equal(t, 0, driver.LiveShaders())
}

func TestBuild_MissingFragmentFileFailsLikeVertex(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "main.vs.glsl", passThroughVertex)
	frag := filepath.Join(dir, "missing.frag.glsl")

	b, driver, logs := newBuilder(shader.Options{})
	res, err := b.Build(vs, frag)

	var readErr *shader.ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, frag, readErr.Path)
	assert.False(t, res.Program.Valid())
	assert.Equal(t, 0, driver.Created())
	assert.Contains(t, logs.String(), "Unable to open "+frag)
}

func TestBuild_MissingFragmentFileLegacyFallback(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "main.vs.glsl", passThroughVertex)
	frag := filepath.Join(dir, "missing.frag.glsl")

	b, _, logs := newBuilder(shader.Options{LegacyFragmentFallback: true})
	res, err := b.Build(vs, frag)

	require.NoError(t, err)
	assert.True(t, res.Program.Valid(), "build proceeds with an empty fragment source")
	assert.Equal(t, shader.StatusFailed, res.Status)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "Compiling shader : "+frag)

	var fragment *shader.Diagnostic
	for i := range res.Diagnostics {
		if res.Diagnostics[i].Step == shader.StepCompileFragment {
			fragment = &res.Diagnostics[i]
		}
	}
	require.NotNil(t, fragment)
	assert.False(t, fragment.OK)
}

func TestBuild_LegacyFallbackStillFailsOnUntranslatableFragment(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "main.vs.glsl", passThroughVertex)
	frag := writeFile(t, dir, "main.wgsl", "@fragment fn fs_main( -> {")

	b, driver, logs := newBuilder(shader.Options{LegacyFragmentFallback: true})
	res, err := b.Build(vs, frag)

	var translateErr *shader.TranslateError
	require.ErrorAs(t, err, &translateErr)
	assert.Equal(t, frag, translateErr.Path)
	assert.Equal(t, shader.StageFragment, translateErr.Stage)
	assert.False(t, res.Program.Valid())
	assert.Zero(t, driver.Created(), "nothing is created on the driver")
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.NotContains(t, logs.String(), "fallback")
}

func TestBuild_WarningsAreSurfacedOnSuccess(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "main.vs.glsl", passThroughVertex)
	frag := writeFile(t, dir, "main.frag.glsl", solidFragment)

	b, driver, logs := newBuilder(shader.Options{Policy: shader.PolicyStrict})
	driver.Compile = func(stage shader.Stage, source string) (bool, string) {
		if stage == shader.StageFragment {
			return true, "0:3(7): warning: `color' redeclared\x00"
		}
		return true, ""
	}
	res, err := b.Build(vs, frag)

	require.NoError(t, err)
	assert.True(t, res.Usable())
	assert.Equal(t, shader.StatusDiagnostic, res.Status)
	require.Len(t, res.Logs(), 1)
	assert.Equal(t, "0:3(7): warning: `color' redeclared", res.Logs()[0].Log)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.NotContains(t, logs.String(), "level=ERROR")
}

func TestBuild_LinkFailure(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "main.vs.glsl", passThroughVertex)
	frag := writeFile(t, dir, "main.frag.glsl", solidFragment)

	b, driver, _ := newBuilder(shader.Options{})
	driver.Link = func([]bool) (bool, string) {
		return false, "error: fragment shader input `uv' not written by vertex shader"
	}
	res, err := b.Build(vs, frag)

	require.NoError(t, err)
	assert.Equal(t, shader.StatusFailed, res.Status)
	failures := res.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, shader.StepLink, failures[0].Step)
	assert.True(t, strings.HasPrefix(failures[0].String(), "link program"))
}

func TestBuild_IsRepeatable(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "main.vs.glsl", passThroughVertex)
	frag := writeFile(t, dir, "main.frag.glsl", solidFragment)

	b, driver, _ := newBuilder(shader.Options{})
	first, err := b.Build(vs, frag)
	require.NoError(t, err)
	second, err := b.Build(vs, frag)
	require.NoError(t, err)

	assert.NotEqual(t, first.Program, second.Program)
	assert.True(t, first.Usable())
	assert.True(t, second.Usable())
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, 2, driver.LivePrograms())

	driver.DeleteProgram(uint32(first.Program))
	assert.True(t, driver.Linked(second.Program))
}

func TestBuildSources_InMemory(t *testing.T) {
	b, _, _ := newBuilder(shader.Options{})
	res, err := b.BuildSources(
		shader.Source{Path: "embedded.vs", Stage: shader.StageVertex, Text: passThroughVertex},
		shader.Source{Path: "embedded.fs", Stage: shader.StageFragment, Text: solidFragment},
	)
	require.NoError(t, err)
	assert.Equal(t, shader.StatusClean, res.Status)
	require.Len(t, res.Diagnostics, 3)
	assert.Equal(t, shader.StepCompileVertex, res.Diagnostics[0].Step)
	assert.Equal(t, shader.StepCompileFragment, res.Diagnostics[1].Step)
	assert.Equal(t, shader.StepLink, res.Diagnostics[2].Step)
}
