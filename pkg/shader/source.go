package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
)

// Source is the text of one shader stage.
type Source struct {
	Path  string
	Stage Stage
	Text  string
}

// ReadSource reads the whole file at path. Files with a .wgsl extension are
// translated to GLSL 3.30 for the requested stage.
func ReadSource(path string, stage Stage) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, &ReadError{Path: path, Err: err}
	}
	src := Source{Path: path, Stage: stage, Text: string(data)}
	if !IsWGSL(path) {
		return src, nil
	}
	text, err := TranslateWGSL(src.Text, stage)
	if err != nil {
		return Source{}, &TranslateError{Path: path, Stage: stage, Err: err}
	}
	src.Text = text
	return src, nil
}

func IsWGSL(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wgsl")
}

// TranslateWGSL compiles WGSL text to GLSL using the first entry point of the
// given stage.
func TranslateWGSL(text string, stage Stage) (string, error) {
	ast, err := naga.Parse(text)
	if err != nil {
		return "", err
	}
	module, err := naga.LowerWithSource(ast, text)
	if err != nil {
		return "", err
	}

	want := ir.StageVertex
	if stage == StageFragment {
		want = ir.StageFragment
	}
	entry := ""
	for _, ep := range module.EntryPoints {
		if ep.Stage == want {
			entry = ep.Name
			break
		}
	}
	if entry == "" {
		return "", fmt.Errorf("no %s entry point", stage)
	}

	opts := glsl.DefaultOptions()
	opts.LangVersion = glsl.Version330
	opts.EntryPoint = entry
	code, _, err := glsl.Compile(module, opts)
	if err != nil {
		return "", err
	}
	return code, nil
}
