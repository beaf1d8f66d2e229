package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// jsonEscape escapes a string for embedding inside a quoted JSON value.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
	// jsString renders s as a quoted literal valid in both JSON and JavaScript.
	"jsString": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return `""`
		}
		return string(b)
	},
}

// unexpandedTokenPattern detects template directives left in rendered output.
// JavaScript template literals such as ${name} are legitimate and not matched.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{-?\s*\.?[A-Za-z_][A-Za-z0-9_. ]*-?\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with data.
	// Returns ErrMissingTemplateKey if a key is missing and
	// ErrUnexpandedToken if directives remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with missingkey=error.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}
	return result, nil
}
