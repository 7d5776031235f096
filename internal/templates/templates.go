package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/toyz/flatgen/internal/models"
)

// WrapperTemplateData is the data rendered by the wrapper template
type WrapperTemplateData struct {
	ReturnType     string
	ExportedName   string
	TypedArgs      string
	Accessor       string
	RealName       string
	ForwardingArgs string
	Conversion     string
}

// NewWrapperTemplateData converts a method record into template data
func NewWrapperTemplateData(method *models.MethodRecord) WrapperTemplateData {
	return WrapperTemplateData{
		ReturnType:     method.ReturnType,
		ExportedName:   method.ExportedName,
		TypedArgs:      method.TypedArgs,
		Accessor:       method.Accessor,
		RealName:       method.RealName,
		ForwardingArgs: method.ForwardingArgs,
		Conversion:     method.ReturnConversion,
	}
}

// Renderer executes registry templates, parsing each one at most once
type Renderer struct {
	registry *TemplateRegistry
	parsed   map[string]*template.Template
}

// NewRenderer creates a renderer over registry, or over the default
// registry when registry is nil
func NewRenderer(registry *TemplateRegistry) *Renderer {
	if registry == nil {
		registry = NewTemplateRegistry()
	}
	return &Renderer{
		registry: registry,
		parsed:   make(map[string]*template.Template),
	}
}

// RenderWrapper renders the flat function for method
func (r *Renderer) RenderWrapper(method *models.MethodRecord) (string, error) {
	return r.execute(WrapperTemplateName, NewWrapperTemplateData(method))
}

// RenderDirective renders a preprocessor directive on its own line
func (r *Renderer) RenderDirective(directive string) (string, error) {
	return r.execute(DirectiveTemplateName, strings.TrimSpace(directive))
}

// RenderBanner renders the generated-file banner and the blank line after it
func (r *Renderer) RenderBanner(banner string) (string, error) {
	return r.execute(BannerTemplateName, banner)
}

// RenderInclude renders one include line of the unity file
func (r *Renderer) RenderInclude(fileName string) (string, error) {
	return r.execute(IncludeTemplateName, fileName)
}

func (r *Renderer) execute(name string, data interface{}) (string, error) {
	tmpl, ok := r.parsed[name]
	if !ok {
		templateStr, exists := r.registry.Get(name)
		if !exists {
			return "", fmt.Errorf("template %s is not registered", name)
		}

		var err error
		tmpl, err = template.New(name).Option("missingkey=error").Parse(templateStr)
		if err != nil {
			return "", fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.parsed[name] = tmpl
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
