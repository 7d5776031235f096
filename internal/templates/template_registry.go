package templates

import (
	"fmt"
	"sort"
	"strings"
)

// Template names known to the registry
const (
	WrapperTemplateName   = "wrapper"
	DirectiveTemplateName = "directive"
	BannerTemplateName    = "banner"
	IncludeTemplateName   = "include"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerWrapperTemplates()
	registry.registerFileTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// Override replaces a registered template. Only known names can be replaced.
func (tr *TemplateRegistry) Override(name, template string) error {
	if _, exists := tr.templates[name]; !exists {
		return fmt.Errorf("unknown template %q (known: %s)", name, strings.Join(tr.Names(), ", "))
	}
	tr.templates[name] = template
	return nil
}

// Names returns the registered template names in sorted order
func (tr *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// registerWrapperTemplates registers the per-entry templates
func (tr *TemplateRegistry) registerWrapperTemplates() {
	// Flat C function forwarding to the interface accessor, followed by a blank line
	tr.templates[WrapperTemplateName] = `SB_API {{.ReturnType}} S_CALLTYPE {{.ExportedName}}({{.TypedArgs}}) {
	return {{.Accessor}}()->{{.RealName}}({{.ForwardingArgs}}){{.Conversion}};
}

`

	tr.templates[DirectiveTemplateName] = `{{.}}
`
}

// registerFileTemplates registers the whole-file templates
func (tr *TemplateRegistry) registerFileTemplates() {
	tr.templates[BannerTemplateName] = `{{.}}

`

	tr.templates[IncludeTemplateName] = `#include "{{.}}"
`
}
