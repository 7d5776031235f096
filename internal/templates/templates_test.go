package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/flatgen/internal/models"
)

func TestRenderWrapper(t *testing.T) {
	tests := []struct {
		name     string
		method   models.MethodRecord
		expected string
	}{
		{
			name: "no arguments",
			method: models.MethodRecord{
				Accessor:     "SteamFriends",
				ReturnType:   "const char *",
				RealName:     "GetPersonaName",
				ExportedName: "ISteamFriends_GetPersonaName",
			},
			expected: "SB_API const char * S_CALLTYPE ISteamFriends_GetPersonaName() {\n" +
				"\treturn SteamFriends()->GetPersonaName();\n" +
				"}\n\n",
		},
		{
			name: "forwarded arguments",
			method: models.MethodRecord{
				Accessor:       "SteamFriends",
				ReturnType:     "bool",
				RealName:       "SetPersonaName",
				ExportedName:   "ISteamFriends_SetPersonaName",
				TypedArgs:      "const char *pchPersonaName",
				ForwardingArgs: "pchPersonaName",
			},
			expected: "SB_API bool S_CALLTYPE ISteamFriends_SetPersonaName(const char *pchPersonaName) {\n" +
				"\treturn SteamFriends()->SetPersonaName(pchPersonaName);\n" +
				"}\n\n",
		},
		{
			name: "handle return conversion",
			method: models.MethodRecord{
				Accessor:         "SteamUser",
				ReturnType:       "SteamID_t",
				ReturnConversion: ".ConvertToUint64()",
				RealName:         "GetSteamID",
				ExportedName:     "ISteamUser_GetSteamID",
			},
			expected: "SB_API SteamID_t S_CALLTYPE ISteamUser_GetSteamID() {\n" +
				"\treturn SteamUser()->GetSteamID().ConvertToUint64();\n" +
				"}\n\n",
		},
		{
			name: "html significant characters are not escaped",
			method: models.MethodRecord{
				Accessor:       "SteamHTMLSurface",
				ReturnType:     "void",
				RealName:       "MouseUp",
				ExportedName:   "ISteamHTMLSurface_MouseUp",
				TypedArgs:      "HHTMLBrowser unBrowserHandle, ISteamHTMLSurface::EHTMLMouseButton eMouseButton",
				ForwardingArgs: "unBrowserHandle, eMouseButton",
			},
			expected: "SB_API void S_CALLTYPE ISteamHTMLSurface_MouseUp(HHTMLBrowser unBrowserHandle, ISteamHTMLSurface::EHTMLMouseButton eMouseButton) {\n" +
				"\treturn SteamHTMLSurface()->MouseUp(unBrowserHandle, eMouseButton);\n" +
				"}\n\n",
		},
	}

	renderer := NewRenderer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := renderer.RenderWrapper(&tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRenderFileParts(t *testing.T) {
	renderer := NewRenderer(nil)

	banner, err := renderer.RenderBanner("// This file is automatically generated!")
	require.NoError(t, err)
	assert.Equal(t, "// This file is automatically generated!\n\n", banner)

	directive, err := renderer.RenderDirective("  #if defined(_PS3)  ")
	require.NoError(t, err)
	assert.Equal(t, "#if defined(_PS3)\n", directive)

	include, err := renderer.RenderInclude("isteamfriends.cpp")
	require.NoError(t, err)
	assert.Equal(t, "#include \"isteamfriends.cpp\"\n", include)
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	registry := &TemplateRegistry{templates: map[string]string{}}
	renderer := NewRenderer(registry)

	_, err := renderer.RenderInclude("x.cpp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template include is not registered")
}

func TestRenderer_Override(t *testing.T) {
	registry := NewTemplateRegistry()
	require.NoError(t, registry.Override(IncludeTemplateName, "#include <{{.}}>\n"))

	include, err := NewRenderer(registry).RenderInclude("a.cpp")
	require.NoError(t, err)
	assert.Equal(t, "#include <a.cpp>\n", include)
}

func TestTemplateRegistry(t *testing.T) {
	registry := NewTemplateRegistry()

	assert.Equal(t, []string{BannerTemplateName, DirectiveTemplateName, IncludeTemplateName, WrapperTemplateName}, registry.Names())

	_, ok := registry.Get("missing")
	assert.False(t, ok)

	err := registry.Override("footer", "// end\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown template "footer" (known: banner, directive, include, wrapper)`)
}
