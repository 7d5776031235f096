package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toyz/flatgen/internal/config"
)

func TestTypeTranslator_TranslateArgs(t *testing.T) {
	settings := config.Default()
	translator := NewTypeTranslator(settings.QualifiedTypes, settings.HandleTypes)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare enum is qualified",
			input:    "HHTMLBrowser unBrowserHandle, EHTMLMouseButton eMouseButton",
			expected: "HHTMLBrowser unBrowserHandle, ISteamHTMLSurface::EHTMLMouseButton eMouseButton",
		},
		{
			name:     "several enums",
			input:    "EHTMLKeyModifiers eHTMLKeyModifiers, EHTMLMouseButton eMouseButton",
			expected: "ISteamHTMLSurface::EHTMLKeyModifiers eHTMLKeyModifiers, ISteamHTMLSurface::EHTMLMouseButton eMouseButton",
		},
		{
			name:     "already qualified",
			input:    "ISteamHTMLSurface::EHTMLMouseButton eMouseButton",
			expected: "ISteamHTMLSurface::EHTMLMouseButton eMouseButton",
		},
		{
			name:     "name inside a longer identifier",
			input:    "EHTMLMouseButtonEx eMouseButton",
			expected: "EHTMLMouseButtonEx eMouseButton",
		},
		{
			name:     "no enums",
			input:    "const char *pchName",
			expected: "const char *pchName",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.TranslateArgs(tt.input))
		})
	}
}

func TestTypeTranslator_TranslateReturn(t *testing.T) {
	settings := config.Default()
	translator := NewTypeTranslator(settings.QualifiedTypes, settings.HandleTypes)

	flat, conversion := translator.TranslateReturn("CSteamID")
	assert.Equal(t, "SteamID_t", flat)
	assert.Equal(t, ".ConvertToUint64()", conversion)

	flat, conversion = translator.TranslateReturn("const char *")
	assert.Equal(t, "const char *", flat)
	assert.Empty(t, conversion)

	flat, conversion = translator.TranslateReturn("CSteamIDSet")
	assert.Equal(t, "CSteamIDSet", flat)
	assert.Empty(t, conversion)
}

func TestTypeTranslator_EmptyTables(t *testing.T) {
	translator := NewTypeTranslator(nil, nil)

	assert.Equal(t, "EHTMLMouseButton eMouseButton", translator.TranslateArgs("EHTMLMouseButton eMouseButton"))
	flat, conversion := translator.TranslateReturn("CSteamID")
	assert.Equal(t, "CSteamID", flat)
	assert.Empty(t, conversion)
}
