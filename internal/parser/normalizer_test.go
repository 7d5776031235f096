package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []string // "" means the line is skipped
	}{
		{
			name:     "plain code is trimmed",
			lines:    []string{"\tvirtual bool IsValid() = 0;  "},
			expected: []string{"virtual bool IsValid() = 0;"},
		},
		{
			name:     "line comment dropped",
			lines:    []string{"virtual int GetCount() = 0; // number of friends", "// whole line"},
			expected: []string{"virtual int GetCount() = 0;", ""},
		},
		{
			name:     "block comment on one line keeps surrounding code",
			lines:    []string{"virtual int /* count */ GetCount() = 0;"},
			expected: []string{"virtual int   GetCount() = 0;"},
		},
		{
			name: "multi-line block comment",
			lines: []string{
				"/*",
				" * virtual void Hidden() = 0;",
				" */",
				"virtual void Visible() = 0;",
			},
			expected: []string{"", "", "", "virtual void Visible() = 0;"},
		},
		{
			name: "code before an unterminated comment still counts",
			lines: []string{
				"virtual void Open() = 0; /* starts here",
				"still comment",
				"ends here */ virtual void After() = 0;",
			},
			expected: []string{"virtual void Open() = 0;", "", "virtual void After() = 0;"},
		},
		{
			name: "line comment marker inside block comment is ignored",
			lines: []string{
				"/* see http://example.com",
				"*/ class ISteamFoo",
			},
			expected: []string{"", "class ISteamFoo"},
		},
		{
			name:     "block marker after line comment is ignored",
			lines:    []string{"int x; // not /* a block", "int y;"},
			expected: []string{"int x;", "int y;"},
		},
		{
			name:     "empty and whitespace lines",
			lines:    []string{"", "   \t"},
			expected: []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalizer := NewLineNormalizer()
			for i, raw := range tt.lines {
				line, ok := normalizer.Normalize(raw)
				if tt.expected[i] == "" {
					assert.False(t, ok, "line %d should be skipped, got %q", i, line)
					continue
				}
				assert.True(t, ok, "line %d should be kept", i)
				assert.Equal(t, tt.expected[i], line)
			}
		})
	}
}

func TestLineNormalizer_InBlockComment(t *testing.T) {
	normalizer := NewLineNormalizer()

	normalizer.Normalize("int a; /* open")
	assert.True(t, normalizer.InBlockComment())

	normalizer.Normalize("close */")
	assert.False(t, normalizer.InBlockComment())
}
