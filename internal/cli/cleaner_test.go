package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/flatgen/internal/config"
)

func TestCleaner_CleanGeneratedFiles(t *testing.T) {
	ws := newTestWorkspace(t)
	var out bytes.Buffer
	require.NoError(t, newTestGenerator(&out).Run(ws.cfg()))

	handWritten := filepath.Join(ws.output, "steamworks_helpers.cpp")
	require.NoError(t, os.WriteFile(handWritten, []byte("// Helpers kept next to the wrapper\n"), 0644))
	notes := filepath.Join(ws.output, "README.txt")
	require.NoError(t, os.WriteFile(notes, []byte(config.Default().Banner), 0644))

	removed, err := NewCleaner().CleanGeneratedFiles(ws.output, config.Default().Banner)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(ws.output, "isteamfriends.cpp"),
		filepath.Join(ws.output, "isteamgameserverutils.cpp"),
		filepath.Join(ws.output, "isteamutils.cpp"),
		filepath.Join(ws.output, "unitybuild.cpp"),
	}, removed)

	files := readOutput(t, ws.output)
	assert.Len(t, files, 2)
	assert.Contains(t, files, "steamworks_helpers.cpp")
	assert.Contains(t, files, "README.txt")
}

func TestCleaner_MissingDirectory(t *testing.T) {
	removed, err := NewCleaner().CleanGeneratedFiles(filepath.Join(t.TempDir(), "wrapper"), config.Default().Banner)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCleaner_RequiresBanner(t *testing.T) {
	_, err := NewCleaner().CleanGeneratedFiles(t.TempDir(), "")
	require.Error(t, err)
}
