package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/flatgen/internal/config"
	"github.com/toyz/flatgen/internal/models"
)

func TestDocumentScanner_Scan(t *testing.T) {
	headerDir := t.TempDir()
	for _, name := range []string{
		"isteamutils.h",
		"isteamapps.h",
		"steamvr.h",
		"isteamgameserverhttp.h",
		"isteamhttp.h",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(headerDir, name), []byte("\n"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(headerDir, "lib"), 0755))

	settings := config.Default()
	settings.Aliases = []config.Alias{
		{Document: "isteamgameserverutils.h", Source: "isteamutils.h", Prefix: "ISteamGameServerUtils"},
		{Document: "isteamgameserverhttp.h", Source: "isteamhttp.h", Prefix: "ISteamGameServerHTTP"},
	}

	documents, err := NewDocumentScanner().Scan(headerDir, settings)
	require.NoError(t, err)

	expected := []models.Document{
		{Name: "isteamapps.h", SourcePath: filepath.Join(headerDir, "isteamapps.h")},
		{Name: "isteamhttp.h", SourcePath: filepath.Join(headerDir, "isteamhttp.h")},
		{Name: "isteamutils.h", SourcePath: filepath.Join(headerDir, "isteamutils.h")},
		{Name: "isteamgameserverutils.h", SourcePath: filepath.Join(headerDir, "isteamutils.h"), PrefixOverride: "ISteamGameServerUtils"},
		{Name: "isteamgameserverhttp.h", SourcePath: filepath.Join(headerDir, "isteamhttp.h"), PrefixOverride: "ISteamGameServerHTTP"},
	}
	assert.Equal(t, expected, documents)

	assert.False(t, documents[0].IsAlias())
	assert.True(t, documents[3].IsAlias())
}

func TestDocumentScanner_ScanDefaultTables(t *testing.T) {
	headerDir := t.TempDir()
	for _, name := range []string{"isteamappticket.h", "isteamgamecoordinator.h", "steam_api_flat.h", "isteamclient.h"} {
		require.NoError(t, os.WriteFile(filepath.Join(headerDir, name), []byte("\n"), 0644))
	}

	documents, err := NewDocumentScanner().Scan(headerDir, config.Default())
	require.NoError(t, err)

	var names []string
	for _, doc := range documents {
		names = append(names, doc.Name)
	}
	assert.Equal(t, []string{
		"isteamclient.h",
		"isteamgameserverutils.h",
		"isteamgameservernetworking.h",
		"isteamgameserverhttp.h",
		"isteamgameserverinventory.h",
	}, names)
}

func TestDocumentScanner_ScanMissingDirectory(t *testing.T) {
	_, err := NewDocumentScanner().Scan(filepath.Join(t.TempDir(), "steam"), config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read directory")
}
