package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	settings := Default()

	require.NoError(t, settings.Validate())
	assert.Equal(t, "// This file is automatically generated!", settings.Banner)
	assert.True(t, settings.IsExcluded("steam_api_flat.h"))
	assert.False(t, settings.IsExcluded("isteamfriends.h"))
	assert.Contains(t, settings.AnnotationMacros, "OUT_STRING_COUNT")

	alias, ok := settings.ResolveAlias("isteamgameserverhttp.h")
	require.True(t, ok)
	assert.Equal(t, "isteamhttp.h", alias.Source)
	assert.Equal(t, "ISteamGameServerHTTP", alias.Prefix)

	_, ok = settings.ResolveAlias("isteamhttp.h")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("empty path returns defaults", func(t *testing.T) {
		settings, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), settings)
	})

	t.Run("overrides replace tables", func(t *testing.T) {
		path := filepath.Join(tempDir, "flatgen.yaml")
		content := `collision_marker: "2"
exclusions:
  - isteamclient.h
aliases:
  - document: isteamgameserverapps.h
    source: isteamapps.h
    prefix: ISteamGameServerApps
annotation_macros:
  - MY_MACRO
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		settings, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "2", settings.CollisionMarker)
		assert.Equal(t, []string{"isteamclient.h"}, settings.Exclusions)
		assert.Equal(t, []string{"MY_MACRO"}, settings.AnnotationMacros)
		require.Len(t, settings.Aliases, 1)
		assert.Equal(t, "ISteamGameServerApps", settings.Aliases[0].Prefix)
		// Untouched tables keep their defaults
		assert.Equal(t, "SteamID_t", settings.HandleTypes["CSteamID"].FlatType)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		path := filepath.Join(tempDir, "unknown.yaml")
		require.NoError(t, os.WriteFile(path, []byte("not_a_field: true\n"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("invalid alias is rejected", func(t *testing.T) {
		path := filepath.Join(tempDir, "alias.yaml")
		content := "aliases:\n  - document: a.h\n    source: b.h\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "prefix are required")
	})

	t.Run("template overrides", func(t *testing.T) {
		path := filepath.Join(tempDir, "templates.yaml")
		content := "templates:\n  banner: \"// custom\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		settings, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"banner": "// custom"}, settings.Templates)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := filepath.Join(tempDir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		settings, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), settings)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "missing.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})
}
