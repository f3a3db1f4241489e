// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package users

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/moin2git/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		want   map[string]types.UserRecord
		errMsg string
	}{
		{
			name: "parses key=value lines per user file",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeUser(t, dir, "1166731244.34.55864",
					"name=Tomas\nemail=tomas@example.com\naliasname=\n")
				writeUser(t, dir, "1166731900.12.12345",
					"username=eze\nemail=eze@example.com\n")
				return dir
			},
			want: map[string]types.UserRecord{
				"1166731244.34.55864": {
					"name":      "Tomas",
					"email":     "tomas@example.com",
					"aliasname": "",
				},
				"1166731900.12.12345": {
					"username": "eze",
					"email":    "eze@example.com",
				},
			},
		},
		{
			name: "ignores lines that are not lowercase key=value",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeUser(t, dir, "u1",
					"name=Ana\nBadKey=nope\n# comment\nemail=ana@example.com\n")
				return dir
			},
			want: map[string]types.UserRecord{
				"u1": {"name": "Ana", "email": "ana@example.com"},
			},
		},
		{
			name: "empty user file yields empty record",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeUser(t, dir, "u2", "")
				return dir
			},
			want: map[string]types.UserRecord{"u2": {}},
		},
		{
			name: "missing user directory is an error",
			setup: func(t *testing.T) string {
				return t.TempDir() // no user/ subdirectory
			},
			errMsg: "reading user directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataDir := tt.setup(t)
			got, err := Load(dataDir)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	dataDir := t.TempDir()
	writeUser(t, dataDir, "good", "name=Good\n")

	badPath := filepath.Join(dataDir, "user", "bad")
	require.NoError(t, os.WriteFile(badPath, []byte("name=Bad\n"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dataDir)
	require.NoError(t, err)
	assert.Equal(t, "Good", got["good"]["name"])
	_, hasBad := got["bad"]
	assert.False(t, hasBad, "unreadable user file should be skipped")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"u1": {"name": "Ana", "email": "ana@example.com"}}`), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]types.UserRecord{
		"u1": {"name": "Ana", "email": "ana@example.com"},
	}, got)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func writeUser(t *testing.T, dataDir, id, content string) {
	t.Helper()
	dir := filepath.Join(dataDir, "user")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, id), []byte(content), 0o644))
}
