package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repairjson/jsonrepair"
)

func TestReadInputFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{name: 'Ada'}`), 0o644))

	data, err := readInput(path)
	require.NoError(t, err)
	require.Equal(t, `{name: 'Ada'}`, string(data))
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.ErrorIs(t, err, jsonrepair.ErrIO)
}
