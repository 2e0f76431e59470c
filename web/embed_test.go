package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssetsRootedAtDist(t *testing.T) {
	index, err := fs.ReadFile(Assets(), "index.html")
	require.NoError(t, err)
	require.Contains(t, string(index), `<div id="app">`)

	_, err = fs.Stat(Assets(), "assets/console.js")
	require.NoError(t, err)
}
