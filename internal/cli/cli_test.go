package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
vertices: 3
edges:
  - {from: 1, to: 2, weight: 5}
  - {from: 2, to: 3, weight: 7}
queries:
  - distance: {from: 1, to: 3}
  - close: 2
  - distance: {from: 1, to: 3}
`

func TestRunCommand_PrintsOneAnswerPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o600))

	var out bytes.Buffer
	c := New(io.Discard, &out)

	root := c.RootCommand()
	root.SetArgs([]string{"run", path})
	require.NoError(t, root.Execute())

	assert.Equal(t, "12\n-1\n", out.String())
}

func TestRunCommand_MissingFile(t *testing.T) {
	var out bytes.Buffer
	c := New(io.Discard, &out)

	root := c.RootCommand()
	root.SetArgs([]string{"run", filepath.Join(t.TempDir(), "absent.yaml")})
	root.SetErr(io.Discard)

	require.Error(t, root.Execute())
	assert.Empty(t, out.String())
}
