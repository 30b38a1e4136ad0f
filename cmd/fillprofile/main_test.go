package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfiles = `
version: "1"
profiles:
  - name: public
    only: [name, nickname]
    exclude: password
  - name: import
    exclude: password
    dynamic_fields: true
`

const brokenProfiles = `
version: "2"
profiles:
  - name: a
  - name: a
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeTemp(t, "profiles.yaml", validProfiles)

		out, err := run(t, "check", path)
		require.NoError(t, err)
		assert.Contains(t, out, "OK: "+path)
	})

	t.Run("invalid", func(t *testing.T) {
		path := writeTemp(t, "profiles.yaml", brokenProfiles)

		out, err := run(t, "check", path)
		require.ErrorIs(t, err, errCheckFailed)
		assert.Contains(t, out, "[BAD_VERSION]")
		assert.Contains(t, out, "[a]: [DUPLICATE_NAME]")
		assert.NotContains(t, out, "OK:")
	})

	t.Run("missing file", func(t *testing.T) {
		out, err := run(t, "check", filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, errCheckFailed)
		assert.Contains(t, out, "ERROR in")
	})

	t.Run("no args", func(t *testing.T) {
		_, err := run(t, "check")
		require.Error(t, err)
	})
}

func TestShow(t *testing.T) {
	path := writeTemp(t, "profiles.yaml", validProfiles)

	out, err := run(t, "show", path, "public")
	require.NoError(t, err)
	assert.Contains(t, out, "name: public")
	assert.Contains(t, out, "exclude: password")
	assert.Contains(t, out, "bucket: data")

	_, err = run(t, "show", path, "missing")
	require.ErrorContains(t, err, `profile "missing" not found`)
}

func TestPreview(t *testing.T) {
	path := writeTemp(t, "profiles.yaml", validProfiles)

	t.Run("json overflow", func(t *testing.T) {
		input := writeTemp(t, "input.json", `{"name":"ada","password":"x","nickname":"countess","age":36}`)

		out, err := run(t, "preview", path, "public", input)
		require.NoError(t, err)
		assert.Equal(t, `{"dynamic":{},"overflow":{"name":"ada","nickname":"countess"}}`+"\n", out)
	})

	t.Run("yaml dynamic", func(t *testing.T) {
		input := writeTemp(t, "input.yml", "team: core\npassword: x\nname: ada\n")

		out, err := run(t, "preview", path, "import", input)
		require.NoError(t, err)
		assert.Equal(t, `{"dynamic":{"team":"core","name":"ada"},"overflow":{}}`+"\n", out)
	})

	t.Run("list with dynamic fields", func(t *testing.T) {
		input := writeTemp(t, "list.json", `["a","b"]`)

		out, err := run(t, "preview", path, "import", input)
		require.NoError(t, err)
		assert.Equal(t, `{"dynamic":{},"overflow":["a","b"]}`+"\n", out)
	})
}
