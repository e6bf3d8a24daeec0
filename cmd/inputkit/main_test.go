package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/inputkit/internal/config"
	"github.com/vango-dev/inputkit/internal/errors"
	"github.com/vango-dev/inputkit/pkg/ids"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const projectConfig = `
defaults:
  text:
    autocomplete: "off"
themes:
  bootstrap:
    "*":
      class: form-control
theme: bootstrap
`

func TestRender(t *testing.T) {
	path := writeProject(t, projectConfig)

	out, err := run(t, "render", "text", "-c", path, "--id", "email", "--attr", "name=email", "-a", "required", "-a", "maxlength=40")
	require.NoError(t, err)
	assert.Equal(t,
		`<input autocomplete="off" class="form-control" id="email" maxlength="40" name="email" required type="text">`+"\n",
		out)
}

func TestRenderWithoutTheme(t *testing.T) {
	path := writeProject(t, projectConfig)

	out, err := run(t, "render", "text", "-c", path, "--theme", "", "--id", "x", "-a", "autocomplete=null")
	require.NoError(t, err)
	assert.Equal(t, `<input id="x" type="text">`+"\n", out)
}

func TestRenderGeneratedID(t *testing.T) {
	restore := ids.SetGenerator(ids.Sequence())
	defer restore()
	path := writeProject(t, "{}")

	out, err := run(t, "render", "tel", "-c", path, "-a", "aria-describedby=true")
	require.NoError(t, err)
	assert.Equal(t, `<input aria-describedby="inputtel-1-help" id="inputtel-1" type="tel">`+"\n", out)

	out, err = run(t, "render", "tel", "-c", path, "--id", "null", "-a", "aria-describedby=true")
	require.NoError(t, err)
	assert.Equal(t, `<input type="tel">`+"\n", out)
}

func TestRenderRangeWithAffixes(t *testing.T) {
	path := writeProject(t, "{}")

	out, err := run(t, "render", "range", "-c", path, "--id", "v", "-a", "value=3", "--output", "--prefix", "<label for=v>Volume</label>", "--suffix", "<small>0-10</small>")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "<label for=v>Volume</label>", lines[0])
	assert.Equal(t, `<input id="v" oninput="this.nextElementSibling.value=this.value" type="range" value="3">`, lines[1])
	assert.Equal(t, `<output for="v" id="v-output">3</output>`, lines[2])
	assert.Equal(t, "<small>0-10</small>", lines[3])
}

func TestRenderErrors(t *testing.T) {
	path := writeProject(t, projectConfig)

	_, err := run(t, "render", "textarea", "-c", path)
	assert.True(t, errors.HasCode(err, errors.CodeUnknownKind), "%v", err)

	_, err = run(t, "render", "text", "-c", path, "--theme", "dark")
	assert.True(t, errors.HasCode(err, errors.CodeUnknownTheme), "%v", err)

	_, err = run(t, "render", "text", "-c", path, "-a", "=x")
	assert.True(t, errors.HasCode(err, errors.CodeBadAttribute), "%v", err)

	_, err = run(t, "render", "text", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.HasCode(err, errors.CodeConfigMissing), "%v", err)

	_, err = run(t, "render")
	assert.Error(t, err)

	_, err = run(t, "render", "text", "-c", path, "--log-level", "loud")
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	out, err := run(t, "kinds")
	require.NoError(t, err)
	lines := strings.Fields(out)
	assert.Len(t, lines, 22)
	assert.Equal(t, "hidden", lines[0])
	assert.Contains(t, lines, "datetime-local")
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "web")

	out, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "bootstrap", cfg.Theme)

	_, err = run(t, "init", dir)
	assert.True(t, errors.HasCode(err, errors.CodeConfigExists), "%v", err)

	_, err = run(t, "init", dir, "--force")
	assert.NoError(t, err)

	out, err = run(t, "render", "submit", "-c", filepath.Join(dir, config.ConfigFileName), "--id", "go", "-a", "value=Send")
	require.NoError(t, err)
	assert.Equal(t, `<input autocomplete="off" class="btn btn-primary" id="go" type="submit" value="Send">`+"\n", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "inputkit dev")
	assert.Contains(t, out, "Go version:")
}
