package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/inputkit/internal/errors"
	"github.com/vango-dev/inputkit/pkg/defaults"
	"github.com/vango-dev/inputkit/pkg/input"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
	}
	if cfg.Preview.Host != DefaultHost {
		t.Errorf("Preview.Host = %q, want %q", cfg.Preview.Host, DefaultHost)
	}
	if !cfg.Preview.Watch {
		t.Error("Preview.Watch should default to true")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("New() should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, errors.CodeConfigMissing) {
		t.Fatalf("Load() on empty dir = %v, want E141", err)
	}

	writeConfig(t, tmpDir, ConfigFileName, `
defaults:
  "*":
    autocomplete: "off"
  range:
    min: 0
    max: 10
themes:
  bootstrap:
    "*":
      class: form-control
    checkbox:
      class: [form-check-input, big]
theme: bootstrap
preview:
  port: 8080
  watch: false
  samples:
    - kind: range
      label: Volume
      output: true
      attrs:
        name: volume
        value: 4
log:
  level: debug
  pretty: true
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Preview.Port != 8080 {
		t.Errorf("Preview.Port = %d, want 8080", cfg.Preview.Port)
	}
	if cfg.Preview.Host != DefaultHost {
		t.Errorf("Preview.Host = %q, want default", cfg.Preview.Host)
	}
	if cfg.Preview.Watch {
		t.Error("Preview.Watch should be false")
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Pretty {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if got := cfg.Defaults["range"]["max"]; got != 10 {
		t.Errorf("defaults.range.max = %#v, want 10", got)
	}
	if len(cfg.Preview.Samples) != 1 || !cfg.Preview.Samples[0].Output {
		t.Errorf("Samples = %+v", cfg.Preview.Samples)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
	if cfg.PreviewAddress() != "localhost:8080" {
		t.Errorf("PreviewAddress() = %q", cfg.PreviewAddress())
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "inputkit.json", `{"defaults": {"text": {"size": 20}}, "preview": {"port": 5000}}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Preview.Port != 5000 {
		t.Errorf("Preview.Port = %d, want 5000", cfg.Preview.Port)
	}
	if cfg.Defaults["text"]["size"] != 20 {
		t.Errorf("defaults.text.size = %#v", cfg.Defaults["text"]["size"])
	}
}

func TestLoadFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
		code    string
		detail  string
	}{
		{
			name:    "malformed yaml",
			content: "defaults:\n  text: [\n",
			code:    errors.CodeConfigParse,
		},
		{
			name:    "unknown default kind",
			content: "defaults:\n  textarea:\n    rows: 3\n",
			code:    errors.CodeConfigInvalid,
			detail:  "input_kind",
		},
		{
			name:    "unknown theme kind",
			content: "themes:\n  dark:\n    select: {class: x}\n",
			code:    errors.CodeConfigInvalid,
			detail:  "themes.dark",
		},
		{
			name:    "bad port",
			content: "preview:\n  port: 70000\n",
			code:    errors.CodeConfigInvalid,
			detail:  "preview.port",
		},
		{
			name:    "bad sample kind",
			content: "preview:\n  samples:\n    - kind: select\n",
			code:    errors.CodeConfigInvalid,
		},
		{
			name:    "bad log level",
			content: "log:\n  level: loud\n",
			code:    errors.CodeConfigInvalid,
		},
		{
			name:    "bad metrics namespace",
			content: "preview:\n  metrics:\n    namespace: input-kit\n",
			code:    errors.CodeConfigInvalid,
			detail:  "preview.metrics.namespace",
		},
		{
			name:    "unsorted buckets",
			content: "preview:\n  metrics:\n    buckets: [0.5, 0.1]\n",
			code:    errors.CodeConfigInvalid,
			detail:  "strictly increasing",
		},
		{
			name:    "negative bucket",
			content: "preview:\n  metrics:\n    buckets: [-1]\n",
			code:    errors.CodeConfigInvalid,
			detail:  "preview.metrics.buckets",
		},
		{
			name:    "missing theme",
			content: "themes:\n  light: {}\ntheme: dark\n",
			code:    errors.CodeUnknownTheme,
			detail:  "available: light",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tmpDir, strings.ReplaceAll(tt.name, " ", "-")+".yaml", tt.content)
			_, err := LoadFile(path)
			if !errors.HasCode(err, tt.code) {
				t.Fatalf("LoadFile() error = %v, want code %s", err, tt.code)
			}
			if tt.detail == "" {
				return
			}
			ie := errors.FromError(err, "")
			if !strings.Contains(ie.Detail, tt.detail) {
				t.Errorf("Detail = %q, want it to mention %q", ie.Detail, tt.detail)
			}
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ConfigFileName, "theme: a\npreview:\n  port: [\n")
	_, err := LoadFile(path)
	ie := errors.FromError(err, "")
	if ie.Code != errors.CodeConfigParse {
		t.Fatalf("code = %s, want E120", ie.Code)
	}
	if ie.Location == nil || ie.Location.File != path {
		t.Errorf("Location = %v, want a location in %s", ie.Location, path)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := Example()
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Theme != "bootstrap" {
		t.Errorf("Theme = %q", loaded.Theme)
	}
	if !reflect.DeepEqual(loaded.ThemeNames(), []string{"bootstrap"}) {
		t.Errorf("ThemeNames() = %v", loaded.ThemeNames())
	}
	if len(loaded.Preview.Samples) != len(cfg.Preview.Samples) {
		t.Errorf("Samples = %d, want %d", len(loaded.Preview.Samples), len(cfg.Preview.Samples))
	}

	loaded.Theme = ""
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := (&Config{}).Save(); err == nil {
		t.Error("Save() without a path should fail")
	}
}

func TestApply(t *testing.T) {
	cfg := New()
	cfg.Defaults = map[string]map[string]any{
		"*":    {"autocomplete": "off"},
		"text": {"class": []any{"a", "b"}, "size": 3},
	}
	cfg.Themes = map[string]map[string]map[string]any{
		"dark": {"text": {"class": []any{"dark", "input"}, "data-x": []any{1, 2}}},
	}

	reg := defaults.NewRegistry()
	theme := cfg.Apply(reg)

	if got := reg.Get("*")["autocomplete"]; got != "off" {
		t.Errorf("wildcard autocomplete = %#v", got)
	}
	if got := reg.Get("text")["class"]; !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("text class = %#v, want []string", got)
	}
	if theme == nil || !theme.HasTheme("dark") {
		t.Fatal("Apply() should return the dark theme")
	}
	applied := theme.Apply("text", "dark")
	if !reflect.DeepEqual(applied["class"], []string{"dark", "input"}) {
		t.Errorf("theme class = %#v", applied["class"])
	}
	if !reflect.DeepEqual(applied["data-x"], []any{1, 2}) {
		t.Errorf("mixed list should be kept as is, got %#v", applied["data-x"])
	}

	if New().Apply(defaults.NewRegistry()) != nil {
		t.Error("Apply() without themes should return nil")
	}
}

func TestLoadedStyleAndClassRender(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ConfigFileName, `
defaults:
  text:
    style:
      color: red
      margin-top: 4px
themes:
  bootstrap:
    text:
      class: [form-control]
theme: bootstrap
`)
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	reg := defaults.NewRegistry()
	theme := cfg.Apply(reg)

	got := input.NewInputText().
		WithRegistry(reg).
		WithTheme(cfg.Theme, theme).
		ID("x").
		AddClass("extra").
		Render()
	want := `<input class="form-control extra" id="x" style="color: red; margin-top: 4px;" type="text">`
	if got != want {
		t.Errorf("Render() = %s, want %s", got, want)
	}
}

func TestSampleAttributes(t *testing.T) {
	s := Sample{Kind: "text", Attrs: map[string]any{"class": []any{"x"}, "name": "n"}}
	got := s.Attributes()
	if !reflect.DeepEqual(got["class"], []string{"x"}) || got["name"] != "n" {
		t.Errorf("Attributes() = %#v", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, ConfigFileName, "theme: \"\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error = %v", err)
	}
	if got != root {
		t.Errorf("FindProjectRoot() = %q, want %q", got, root)
	}
	if !Exists(root) || Exists(nested) {
		t.Error("Exists() mismatch")
	}
}
