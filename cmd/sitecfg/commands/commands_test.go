package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

func exampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, descriptor.WriteExample(path, false))
	return path
}

func newGlobal() (*Global, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Global{Out: &buf}, &buf
}

func TestParseFlags(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"-c", "custom.json", "show", "-f", "json"})
	require.NoError(t, err)
	assert.Equal(t, "show", ctx.Command())
	assert.Equal(t, "custom.json", cli.Config)
	assert.Equal(t, "json", cli.Show.Format)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SITECFG_CONFIG", "from-env.yaml")
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"validate"})
	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", cli.Config)
}

func TestValidateExample(t *testing.T) {
	g, out := newGlobal()
	root := &CLI{Config: exampleConfig(t)}

	require.NoError(t, root.Validate.Run(g, root))
	assert.Contains(t, out.String(), "ok: ")
	assert.Contains(t, out.String(), "4 plugins: gatsby-theme-chronoblog, gatsby-plugin-manifest, gatsby-plugin-sitemap, gatsby-plugin-google-analytics")
}

func TestValidateUnknownPlugin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://example.com"}
plugins:
  - resolve: gatsby-plugin-sitemap
  - resolve: gatsby-plugin-unheard-of
`), 0o600))

	g, out := newGlobal()
	root := &CLI{Config: path}
	err := root.Validate.Run(g, root)

	require.Error(t, err)
	assert.True(t, errors.IsUnknownPlugin(err))
	assert.Equal(t, errors.ExitPlugin, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
	assert.Empty(t, out.String())
}

func TestValidateMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("siteMetadata: {siteDescription: D}\n"), 0o600))

	g, _ := newGlobal()
	root := &CLI{Config: path}
	err := root.Validate.Run(g, root)

	require.Error(t, err)
	assert.True(t, errors.IsMalformedConfig(err))
	assert.Equal(t, errors.ExitConfig, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestValidateMissingFile(t *testing.T) {
	g, _ := newGlobal()
	root := &CLI{Config: filepath.Join(t.TempDir(), "absent.yaml")}
	err := root.Validate.Run(g, root)

	require.Error(t, err)
	assert.Equal(t, errors.ExitFileSystem, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestShowJSON(t *testing.T) {
	g, out := newGlobal()
	root := &CLI{Config: exampleConfig(t), Show: ShowCmd{Format: "json"}}
	require.NoError(t, root.Show.Run(g, root))

	var doc struct {
		SiteMetadata map[string]any `json:"siteMetadata"`
		Plugins      []struct {
			Resolve string `json:"resolve"`
		} `json:"plugins"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "Santi Vazquez Personal Website", doc.SiteMetadata["siteTitle"])
	require.Len(t, doc.Plugins, 4)
	assert.Equal(t, "gatsby-plugin-google-analytics", doc.Plugins[3].Resolve)
}

func TestShowDefaultsToSourceFormat(t *testing.T) {
	g, out := newGlobal()
	root := &CLI{Config: exampleConfig(t)}
	require.NoError(t, root.Show.Run(g, root))

	reparsed, err := descriptor.Parse(out.Bytes(), descriptor.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, descriptor.Example().PluginNames(), reparsed.PluginNames())
}

func TestShowRejectsUnknownFormat(t *testing.T) {
	g, _ := newGlobal()
	root := &CLI{Config: exampleConfig(t), Show: ShowCmd{Format: "toml"}}
	err := root.Show.Run(g, root)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedConfig(err))
}

func TestPlanListsStepsInOrder(t *testing.T) {
	g, out := newGlobal()
	root := &CLI{Config: exampleConfig(t)}
	require.NoError(t, root.Plan.Run(g, root))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "STEP"))
	for i, name := range descriptor.Example().PluginNames() {
		fields := strings.Fields(lines[i+1])
		require.GreaterOrEqual(t, len(fields), 3)
		assert.Equal(t, name, fields[1])
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	g, out := newGlobal()
	root := &CLI{Config: filepath.Join(dir, "site.yaml")}

	require.NoError(t, root.Init.Run(g, root))
	assert.Contains(t, out.String(), "initialized successfully")
	assert.FileExists(t, root.Config)

	err := root.Init.Run(g, root)
	require.Error(t, err)

	root.Init.Force = true
	require.NoError(t, root.Init.Run(g, root))
}

func TestInitWithFormat(t *testing.T) {
	dir := t.TempDir()
	g, _ := newGlobal()
	root := &CLI{Config: filepath.Join(dir, "site.yaml"), Init: InitCmd{Format: "json"}}

	require.NoError(t, root.Init.Run(g, root))
	desc, err := descriptor.Load(filepath.Join(dir, "site.json"))
	require.NoError(t, err)
	assert.Equal(t, descriptor.FormatJSON, desc.Format())
}

func TestEnvFileExpansion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	envPath := filepath.Join(dir, "site.env")
	require.NoError(t, os.WriteFile(path, []byte(`
siteMetadata: {siteTitle: "${SITECFG_TEST_TITLE}", siteDescription: D, siteUrl: "https://example.com"}
`), 0o600))
	require.NoError(t, os.WriteFile(envPath, []byte("SITECFG_TEST_TITLE=From env file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SITECFG_TEST_TITLE") })

	g, _ := newGlobal()
	root := &CLI{Config: path, EnvFile: []string{envPath}}
	desc, err := root.load(g)
	require.NoError(t, err)
	assert.Equal(t, "From env file", desc.Site().Title)
}

func TestWatchStopsOnCancel(t *testing.T) {
	g, _ := newGlobal()
	root := &CLI{Config: exampleConfig(t)}
	cmd := &WatchCmd{Debounce: 10 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.run(ctx, g, root) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestLoadLogsOnce(t *testing.T) {
	var logs bytes.Buffer
	g := &Global{
		Out:    &bytes.Buffer{},
		Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	root := &CLI{Config: exampleConfig(t)}

	_, err := root.load(g)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(logs.String(), "Loaded site definition"))
}
