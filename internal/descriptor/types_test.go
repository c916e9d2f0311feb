package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorAccessorsReturnCopies(t *testing.T) {
	desc := Example()

	site := desc.Site()
	site.Title = "changed"
	site.Social[0].URL = "https://example.com/changed"

	plugins := desc.Plugins()
	plugins[0].Resolve = "changed"
	plugins[3].Options["trackingId"] = "changed"
	plugins[0].Options["uiText"].(map[string]any)["allTagsButton"] = "changed"

	fresh := desc.Site()
	assert.Equal(t, "Santi Vazquez Personal Website", fresh.Title)
	assert.Equal(t, "https://twitter.com/savazq", fresh.Social[0].URL)

	freshPlugins := desc.Plugins()
	assert.Equal(t, "gatsby-theme-chronoblog", freshPlugins[0].Resolve)
	assert.Equal(t, "UA-154769827-1", freshPlugins[3].Options["trackingId"])
	assert.Equal(t, "all tags", freshPlugins[0].Options["uiText"].(map[string]any)["allTagsButton"])
}

func TestOptionsClone(t *testing.T) {
	var nilOpts Options
	assert.Nil(t, nilOpts.Clone())

	orig := Options{
		"list":   []any{"a", map[string]any{"k": "v"}},
		"nested": Options{"x": 1},
	}
	cp := orig.Clone()
	cp["list"].([]any)[1].(map[string]any)["k"] = "changed"
	cp["nested"].(Options)["x"] = 2

	assert.Equal(t, "v", orig["list"].([]any)[1].(map[string]any)["k"])
	assert.Equal(t, 1, orig["nested"].(Options)["x"])
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"yaml": FormatYAML, ".yml": FormatYAML, "YAML": FormatYAML,
		"json": FormatJSON, ".jsonc": FormatJSONC,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)

	f, err := FormatFromPath("/etc/site/site.config.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("gatsby-config.js")
	assert.Error(t, err)
}

const nonStringKeysDef = `
siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://example.com"}
plugins:
  - resolve: gatsby-plugin-image
    options:
      breakpoints: {640: small, 1024: large}
      flags: [{true: on}]
`

func TestNonStringOptionKeysAreStringified(t *testing.T) {
	desc, err := Parse([]byte(nonStringKeysDef), FormatYAML)
	require.NoError(t, err)

	opts := desc.Plugins()[0].Options
	assert.Equal(t, map[string]any{"640": "small", "1024": "large"}, opts["breakpoints"])
	assert.Equal(t, []any{map[string]any{"true": "on"}}, opts["flags"])

	opts["breakpoints"].(map[string]any)["640"] = "changed"
	assert.Equal(t, "small", desc.Plugins()[0].Options["breakpoints"].(map[string]any)["640"])
}

func TestOptionsCloneStringifiesKeys(t *testing.T) {
	orig := Options{"m": map[any]any{1: "one", "two": map[any]any{3.5: "x"}}}
	cp := orig.Clone()
	assert.Equal(t, map[string]any{"1": "one", "two": map[string]any{"3.5": "x"}}, cp["m"])
}
