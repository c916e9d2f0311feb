package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

func failingFields(t *testing.T, err error) []string {
	t.Helper()
	classified, ok := errors.AsClassified(err)
	require.True(t, ok, "expected classified error, got %v", err)
	require.True(t, errors.IsMalformedConfig(err))
	fields, ok := classified.Context().GetStrings(errors.ContextFields)
	require.True(t, ok)
	return fields
}

func TestValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		def  string
		want string
	}{
		{
			name: "missing description",
			def:  `siteMetadata: {siteTitle: T, siteUrl: "https://e.com"}`,
			want: "siteMetadata.siteDescription: is required",
		},
		{
			name: "blank url",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "   "}`,
			want: "siteMetadata.siteUrl: is required",
		},
		{
			name: "relative url",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "/blog"}`,
			want: "siteMetadata.siteUrl: must be an absolute http(s) URL",
		},
		{
			name: "ftp url",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "ftp://e.com"}`,
			want: "siteMetadata.siteUrl: must be an absolute http(s) URL",
		},
		{
			name: "path prefix without slash",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com", pathPrefix: blog}`,
			want: "siteMetadata.pathPrefix: must start with /",
		},
		{
			name: "bad language",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com", siteLanguage: "not a language"}`,
			want: "siteMetadata.siteLanguage: must be a BCP 47 language tag",
		},
		{
			name: "bad locale",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com", ogLanguage: "en_!!"}`,
			want: "siteMetadata.ogLanguage: must be a locale such as en_US",
		},
		{
			name: "null title",
			def:  `siteMetadata: {siteTitle: null, siteDescription: D, siteUrl: "https://e.com"}`,
			want: "siteMetadata.siteTitle: must not be null; use an empty string",
		},
		{
			name: "null twitter",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com", twitterSite: ~}`,
			want: "siteMetadata.twitterSite: must not be null; use an empty string",
		},
		{
			name: "numeric title",
			def:  `siteMetadata: {siteTitle: 42, siteDescription: D, siteUrl: "https://e.com"}`,
			want: "siteMetadata.siteTitle: must be text",
		},
		{
			name: "social icon case differs",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com", social: [{icon: Twitter, url: "https://twitter.com/x"}]}`,
			want: "siteMetadata.social[0].icon: must be one of",
		},
		{
			name: "social url missing",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com", social: [{icon: github}]}`,
			want: "siteMetadata.social[0].url: is required",
		},
		{
			name: "social url null",
			def:  `siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com", social: [{icon: github, url: null}]}`,
			want: "siteMetadata.social[0].url: must not be null; use an empty string",
		},
		{
			name: "empty resolve",
			def:  `{siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com"}, plugins: [{resolve: gatsby-plugin-sitemap}, {resolve: ""}]}`,
			want: "plugins[1].resolve: must not be empty",
		},
		{
			name: "missing resolve",
			def:  `{siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com"}, plugins: [{options: {a: 1}}]}`,
			want: "plugins[0].resolve: must not be empty",
		},
		{
			name: "duplicate resolve",
			def:  `{siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com"}, plugins: [{resolve: a}, {resolve: b}, {resolve: a}]}`,
			want: "plugins[2].resolve: duplicates plugins[0]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			desc, err := Parse([]byte(tc.def), FormatYAML)
			require.Error(t, err)
			assert.Nil(t, desc)

			fields := failingFields(t, err)
			found := false
			for _, f := range fields {
				if len(f) >= len(tc.want) && f[:len(tc.want)] == tc.want {
					found = true
				}
			}
			assert.True(t, found, "want %q in %v", tc.want, fields)
		})
	}
}

func TestValidationCollectsAllFailures(t *testing.T) {
	const def = `
siteMetadata:
  siteUrl: relative
  social:
    - icon: myspace
      url: https://myspace.com/x
plugins:
  - resolve: ""
`
	_, err := Parse([]byte(def), FormatYAML)
	require.Error(t, err)
	fields := failingFields(t, err)
	assert.Len(t, fields, 5)
}

func TestAllowRepeated(t *testing.T) {
	const def = `{siteMetadata: {siteTitle: T, siteDescription: D, siteUrl: "https://e.com"}, plugins: [{resolve: gatsby-source-filesystem, options: {path: a}}, {resolve: gatsby-source-filesystem, options: {path: b}}]}`

	_, err := Parse([]byte(def), FormatYAML)
	require.Error(t, err)

	desc, err := Parse([]byte(def), FormatYAML, AllowRepeated("gatsby-source-filesystem"))
	require.NoError(t, err)
	plugins := desc.Plugins()
	require.Len(t, plugins, 2)
	assert.Equal(t, "a", plugins[0].Options["path"])
	assert.Equal(t, "b", plugins[1].Options["path"])
}

func TestOptionalFieldsAccepted(t *testing.T) {
	const def = `
siteMetadata:
  siteTitle: T
  siteDescription: D
  siteUrl: http://localhost:8000
  siteLanguage: pt-BR
  ogLanguage: pt_BR
  twitterSite: "@site"
  social:
    - icon: email
      url: mailto:me@example.com
`
	desc, err := Parse([]byte(def), FormatYAML)
	require.NoError(t, err)
	site := desc.Site()
	assert.Equal(t, "@site", site.TwitterSiteHandle().Unwrap())
	assert.True(t, site.TwitterCreatorHandle().IsNone())
	assert.Empty(t, desc.Plugins())
}

func TestNew(t *testing.T) {
	site := SiteMetadata{Title: "T", Description: "D", URL: "https://example.com"}
	plugins := []PluginActivation{{Resolve: "gatsby-plugin-sitemap"}}

	desc, err := New(site, plugins)
	require.NoError(t, err)
	assert.Equal(t, []string{"gatsby-plugin-sitemap"}, desc.PluginNames())

	plugins[0].Resolve = "mutated"
	assert.Equal(t, []string{"gatsby-plugin-sitemap"}, desc.PluginNames(), "inputs are copied")

	_, err = New(SiteMetadata{Description: "D", URL: "https://example.com"}, nil)
	require.Error(t, err)
	assert.Equal(t, []string{"siteMetadata.siteTitle: is required"}, failingFields(t, err))
}

func TestIconValid(t *testing.T) {
	for _, icon := range KnownIcons {
		assert.True(t, icon.Valid(), icon)
	}
	assert.False(t, Icon("GitHub").Valid())
	assert.False(t, Icon("").Valid())
}
