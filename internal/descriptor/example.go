package descriptor

import (
	"bytes"
	"os"

	"github.com/google/renameio/v2"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// Example returns the reference site definition written by `sitecfg init`.
func Example() *Descriptor {
	def := definition{
		SiteMetadata: SiteMetadata{
			Title:             "Santi Vazquez Personal Website",
			Description:       "Santi Vazquez is a Software Engineer from Argentina",
			Image:             "/banner.png",
			URL:               "https://santivazquez.dev/",
			PathPrefix:        "/",
			Language:          "en",
			Locale:            "en_US",
			Author:            "Santiago Vazquez",
			AuthorDescription: "Software Engineer from Argentina",
			Avatar:            "/avatar.png",
			TwitterSite:       "",
			TwitterCreator:    "",
			Social: []SocialLink{
				{Icon: IconTwitter, URL: "https://twitter.com/savazq"},
				{Icon: IconGitHub, URL: "https://github.com/santiagovazquez"},
				{Icon: IconLinkedIn, URL: "https://www.linkedin.com/in/svazquez/"},
			},
		},
		Plugins: []PluginActivation{
			{
				Resolve: "gatsby-theme-chronoblog",
				Options: Options{
					"uiText": map[string]any{
						"feedShowMoreButton":    "show more",
						"feedSearchPlaceholder": "search",
						"cardReadMoreButton":    "read more →",
						"allTagsButton":         "all tags",
					},
					"feedItems": map[string]any{
						"limit":                  5,
						"yearSeparator":          false,
						"yearSeparatorSkipFirst": true,
						"contentTypes": map[string]any{
							"links": map[string]any{"beforeTitle": "🔗 "},
						},
					},
					"feedSearch": map[string]any{"symbol": "🔍"},
				},
			},
			{
				Resolve: "gatsby-plugin-manifest",
				Options: Options{
					"name":             "Santi Vazquez Personal Website",
					"short_name":       "SantiVazquez",
					"start_url":        "/",
					"background_color": "#fff",
					"theme_color":      "#3a5f7d",
					"display":          "standalone",
					"icon":             "src/assets/favicon.png",
				},
			},
			{Resolve: "gatsby-plugin-sitemap"},
			{
				Resolve: "gatsby-plugin-google-analytics",
				Options: Options{"trackingId": "UA-154769827-1"},
			},
		},
	}
	return newDescriptor(def, inlineSource, FormatYAML)
}

// WriteExample writes the example definition to path in the format implied
// by its extension. The file is replaced atomically.
func WriteExample(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.FileSystemError("site definition already exists (use --force to overwrite)").
			WithContext(errors.ContextSource, path).
			Build()
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Example().Encode(&buf, format); err != nil {
		return err
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write site definition").
			Fatal().
			WithContext(errors.ContextSource, path).
			Build()
	}
	return nil
}
