package plugin

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Resolve identifiers of the built-in plugins.
const (
	NameChronoblog      = "gatsby-theme-chronoblog"
	NameManifest        = "gatsby-plugin-manifest"
	NameSitemap         = "gatsby-plugin-sitemap"
	NameGoogleAnalytics = "gatsby-plugin-google-analytics"
)

// ChronoblogOptions configures the blog/feed theme.
type ChronoblogOptions struct {
	UIText     ChronoblogUIText     `yaml:"uiText"`
	FeedItems  ChronoblogFeedItems  `yaml:"feedItems"`
	FeedSearch ChronoblogFeedSearch `yaml:"feedSearch"`
}

// ChronoblogUIText holds translatable UI strings.
type ChronoblogUIText struct {
	FeedShowMoreButton    string `yaml:"feedShowMoreButton"`
	FeedSearchPlaceholder string `yaml:"feedSearchPlaceholder"`
	CardReadMoreButton    string `yaml:"cardReadMoreButton"`
	AllTagsButton         string `yaml:"allTagsButton"`
}

// ChronoblogFeedItems holds global feed settings.
type ChronoblogFeedItems struct {
	Limit                  int                              `yaml:"limit"`
	YearSeparator          bool                             `yaml:"yearSeparator"`
	YearSeparatorSkipFirst bool                             `yaml:"yearSeparatorSkipFirst"`
	ContentTypes           map[string]ChronoblogContentType `yaml:"contentTypes"`
}

// ChronoblogContentType customizes one content type in the feed.
type ChronoblogContentType struct {
	BeforeTitle string `yaml:"beforeTitle"`
}

// ChronoblogFeedSearch configures the feed search box.
type ChronoblogFeedSearch struct {
	Symbol string `yaml:"symbol"`
}

func (o *ChronoblogOptions) Validate() error {
	if o.FeedItems.Limit < 0 {
		return fmt.Errorf("feedItems.limit must not be negative, got %d", o.FeedItems.Limit)
	}
	return nil
}

// ManifestOptions configures the web app manifest generator.
type ManifestOptions struct {
	Name            string `yaml:"name"`
	ShortName       string `yaml:"short_name"`
	StartURL        string `yaml:"start_url"`
	BackgroundColor string `yaml:"background_color"`
	ThemeColor      string `yaml:"theme_color"`
	Display         string `yaml:"display"`
	Icon            string `yaml:"icon"`
}

var (
	manifestDisplays = []string{"fullscreen", "standalone", "minimal-ui", "browser"}
	hexColor         = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

func (o *ManifestOptions) Validate() error {
	var problems []string
	if o.Name == "" {
		problems = append(problems, "name is required")
	}
	if o.Display != "" && !slices.Contains(manifestDisplays, o.Display) {
		problems = append(problems, fmt.Sprintf("display must be one of %v", manifestDisplays))
	}
	for field, color := range map[string]string{"background_color": o.BackgroundColor, "theme_color": o.ThemeColor} {
		if color != "" && strings.HasPrefix(color, "#") && !hexColor.MatchString(color) {
			problems = append(problems, field+" is not a valid hex color")
		}
	}
	if len(problems) > 0 {
		slices.Sort(problems)
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// SitemapOptions configures the sitemap generator. All fields are optional.
type SitemapOptions struct {
	Output  string   `yaml:"output"`
	Exclude []string `yaml:"exclude"`
}

// GoogleAnalyticsOptions configures the analytics integration.
type GoogleAnalyticsOptions struct {
	TrackingID string `yaml:"trackingId"`
	Head       bool   `yaml:"head"`
	Anonymize  bool   `yaml:"anonymize"`
	RespectDNT bool   `yaml:"respectDNT"`
}

var trackingID = regexp.MustCompile(`^(UA-\d+-\d+|G-[A-Z0-9]+)$`)

func (o *GoogleAnalyticsOptions) Validate() error {
	if o.TrackingID == "" {
		return fmt.Errorf("trackingId is required")
	}
	if !trackingID.MatchString(o.TrackingID) {
		return fmt.Errorf("trackingId %q is not a UA-XXXXXXXXX-X or G-XXXXXXX id", o.TrackingID)
	}
	return nil
}

// Builtins returns fresh instances of the built-in plugins.
func Builtins() []Plugin {
	return []Plugin{
		newSchemaPlugin[ChronoblogOptions](Metadata{
			Name:        NameChronoblog,
			Version:     "v1",
			Kind:        KindTheme,
			Description: "Blog and feed theme",
		}),
		newSchemaPlugin[ManifestOptions](Metadata{
			Name:        NameManifest,
			Version:     "v1",
			Kind:        KindManifest,
			Description: "Web app manifest generator",
		}),
		newSchemaPlugin[SitemapOptions](Metadata{
			Name:        NameSitemap,
			Version:     "v1",
			Kind:        KindSitemap,
			Description: "Sitemap generator",
		}),
		newSchemaPlugin[GoogleAnalyticsOptions](Metadata{
			Name:        NameGoogleAnalytics,
			Version:     "v1",
			Kind:        KindAnalytics,
			Description: "Google Analytics integration",
		}),
	}
}
