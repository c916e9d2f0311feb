package descriptor

import (
	"fmt"
	"slices"

	"git.home.luguber.info/inful/sitecfg/internal/foundation"
)

// Icon identifies a social network icon understood by the rendering layer.
type Icon string

const (
	IconTwitter       Icon = "twitter"
	IconGitHub        Icon = "github"
	IconLinkedIn      Icon = "linkedin"
	IconFacebook      Icon = "facebook"
	IconInstagram     Icon = "instagram"
	IconYouTube       Icon = "youtube"
	IconMastodon      Icon = "mastodon"
	IconGitLab        Icon = "gitlab"
	IconStackOverflow Icon = "stackoverflow"
	IconMedium        Icon = "medium"
	IconDev           Icon = "dev"
	IconRSS           Icon = "rss"
	IconEmail         Icon = "email"
)

// KnownIcons lists every icon the rendering layer understands.
var KnownIcons = []Icon{
	IconTwitter, IconGitHub, IconLinkedIn, IconFacebook, IconInstagram,
	IconYouTube, IconMastodon, IconGitLab, IconStackOverflow, IconMedium,
	IconDev, IconRSS, IconEmail,
}

// Valid reports whether i belongs to KnownIcons. Matching is exact.
func (i Icon) Valid() bool {
	return slices.Contains(KnownIcons, i)
}

// SocialLink is one entry of the social link list, in display order.
type SocialLink struct {
	Icon Icon   `yaml:"icon" json:"icon"`
	URL  string `yaml:"url" json:"url"`
}

// SiteMetadata holds the site-wide text fields. Absent values are empty
// strings, never nil, so the struct serializes to plain data unchanged.
type SiteMetadata struct {
	Title             string       `yaml:"siteTitle" json:"siteTitle"`
	Description       string       `yaml:"siteDescription" json:"siteDescription"`
	Image             string       `yaml:"siteImage" json:"siteImage"`
	URL               string       `yaml:"siteUrl" json:"siteUrl"`
	PathPrefix        string       `yaml:"pathPrefix" json:"pathPrefix"`
	Language          string       `yaml:"siteLanguage" json:"siteLanguage"`
	Locale            string       `yaml:"ogLanguage" json:"ogLanguage"`
	Author            string       `yaml:"author" json:"author"`
	AuthorDescription string       `yaml:"authorDescription" json:"authorDescription"`
	Avatar            string       `yaml:"avatar" json:"avatar"`
	TwitterSite       string       `yaml:"twitterSite" json:"twitterSite"`
	TwitterCreator    string       `yaml:"twitterCreator" json:"twitterCreator"`
	Social            []SocialLink `yaml:"social" json:"social"`
}

// TwitterSiteHandle returns the site's twitter account, if configured.
func (m SiteMetadata) TwitterSiteHandle() foundation.Option[string] {
	return foundation.NonEmpty(m.TwitterSite)
}

// TwitterCreatorHandle returns the creator's twitter account, if configured.
func (m SiteMetadata) TwitterCreatorHandle() foundation.Option[string] {
	return foundation.NonEmpty(m.TwitterCreator)
}

func (m SiteMetadata) clone() SiteMetadata {
	out := m
	if m.Social != nil {
		out.Social = slices.Clone(m.Social)
	}
	return out
}

// Options is the plugin-specific option mapping of an activation. Its shape
// belongs to the plugin; the descriptor only guarantees it is a mapping.
type Options map[string]any

// Clone returns a deep copy of o. Nested mappings and sequences are copied;
// scalar leaves are shared. Mappings with non-string keys come back keyed by
// their string form, so options always encode as JSON objects.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(tv))
		for k, inner := range tv {
			m[k] = cloneValue(inner)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(tv))
		for k, inner := range tv {
			m[fmt.Sprint(k)] = cloneValue(inner)
		}
		return m
	case Options:
		return tv.Clone()
	case []any:
		s := make([]any, len(tv))
		for i, inner := range tv {
			s[i] = cloneValue(inner)
		}
		return s
	default:
		return v
	}
}

// PluginActivation instructs the orchestrator to invoke the plugin named by
// Resolve with Options.
type PluginActivation struct {
	Resolve string  `yaml:"resolve" json:"resolve"`
	Options Options `yaml:"options,omitempty" json:"options,omitempty"`
}

func (a PluginActivation) clone() PluginActivation {
	return PluginActivation{Resolve: a.Resolve, Options: a.Options.Clone()}
}

// definition is the on-disk shape of a site definition.
type definition struct {
	SiteMetadata SiteMetadata       `yaml:"siteMetadata" json:"siteMetadata"`
	Plugins      []PluginActivation `yaml:"plugins" json:"plugins"`
}

// Descriptor is a loaded, validated site definition.
type Descriptor struct {
	site    SiteMetadata
	plugins []PluginActivation
	source  string
	format  Format
}

// New validates site and plugins and builds a Descriptor from them. It is the
// programmatic equivalent of Parse; the inputs are copied.
func New(site SiteMetadata, plugins []PluginActivation, opts ...LoadOption) (*Descriptor, error) {
	o := newLoadOptions(opts)
	def := definition{SiteMetadata: site, Plugins: plugins}
	if err := validate(&def, nil, o).ToError(inlineSource); err != nil {
		return nil, err
	}
	return newDescriptor(def, inlineSource, FormatYAML), nil
}

func newDescriptor(def definition, source string, format Format) *Descriptor {
	plugins := make([]PluginActivation, len(def.Plugins))
	for i, p := range def.Plugins {
		plugins[i] = p.clone()
	}
	return &Descriptor{
		site:    def.SiteMetadata.clone(),
		plugins: plugins,
		source:  source,
		format:  format,
	}
}

// Site returns a copy of the site metadata.
func (d *Descriptor) Site() SiteMetadata {
	return d.site.clone()
}

// Plugins returns a copy of the plugin activations in definition order.
func (d *Descriptor) Plugins() []PluginActivation {
	out := make([]PluginActivation, len(d.plugins))
	for i, p := range d.plugins {
		out[i] = p.clone()
	}
	return out
}

// PluginNames returns the resolve identifiers in definition order.
func (d *Descriptor) PluginNames() []string {
	names := make([]string, len(d.plugins))
	for i, p := range d.plugins {
		names[i] = p.Resolve
	}
	return names
}

// Source is the path the descriptor was loaded from, or "<inline>".
func (d *Descriptor) Source() string { return d.source }

// Format is the format the descriptor was decoded from.
func (d *Descriptor) Format() Format { return d.format }

func (d *Descriptor) definition() definition {
	return definition{SiteMetadata: d.Site(), Plugins: d.Plugins()}
}
