// Package plugin holds the plugins a build orchestrator understands. Each
// plugin owns the schema of its options: the descriptor treats options as an
// opaque mapping and the plugin decodes them lazily when a plan is resolved.
package plugin

import (
	"fmt"

	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
)

// Plugin is an external extension the orchestrator can invoke.
type Plugin interface {
	// Metadata returns the plugin's identity.
	Metadata() Metadata

	// DecodeOptions checks opts against the plugin's schema and returns the
	// typed options. A nil opts means the activation carried no options.
	DecodeOptions(opts descriptor.Options) (any, error)
}

// Metadata describes a plugin's identity.
type Metadata struct {
	// Name is the resolve identifier, e.g. "gatsby-plugin-sitemap".
	Name string

	Version string

	Kind Kind

	Description string
}

// String returns a human-readable representation of the plugin metadata.
func (m Metadata) String() string {
	return fmt.Sprintf("%s@%s (%s)", m.Name, m.Version, m.Kind)
}

// Validate checks if the plugin metadata is valid.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if !m.Kind.IsValid() {
		return fmt.Errorf("invalid plugin kind: %s", m.Kind)
	}
	return nil
}

// Kind identifies the category of plugin.
type Kind string

const (
	// KindTheme renders pages and feeds.
	KindTheme Kind = "theme"

	// KindManifest generates the web app manifest.
	KindManifest Kind = "manifest"

	// KindSitemap generates sitemap.xml.
	KindSitemap Kind = "sitemap"

	// KindAnalytics injects an analytics integration.
	KindAnalytics Kind = "analytics"
)

// IsValid returns true if the plugin kind is recognized.
func (k Kind) IsValid() bool {
	switch k {
	case KindTheme, KindManifest, KindSitemap, KindAnalytics:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}
