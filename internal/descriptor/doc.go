// Package descriptor loads and validates the site configuration descriptor:
// the site metadata and the ordered list of plugin activations that a
// build orchestrator consumes once per build.
//
// A Descriptor is constructed by Load or Parse and is read-only afterwards.
// Accessors hand out copies, so a build context can pass the same
// *Descriptor to every step without any step observing another's changes.
//
// Definitions are YAML, JSON or JSONC documents of the form:
//
//	siteMetadata:
//	  siteTitle: My Site
//	  siteDescription: Notes and links
//	  siteUrl: https://example.com/
//	  social:
//	    - icon: github
//	      url: https://github.com/example
//	plugins:
//	  - resolve: gatsby-plugin-sitemap
//	  - resolve: gatsby-plugin-google-analytics
//	    options:
//	      trackingId: UA-000000-1
package descriptor
