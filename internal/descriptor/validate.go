package descriptor

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/foundation"
)

const siteKey = "siteMetadata"

// textKeys are the siteMetadata keys holding plain text.
var textKeys = map[string]bool{
	"siteTitle": true, "siteDescription": true, "siteImage": true, "siteUrl": true,
	"pathPrefix": true, "siteLanguage": true, "ogLanguage": true, "author": true,
	"authorDescription": true, "avatar": true, "twitterSite": true, "twitterCreator": true,
}

// validate checks every rule and collects all failures. root may be nil for
// descriptors built in code.
func validate(def *definition, root *yaml.Node, o *loadOptions) foundation.ValidationResult {
	res := foundation.Valid()
	if root != nil {
		res = res.Combine(validateShape(root))
	}
	res = res.Combine(validateSite(def.SiteMetadata))
	res = res.Combine(validatePlugins(def.Plugins, o.repeatable))
	return res
}

func validateSite(m SiteMetadata) foundation.ValidationResult {
	res := foundation.Valid()

	required := []struct{ field, value string }{
		{siteKey + ".siteTitle", m.Title},
		{siteKey + ".siteDescription", m.Description},
		{siteKey + ".siteUrl", m.URL},
	}
	for _, r := range required {
		res = res.Combine(foundation.Required(r.field)(strings.TrimSpace(r.value)))
	}

	if strings.TrimSpace(m.URL) != "" {
		if u, err := url.Parse(m.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			res.Add(foundation.FieldError{
				Field:   siteKey + ".siteUrl",
				Code:    "url",
				Message: "must be an absolute http(s) URL",
				Value:   m.URL,
			})
		}
	}
	if m.PathPrefix != "" && !strings.HasPrefix(m.PathPrefix, "/") {
		res.Add(foundation.FieldError{
			Field:   siteKey + ".pathPrefix",
			Code:    "path",
			Message: "must start with /",
			Value:   m.PathPrefix,
		})
	}
	if m.Language != "" {
		if _, err := language.Parse(m.Language); err != nil {
			res.Add(foundation.FieldError{
				Field:   siteKey + ".siteLanguage",
				Code:    "language",
				Message: "must be a BCP 47 language tag",
				Value:   m.Language,
			})
		}
	}
	if m.Locale != "" {
		if _, err := language.Parse(m.Locale); err != nil {
			res.Add(foundation.FieldError{
				Field:   siteKey + ".ogLanguage",
				Code:    "locale",
				Message: "must be a locale such as en_US",
				Value:   m.Locale,
			})
		}
	}

	iconValidator := foundation.OneOf("", KnownIcons)
	for i, link := range m.Social {
		prefix := fmt.Sprintf("%s.social[%d]", siteKey, i)
		if vr := iconValidator(link.Icon); !vr.Valid {
			for _, fe := range vr.Errors {
				fe.Field = prefix + ".icon"
				res.Add(fe)
			}
		}
		if strings.TrimSpace(link.URL) == "" {
			res.Add(foundation.NewValidationError(prefix+".url", "required", "is required"))
		} else if u, err := url.Parse(link.URL); err != nil || u.Scheme == "" {
			res.Add(foundation.FieldError{
				Field:   prefix + ".url",
				Code:    "url",
				Message: "must be an absolute URL",
				Value:   link.URL,
			})
		}
	}
	return res
}

func validatePlugins(plugins []PluginActivation, repeatable map[string]bool) foundation.ValidationResult {
	res := foundation.Valid()
	seen := make(map[string]int, len(plugins))
	for i, p := range plugins {
		field := fmt.Sprintf("plugins[%d].resolve", i)
		if strings.TrimSpace(p.Resolve) == "" {
			res.Add(foundation.NewValidationError(field, "required", "must not be empty"))
			continue
		}
		if first, dup := seen[p.Resolve]; dup && !repeatable[p.Resolve] {
			res.Add(foundation.FieldError{
				Field:   field,
				Code:    "duplicate",
				Message: fmt.Sprintf("duplicates plugins[%d]", first),
				Value:   p.Resolve,
			})
			continue
		}
		if _, dup := seen[p.Resolve]; !dup {
			seen[p.Resolve] = i
		}
	}
	return res
}

// validateShape reports explicit nulls and non-text scalars in text fields.
// The typed decode cannot see either: yaml maps both onto a string field.
func validateShape(root *yaml.Node) foundation.ValidationResult {
	res := foundation.Valid()
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return res
	}

	if site := mappingValue(doc, siteKey); site != nil && site.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(site.Content); i += 2 {
			key, val := site.Content[i].Value, site.Content[i+1]
			if textKeys[key] {
				checkText(&res, siteKey+"."+key, val)
			}
		}
		if social := mappingValue(site, "social"); social != nil && social.Kind == yaml.SequenceNode {
			for i, item := range social.Content {
				prefix := fmt.Sprintf("%s.social[%d]", siteKey, i)
				if item.Kind != yaml.MappingNode {
					continue
				}
				checkText(&res, prefix+".icon", mappingValue(item, "icon"))
				checkText(&res, prefix+".url", mappingValue(item, "url"))
			}
		}
	}

	if plugins := mappingValue(doc, "plugins"); plugins != nil && plugins.Kind == yaml.SequenceNode {
		for i, item := range plugins.Content {
			if item.Kind != yaml.MappingNode {
				continue
			}
			checkText(&res, fmt.Sprintf("plugins[%d].resolve", i), mappingValue(item, "resolve"))
		}
	}
	return res
}

func checkText(res *foundation.ValidationResult, field string, n *yaml.Node) {
	if n == nil || n.Kind != yaml.ScalarNode {
		return
	}
	switch n.Tag {
	case "!!str":
	case "!!null":
		res.Add(foundation.NewValidationError(field, "null", "must not be null; use an empty string"))
	default:
		res.Add(foundation.FieldError{Field: field, Code: "type", Message: "must be text", Value: n.Value})
	}
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
