package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

func TestOption(t *testing.T) {
	some := Some("@savazq")
	assert.True(t, some.IsSome())
	assert.Equal(t, "@savazq", some.Unwrap())
	assert.Equal(t, "Some(@savazq)", some.String())

	none := None[string]()
	assert.True(t, none.IsNone())
	assert.Equal(t, "fallback", none.UnwrapOr("fallback"))
	assert.Equal(t, "None", none.String())
	assert.Panics(t, func() { none.Unwrap() })

	assert.True(t, NonEmpty("").IsNone())
	v, ok := NonEmpty("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestNormalizer(t *testing.T) {
	n := NewNormalizer(map[string]int{"YAML": 1, "json": 2}, 0)
	assert.Equal(t, 1, n.Normalize(" yaml "))
	assert.Equal(t, 0, n.Normalize("toml"))

	_, err := n.NormalizeWithError("toml")
	assert.Error(t, err)
	got, err := n.NormalizeWithError("JSON")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestValidationResultToError(t *testing.T) {
	assert.NoError(t, Valid().ToError("site.yaml"))

	res := Required("siteMetadata.siteTitle")("")
	res = res.Combine(OneOf("social[0].icon", []string{"twitter"})("myspace"))
	res = res.Combine(Required("siteMetadata.siteUrl")("https://example.com"))
	require.False(t, res.Valid)
	assert.Equal(t, []string{"siteMetadata.siteTitle", "social[0].icon"}, res.Fields())

	err := res.ToError("site.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsMalformedConfig(err))

	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	field, _ := classified.Context().GetString(errors.ContextField)
	assert.Equal(t, "siteMetadata.siteTitle", field)
	fields, _ := classified.Context().GetStrings(errors.ContextFields)
	assert.Equal(t, "siteMetadata.siteTitle: is required", fields[0])
	assert.Contains(t, fields[1], "social[0].icon: must be one of")
}

func TestValidationResultAdd(t *testing.T) {
	res := Valid()
	res.Add(NewValidationError("plugins[0].resolve", "required", "must not be empty"))
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, "plugins[0].resolve: must not be empty", res.Errors[0].Error())
}
