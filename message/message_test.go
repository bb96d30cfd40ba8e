package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationKeepsInsertionOrder(t *testing.T) {
	cfg := NewConfiguration(
		StringProperty("zeta", "1"),
		NullProperty("alpha"),
		StringProperty("mid", "2"),
	)

	require.Equal(t, 3, cfg.Len())
	props := cfg.Properties()
	assert.Equal(t, "zeta", props[0].Key)
	assert.Equal(t, "alpha", props[1].Key)
	assert.True(t, props[1].IsNull())
	assert.Equal(t, "mid", props[2].Key)
}

func TestConfigurationReplaceKeepsPosition(t *testing.T) {
	cfg := NewConfiguration(
		StringProperty("a", "1"),
		StringProperty("b", "2"),
		NullProperty("a"),
	)

	require.Equal(t, 2, cfg.Len())
	p, ok := cfg.Get("a")
	require.True(t, ok)
	assert.True(t, p.IsNull())
	assert.Equal(t, "a", cfg.Properties()[0].Key)
}

func TestConfigurationFromMapSortsKeys(t *testing.T) {
	cfg := ConfigurationFromMap(map[string]string{"key2": "value2", "key1": "value1"})

	props := cfg.Properties()
	require.Len(t, props, 2)
	assert.Equal(t, "key1", props[0].Key)
	assert.Equal(t, "value1", *props[0].Value)
	assert.Equal(t, "key2", props[1].Key)
}

func TestConfigurationIsNotAliased(t *testing.T) {
	v := "before"
	cfg := NewConfiguration(Property{Key: "k", Value: &v})
	v = "after"

	p, _ := cfg.Get("k")
	assert.Equal(t, "before", *p.Value)

	props := cfg.Properties()
	props[0].Key = "changed"
	_, ok := cfg.Get("k")
	assert.True(t, ok)
}

func TestConfigurationEqual(t *testing.T) {
	a := NewConfiguration(StringProperty("k1", "v1"), NullProperty("k2"))
	b := NewConfiguration(StringProperty("k1", "v1"), NullProperty("k2"))
	c := NewConfiguration(StringProperty("k1", "v1"), StringProperty("k2", ""))
	d := NewConfiguration(NullProperty("k2"), StringProperty("k1", "v1"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, NewConfiguration().Equal(nil))
}

func TestPropertyMetadataSet(t *testing.T) {
	set := NewPropertyMetadataSet(
		PropertyMetadata{Key: "foo", Secure: true},
		PropertyMetadata{Key: "bar"},
		PropertyMetadata{Key: "foo", Required: true},
	)

	require.Equal(t, 2, set.Len())
	foo, ok := set.Get("foo")
	require.True(t, ok)
	assert.True(t, foo.Required)
	assert.False(t, foo.Secure)
	assert.Equal(t, "foo", set.Items()[0].Key)

	_, ok = set.Get("missing")
	assert.False(t, ok)
}

func TestValidationResult(t *testing.T) {
	assert.True(t, NewValidationResult().IsSuccessful())

	result := NewValidationResult(
		ValidationError{Key: "image", Message: "must not be blank"},
		ValidationError{Key: "memory", Message: "must be a number"},
		ValidationError{Key: "image", Message: "must be a docker image"},
	)
	assert.False(t, result.IsSuccessful())
	assert.Len(t, result.Errors(), 3)
	assert.Equal(t, map[string][]string{
		"image":  {"must not be blank", "must be a docker image"},
		"memory": {"must be a number"},
	}, result.Messages())
}

func TestImageDataURI(t *testing.T) {
	img := &Image{ContentType: "image/svg+xml", Data: "PHN2Zz4="}
	assert.Equal(t, "data:image/svg+xml;base64,PHN2Zz4=", img.DataURI())
}
