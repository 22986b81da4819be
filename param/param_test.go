package param

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptPresence(t *testing.T) {
	tests := []struct {
		name    string
		opt     Opt[string]
		present bool
		value   string
	}{
		{name: "zero value is absent", opt: Opt[string]{}, present: false},
		{name: "none is absent", opt: None[string](), present: false},
		{name: "some is present", opt: Some("hello"), present: true, value: "hello"},
		{name: "some empty string is still present", opt: Some(""), present: true, value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.present, tt.opt.Present())
			got, ok := tt.opt.Get()
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestOptEmptyCollectionIsPresent(t *testing.T) {
	o := Some([]string{})
	assert.True(t, o.Present())

	got, ok := o.Get()
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestOptOr(t *testing.T) {
	assert.Equal(t, 42, Some(42).Or(7))
	assert.Equal(t, 7, None[int]().Or(7))
	assert.Equal(t, 0, Some(0).Or(7), "present zero beats the fallback")
}

func TestOptText(t *testing.T) {
	got, ok := Text(Some(0.5))
	require.True(t, ok)
	assert.Equal(t, "0.5", got)

	got, ok = Text(Some(true))
	require.True(t, ok)
	assert.Equal(t, "true", got)

	_, ok = Text(None[int]())
	assert.False(t, ok)
}

func TestObjectKeyOrder(t *testing.T) {
	obj := NewObject().
		Set("model", "gpt-x").
		Set("temperature", 0.5).
		Set("stream", true)

	data, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"model":"gpt-x","temperature":0.5,"stream":true}`, string(data), "keys keep insertion order")
}

func TestObjectSkipsAbsentOptionals(t *testing.T) {
	obj := NewObject().Set("input", "hello")
	SetOpt(obj, "model", None[string]())
	SetOpt(obj, "user", Some("u-1"))

	data, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"input":"hello","user":"u-1"}`, string(data))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "model", "absent fields must not appear, not even as null")
}

func TestObjectLastWriteWins(t *testing.T) {
	obj := NewObject().Set("n", 1).Set("n", 3)

	data, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"n":3}`, string(data))
}

func TestObjectPresentEmptyValues(t *testing.T) {
	obj := NewObject()
	SetOpt(obj, "stop", Some([]string{}))
	SetOpt(obj, "user", Some(""))

	data, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"stop":[],"user":""}`, string(data))
}

func TestObjectSetRaw(t *testing.T) {
	obj := NewObject().SetRaw("metadata", []byte(`{"env":"test"}`))

	data, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"metadata":{"env":"test"}}`, string(data))
}

func TestObjectStickyError(t *testing.T) {
	obj := NewObject().Set("bad", make(chan int)).Set("good", "value")

	_, err := obj.MarshalJSON()
	assert.Error(t, err)
}
