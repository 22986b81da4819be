package param

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/sjson"
)

// Opt is an optional request field. The zero value is absent; Some marks the
// field present, including when the wrapped value is empty. Presence, not the
// value, decides whether the field is serialized.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns an Opt holding v, marked present.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// None returns an absent Opt. Equivalent to the zero value, provided for
// readability at call sites.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Present reports whether the field was set.
func (o Opt[T]) Present() bool {
	return o.set
}

// Get returns the wrapped value and whether it was set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the wrapped value when present, fallback otherwise.
func (o Opt[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Text renders the wrapped value with fmt.Sprint for use as a multipart text
// part. The second return mirrors Get.
func Text[T any](o Opt[T]) (string, bool) {
	if !o.set {
		return "", false
	}
	return fmt.Sprint(o.value), true
}

// Object accumulates a JSON object one field at a time. Keys appear in the
// output in the order they were set. Errors from marshaling are sticky and
// surface from MarshalJSON, so construction stays chainable.
type Object struct {
	buf []byte
	err error
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{buf: []byte(`{}`)}
}

// Set emits key with the JSON encoding of value. Setting the same key again
// overwrites the earlier value in place.
func (o *Object) Set(key string, value any) *Object {
	if o.err != nil {
		return o
	}
	data, err := json.Marshal(value)
	if err != nil {
		o.err = err
		return o
	}
	o.buf, o.err = sjson.SetRawBytes(o.buf, key, data)
	return o
}

// SetRaw emits key with raw, which must already be valid JSON.
func (o *Object) SetRaw(key string, raw []byte) *Object {
	if o.err != nil {
		return o
	}
	o.buf, o.err = sjson.SetRawBytes(o.buf, key, raw)
	return o
}

// SetOpt emits key only when v is present.
func SetOpt[T any](o *Object, key string, v Opt[T]) *Object {
	if value, ok := v.Get(); ok {
		o.Set(key, value)
	}
	return o
}

// MarshalJSON returns the accumulated object, or the first error encountered
// while building it.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.buf, nil
}
