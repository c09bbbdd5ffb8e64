// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema enumerates the CS2 video settings the editor knows how to
// edit and gives each one a typed accessor over a keyvalues document.
//
// Keys absent from this registry are passthrough: the editor shows them
// nowhere and the codec carries them verbatim.
package schema

import (
	"strconv"

	"github.com/MKhiriev/cs2-video-editor/internal/keyvalues"
)

// Kind describes the widget type a field is edited with.
type Kind int

const (
	// Bool renders as a toggle; stored as "0"/"1".
	Bool Kind = iota
	// Int renders as a numeric input with bounds.
	Int
	// Enum renders as a cycling option picker.
	Enum
	// Meta is displayed read-only and never written by the editor.
	Meta
)

// Option is one selectable value of an [Enum] field.
type Option struct {
	// Value is the string written into the config file.
	Value string
	// Label is the human-readable name shown in the form.
	Label string
}

// Field binds one known config key to its display metadata and typed
// accessor. The zero Value fields (Min/Max/Step/Options) only apply to the
// kinds that use them.
type Field struct {
	Key   string
	Label string
	Kind  Kind

	Min  int
	Max  int
	Step int

	Options []Option
}

// Bool reads the field from doc as a boolean. Any value other than "1"
// reads as false; a missing key reads as false.
func (f Field) Bool(doc *keyvalues.Document) bool {
	v, _ := doc.Get(f.Key)
	return v == "1"
}

// SetBool writes a boolean field into doc as "0"/"1".
func (f Field) SetBool(doc *keyvalues.Document, v bool) {
	if v {
		doc.Set(f.Key, "1")
		return
	}
	doc.Set(f.Key, "0")
}

// Int reads the field from doc clamped to [Min, Max]. Missing or
// unparseable values fall back to Min.
func (f Field) Int(doc *keyvalues.Document) int {
	v, ok := doc.Get(f.Key)
	if !ok {
		return f.Min
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return f.Min
	}
	return f.Clamp(n)
}

// SetInt writes an integer field into doc, clamped to the field bounds.
func (f Field) SetInt(doc *keyvalues.Document, v int) {
	doc.Set(f.Key, strconv.Itoa(f.Clamp(v)))
}

// Clamp bounds v to the field's [Min, Max] range.
func (f Field) Clamp(v int) int {
	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	return v
}

// OptionIndex returns the index of the option currently selected in doc,
// falling back to 0 when the stored value matches no option.
func (f Field) OptionIndex(doc *keyvalues.Document) int {
	v, ok := doc.Get(f.Key)
	if !ok {
		return 0
	}
	for i, opt := range f.Options {
		if opt.Value == v {
			return i
		}
	}
	return 0
}

// SetOption writes the option at index i into doc. Out-of-range indexes
// are ignored.
func (f Field) SetOption(doc *keyvalues.Document, i int) {
	if i < 0 || i >= len(f.Options) {
		return
	}
	doc.Set(f.Key, f.Options[i].Value)
}

// Raw reads the field's stored string, with "-" for missing keys. Used for
// meta fields.
func (f Field) Raw(doc *keyvalues.Document) string {
	v, ok := doc.Get(f.Key)
	if !ok {
		return "-"
	}
	return v
}

// Editable reports whether the form may write this field back.
func (f Field) Editable() bool {
	return f.Kind != Meta
}

// ByKey returns the field registered for key.
func ByKey(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Known reports whether key has a registered field.
func Known(key string) bool {
	_, ok := ByKey(key)
	return ok
}

// Fields returns the full registry in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
