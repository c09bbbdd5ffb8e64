// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keyvalues implements the line-oriented quoted key/value format used
// by Source 2 video config files (cs2_video.txt):
//
//	"video.cfg"
//	{
//		"setting.defaultres"		"1920"
//		"setting.fullscreen"		"1"
//	}
//
// The codec is deliberately forgiving: any line that is not a single
// "key" "value" pair — the root name line, braces, comments, malformed
// input — is kept verbatim as an opaque entry and written back unchanged.
// Parsing never fails and serializing an unedited document reproduces the
// input byte for byte.
package keyvalues

import (
	"regexp"
	"strings"
)

// EntryKind discriminates parsed pairs from opaque passthrough lines.
type EntryKind int

const (
	// KindPair is a recognized "key" "value" line.
	KindPair EntryKind = iota
	// KindRaw is any line kept verbatim without interpretation.
	KindRaw
)

// Entry is one logical line of a config document.
//
// A pair entry retains the original line bytes until its value is edited,
// so untouched pairs round-trip exactly. An edited or newly added pair is
// re-emitted in the canonical tab-separated form.
type Entry struct {
	Kind  EntryKind
	Key   string
	Value string

	// raw holds the original line bytes. Empty for pairs that were edited
	// or added after parsing.
	raw string
}

var (
	pairLineRe = regexp.MustCompile(`^\s*"([^"]+)"\s+"([^"]*)"\s*$`)
	nameLineRe = regexp.MustCompile(`^\s*"([^"]+)"\s*$`)
)

// Document is an ordered in-memory representation of one config file.
// Entry order is fixed at parse time; edits never reorder or drop entries.
type Document struct {
	name    string
	entries []Entry
	index   map[string]int

	// trailingNewline records whether the source text ended with '\n' so
	// serialization can reproduce it.
	trailingNewline bool

	// crlf records whether the source used CRLF line endings, so edited
	// pairs are re-emitted with the same ending as their neighbors.
	crlf bool
}

// New creates an empty document with the given root block name, laid out
// the way the game itself writes the file.
func New(name string) *Document {
	d := &Document{
		name:  name,
		index: make(map[string]int),
	}
	d.entries = append(d.entries,
		Entry{Kind: KindRaw, raw: `"` + name + `"`},
		Entry{Kind: KindRaw, raw: "{"},
		Entry{Kind: KindRaw, raw: "}"},
	)
	return d
}

// Parse reads text into a [Document]. It never fails: unrecognized lines
// become opaque entries at their original position.
func Parse(text string) *Document {
	d := &Document{index: make(map[string]int)}
	d.trailingNewline = strings.HasSuffix(text, "\n")
	d.crlf = strings.Contains(text, "\r\n")

	body := text
	if d.trailingNewline {
		body = strings.TrimSuffix(text, "\n")
	}
	if body == "" && !d.trailingNewline {
		return d
	}

	for _, line := range strings.Split(body, "\n") {
		if m := pairLineRe.FindStringSubmatch(line); m != nil {
			d.entries = append(d.entries, Entry{Kind: KindPair, Key: m[1], Value: m[2], raw: line})
			// Last occurrence wins for lookups; earlier duplicates stay
			// in the entry list untouched.
			d.index[m[1]] = len(d.entries) - 1
			continue
		}
		if d.name == "" {
			if m := nameLineRe.FindStringSubmatch(line); m != nil {
				d.name = m[1]
			}
		}
		d.entries = append(d.entries, Entry{Kind: KindRaw, raw: line})
	}
	return d
}

// Name returns the root block name (e.g. "video.cfg"), or "" when the
// source had none.
func (d *Document) Name() string {
	return d.name
}

// Len returns the number of logical lines in the document.
func (d *Document) Len() int {
	return len(d.entries)
}

// Get returns the value for key and whether the key is present.
func (d *Document) Get(key string) (string, bool) {
	i, ok := d.index[key]
	if !ok {
		return "", false
	}
	return d.entries[i].Value, true
}

// Has reports whether key is present in the document.
func (d *Document) Has(key string) bool {
	_, ok := d.index[key]
	return ok
}

// Set updates the value for key, or appends a new pair inside the root
// block when the key is absent. Editing an existing pair drops its retained
// original bytes so the new value is written out.
func (d *Document) Set(key, value string) {
	if i, ok := d.index[key]; ok {
		if d.entries[i].Value == value {
			return
		}
		d.entries[i].Value = value
		d.entries[i].raw = ""
		return
	}

	e := Entry{Kind: KindPair, Key: key, Value: value}
	at := d.insertPos()
	d.entries = append(d.entries, Entry{})
	copy(d.entries[at+1:], d.entries[at:])
	d.entries[at] = e

	// Rebuild shifted index positions.
	for k, i := range d.index {
		if i >= at {
			d.index[k] = i + 1
		}
	}
	d.index[key] = at
}

// insertPos returns the position for a new pair: just before the closing
// brace of the root block, or the end when the document has no block
// structure.
func (d *Document) insertPos() int {
	for i := len(d.entries) - 1; i >= 0; i-- {
		e := d.entries[i]
		if e.Kind == KindRaw && strings.TrimSpace(e.raw) == "}" {
			return i
		}
	}
	return len(d.entries)
}

// Keys returns all pair keys in document order. Duplicate keys appear once,
// at their first position.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.index))
	seen := make(map[string]bool, len(d.index))
	for _, e := range d.entries {
		if e.Kind == KindPair && !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Entries returns a copy of the document's logical lines in order.
func (d *Document) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Serialize writes the document back to text. Untouched lines are emitted
// from their original bytes; edited and added pairs use the canonical
// tab-separated form the game writes.
func (d *Document) Serialize() string {
	var b strings.Builder
	for i, e := range d.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		if e.Kind == KindPair && e.raw == "" {
			b.WriteString("\t\"" + e.Key + "\"\t\t\"" + e.Value + "\"")
			// A final line with no newline carries no '\r' either.
			if d.crlf && (i < len(d.entries)-1 || d.trailingNewline) {
				b.WriteByte('\r')
			}
			continue
		}
		b.WriteString(e.raw)
	}
	if d.trailingNewline {
		b.WriteByte('\n')
	}
	return b.String()
}

var anyPairRe = regexp.MustCompile(`"([^"]+)"\s+"([^"]*)"`)

// FindValue scans arbitrary KeyValues text (of any nesting depth) for the
// first occurrence of key and returns its value. Used for cheap lookups in
// files the editor never rewrites, such as Steam's localconfig.vdf.
func FindValue(text, key string) (string, bool) {
	for _, m := range anyPairRe.FindAllStringSubmatch(text, -1) {
		if m[1] == key {
			return m[2], true
		}
	}
	return "", false
}
