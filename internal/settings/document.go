package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// utf8BOM is stripped before parsing; some Windows editors prepend it.
var utf8BOM = []byte("\xef\xbb\xbf")

// KeyPath addresses an entry in a Document. A single key addresses a
// top-level entry; two keys address an entry inside a top-level mapping
// such as "mcpServers".
type KeyPath []string

// String returns the dotted form of the path, for logs and messages.
func (p KeyPath) String() string {
	return strings.Join(p, ".")
}

// Document is an ordered JSON object. Values are kept as raw JSON so that
// entries the installer does not own round-trip unchanged.
type Document struct {
	entries   *orderedmap.OrderedMap[string, json.RawMessage]
	recovered error
}

// New returns an empty document.
func New() *Document {
	return &Document{entries: orderedmap.New[string, json.RawMessage]()}
}

// Parse decodes data as a JSON object, preserving key order.
// It returns ErrMalformedDocument when data is not a JSON object.
func Parse(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty content", ErrMalformedDocument)
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrMalformedDocument)
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedDocument)
	}

	om := orderedmap.New[string, json.RawMessage]()
	if err := om.UnmarshalJSON(trimmed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &Document{entries: om}, nil
}

// Load reads the document stored at path. It never fails: a missing file
// yields an empty document, and an unreadable or malformed file yields an
// empty document whose Recovered method reports why the content was
// discarded. The next Persist replaces the bad file with a valid one.
func Load(path string) *Document {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New()
		}
		doc := New()
		doc.recovered = fmt.Errorf("%w: %w", ErrUnreadable, err)
		return doc
	}

	doc, err := Parse(data)
	if err != nil {
		doc = New()
		doc.recovered = err
	}
	return doc
}

// Recovered returns the error that caused the previous file content to be
// discarded by Load, or nil.
func (d *Document) Recovered() error {
	return d.recovered
}

// Len returns the number of top-level entries.
func (d *Document) Len() int {
	return d.entries.Len()
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.entries.Len())
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Lookup returns the raw value stored at path.
// A nested lookup whose parent is not an object reports not found.
func (d *Document) Lookup(path KeyPath) (json.RawMessage, bool) {
	switch len(path) {
	case 0:
		return nil, false
	case 1:
		return d.entries.Get(path[0])
	}

	parent, ok := d.child(path[0])
	if !ok {
		return nil, false
	}
	return parent.Lookup(path[1:])
}

// Upsert stores value at path, replacing any previous value wholesale.
// Existing keys keep their position; new keys are appended. Missing or
// non-object parent mappings are replaced with a fresh object.
func (d *Document) Upsert(path KeyPath, value any) error {
	if len(path) == 0 {
		return ErrEmptyKeyPath
	}

	raw, err := marshalValue(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if len(path) == 1 {
		d.entries.Set(path[0], raw)
		return nil
	}

	parent, ok := d.child(path[0])
	if !ok {
		parent = New()
	}
	if err := parent.Upsert(path[1:], json.RawMessage(raw)); err != nil {
		return err
	}
	return d.setChild(path[0], parent)
}

// Remove deletes the entry at path and reports whether anything changed.
// Removing an absent entry is a no-op.
func (d *Document) Remove(path KeyPath) bool {
	switch len(path) {
	case 0:
		return false
	case 1:
		_, present := d.entries.Delete(path[0])
		return present
	}

	parent, ok := d.child(path[0])
	if !ok || !parent.Remove(path[1:]) {
		return false
	}
	// setChild only fails on encoding, which a parsed document cannot hit.
	return d.setChild(path[0], parent) == nil
}

// Bytes encodes the document as two-space indented JSON with a trailing
// newline. HTML characters are not escaped so embedded scripts stay legible.
func (d *Document) Bytes() ([]byte, error) {
	compact, err := d.compact()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("indent document: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// compact encodes the document on a single line in key order.
func (d *Document) compact() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := marshalValue(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("encode key %q: %w", pair.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// child parses the top-level entry key as a nested document.
func (d *Document) child(key string) (*Document, bool) {
	raw, ok := d.entries.Get(key)
	if !ok {
		return nil, false
	}
	nested, err := Parse(raw)
	if err != nil {
		return nil, false
	}
	return nested, true
}

// setChild stores a nested document under key.
func (d *Document) setChild(key string, nested *Document) error {
	raw, err := nested.compact()
	if err != nil {
		return err
	}
	d.entries.Set(key, json.RawMessage(raw))
	return nil
}

// marshalValue encodes v compactly without HTML escaping.
func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
