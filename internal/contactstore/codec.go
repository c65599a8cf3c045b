package contactstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mrz1836/rolodex/internal/contact"
)

// recordFields are the stored field names of contact.Record. Any other
// field on a stored element belongs to another client and is carried over.
var recordFields = []string{ //nolint:gochecknoglobals // fixed field table
	"id", "name", "description", "photo", "isFavourite",
	"lnAddress", "onchainAddress", "nip05", "nostrNpub",
}

// document is the decoded slot. Every element keeps the bytes it was
// stored with; only replaced or appended elements are encoded again, so
// records rolodex does not touch are written back verbatim.
type document struct {
	raw     []json.RawMessage
	records contact.Collection
}

// decodeDocument parses the stored blob. An empty or null blob is an
// empty collection.
func decodeDocument(blob string) (*document, error) {
	trimmed := strings.TrimSpace(blob)
	if trimmed == "" || trimmed == "null" {
		return &document{records: contact.Collection{}}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, err
	}

	records := make(contact.Collection, len(raw))
	for i, elem := range raw {
		if err := json.Unmarshal(elem, &records[i]); err != nil {
			return nil, fmt.Errorf("contact at position %d: %w", i, err)
		}
	}
	return &document{raw: raw, records: records}, nil
}

// replace swaps the element at idx for rec, keeping the element's unknown
// fields.
func (d *document) replace(idx int, rec contact.Record) error {
	elem, err := mergeRecord(d.raw[idx], rec)
	if err != nil {
		return err
	}
	d.raw[idx] = elem
	d.records[idx] = rec
	return nil
}

// add appends rec as the last element.
func (d *document) add(rec contact.Record) error {
	elem, err := marshalCompact(rec)
	if err != nil {
		return err
	}
	d.raw = append(d.raw, elem)
	d.records = append(d.records, rec)
	return nil
}

// encode joins the elements into the stored array.
func (d *document) encode() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, elem := range d.raw {
		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(elem)
	}
	b.WriteByte(']')
	return b.String()
}

// field is one member of a stored JSON object.
type field struct {
	name  string
	value json.RawMessage
}

// mergeRecord encodes rec and appends, in stored order, the members of
// original that are not contact.Record fields.
func mergeRecord(original json.RawMessage, rec contact.Record) (json.RawMessage, error) {
	encoded, err := marshalCompact(rec)
	if err != nil {
		return nil, err
	}
	extra, err := unknownFields(original)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return encoded, nil
	}

	var buf bytes.Buffer
	buf.Write(encoded[:len(encoded)-1])
	for _, f := range extra {
		name, err := marshalCompact(f.name)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unknownFields lists the members of a stored object that are not
// contact.Record fields. A non-object element has none.
func unknownFields(elem json.RawMessage) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(elem))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil
	}

	var out []field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if !isRecordField(name) {
			out = append(out, field{name: name, value: value})
		}
	}
	return out, nil
}

// isRecordField matches the way encoding/json maps keys onto struct
// fields: case-insensitively.
func isRecordField(name string) bool {
	for _, f := range recordFields {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// marshalCompact encodes v without HTML escaping and without the trailing
// newline json.Encoder adds.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
