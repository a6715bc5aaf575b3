// Package openapi normalizes an OpenAPI 3.x document into the canonical
// intermediate representation consumed by the parameter planner and the
// SDK template adapter: resolving $ref pointers, folding allOf/oneOf/anyOf/
// not combinators into flat type descriptors, and extracting the operation
// and header sets a generated client needs.
package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Kind discriminates the dynamically-typed tree that backs a RawDocument.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	// KindSchemaMetadata marks a node that the nested-type walker (§4.5)
	// has replaced in place with a resolved SchemaMetadata. It never
	// appears in a freshly decoded document — only after Walk runs.
	KindSchemaMetadata
)

// RawValue is a single node in the decoded OpenAPI document tree. Object
// nodes preserve the source's key insertion order, which is required for
// the deterministic iteration spec'd across the whole pipeline (identical
// input byte-for-byte, modulo key order, must still produce byte-identical
// generated output only when key order itself is held constant — see
// Keys/Fields below).
type RawValue struct {
	Kind   Kind
	Bool   bool
	Number json.Number
	Str    string
	Arr    []RawValue

	// Object storage: Keys gives insertion order, Fields gives lookup.
	Keys   []string
	Fields map[string]RawValue

	// Meta holds the resolved metadata when Kind == KindSchemaMetadata.
	Meta *SchemaMetadata
}

// IsNull reports whether v is the JSON null value or the zero RawValue.
func (v RawValue) IsNull() bool { return v.Kind == KindNull }

// IsObject reports whether v is a JSON object.
func (v RawValue) IsObject() bool { return v.Kind == KindObject }

// Get returns the value at key and whether it was present. Get on a
// non-object or absent key returns the zero RawValue and false.
func (v RawValue) Get(key string) (RawValue, bool) {
	if v.Kind != KindObject {
		return RawValue{}, false
	}
	val, ok := v.Fields[key]
	return val, ok
}

// Has reports whether an object node carries the given key.
func (v RawValue) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// String returns the string value, or "" if v is not a string.
func (v RawValue) String() string {
	if v.Kind != KindString {
		return ""
	}
	return v.Str
}

// StringOr returns v's string value, or def if v is not a string.
func (v RawValue) StringOr(def string) string {
	if v.Kind != KindString {
		return def
	}
	return v.Str
}

// BoolOr returns v's bool value, or def if v is not a bool.
func (v RawValue) BoolOr(def bool) bool {
	if v.Kind != KindBool {
		return def
	}
	return v.Bool
}

// StringSlice returns the elements of an array of strings, skipping any
// non-string entries. A non-array node yields nil.
func (v RawValue) StringSlice() []string {
	if v.Kind != KindArray {
		return nil
	}
	out := make([]string, 0, len(v.Arr))
	for _, item := range v.Arr {
		if item.Kind == KindString {
			out = append(out, item.Str)
		}
	}
	return out
}

// set replaces the value at key in an object node in place, preserving the
// key's original position, or appends the key if it is new. Reached only
// through Set; the nested-type walker writes its replacement nodes into
// Fields/Arr directly.
func (v *RawValue) set(key string, newVal RawValue) {
	if v.Kind != KindObject {
		return
	}
	if v.Fields == nil {
		v.Fields = make(map[string]RawValue)
	}
	if _, existed := v.Fields[key]; !existed {
		v.Keys = append(v.Keys, key)
	}
	v.Fields[key] = newVal
}

// Set is the exported form of set, for callers outside this package that
// need to annotate a decoded tree (e.g. injecting x-codeSamples into a
// copy of the source document) while preserving key order.
func (v *RawValue) Set(key string, newVal RawValue) { v.set(key, newVal) }

// MarshalJSON serializes v back to JSON, preserving object key order —
// encoding/json's own struct marshaling can't do this since Go map
// iteration order is randomized, which is why RawValue models objects as
// a Keys/Fields pair in the first place.
func (v RawValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		if v.Bool {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case KindNumber:
		return []byte(v.Number.String()), nil
	case KindString:
		return json.Marshal(v.Str)
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.Arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range v.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			b, err := v.Fields[k].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case KindSchemaMetadata:
		// Only reachable if a caller re-marshals an already-walked
		// subtree; degrade to the resolved type descriptor rather than
		// fail outright.
		return json.Marshal(v.Meta.Type)
	default:
		return []byte("null"), nil
	}
}

// Any returns a plain Go value (map[string]any / []any / string / float64 /
// bool / nil) for the subtree rooted at v, for use by callers outside this
// package. Object key order is not kept in the returned maps, and a
// KindSchemaMetadata node becomes nil; MarshalJSON is the order-preserving
// path.
func (v RawValue) Any() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindNumber:
		f, _ := v.Number.Float64()
		return f
	case KindString:
		return v.Str
	case KindArray:
		out := make([]any, len(v.Arr))
		for i, item := range v.Arr {
			out[i] = item.Any()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Keys))
		for _, k := range v.Keys {
			out[k] = v.Fields[k].Any()
		}
		return out
	default:
		return nil
	}
}

// ParseRawValue decodes JSON bytes into an order-preserving RawValue tree.
//
// encoding/json's Unmarshal into map[string]any discards key order, which
// would make iteration over paths/operations/properties nondeterministic
// relative to the source document — unacceptable for a generator whose
// whole contract is reproducible output. Token-level decoding via
// json.Decoder is the only way to recover that order from the standard
// library; no library in the example pack offers order-preserving JSON
// decoding (the pack's YAML-adjacent libraries, sigs.k8s.io/yaml and
// gopkg.in/yaml.v3, convert through the same order-losing map[string]any
// path), so this one piece is built on the standard library by necessity.
func ParseRawValue(data []byte) (RawValue, error) {
	dec := json.NewDecoder(bytesReader(data))
	dec.UseNumber()
	val, err := decodeValue(dec)
	if err != nil {
		return RawValue{}, err
	}
	// Ensure trailing garbage is rejected, matching encoding/json.Unmarshal.
	if _, err := dec.Token(); err != io.EOF {
		return RawValue{}, fmt.Errorf("unexpected trailing data after JSON document")
	}
	return val, nil
}

func bytesReader(data []byte) io.Reader {
	return &sliceReader{data: data}
}

// sliceReader is a minimal io.Reader over a byte slice.
type sliceReader struct {
	data []byte
	pos  int
}

func (r *sliceReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func decodeValue(dec *json.Decoder) (RawValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return RawValue{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (RawValue, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return RawValue{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return RawValue{Kind: KindString, Str: t}, nil
	case json.Number:
		return RawValue{Kind: KindNumber, Number: t}, nil
	case bool:
		return RawValue{Kind: KindBool, Bool: t}, nil
	case nil:
		return RawValue{Kind: KindNull}, nil
	default:
		return RawValue{}, fmt.Errorf("unexpected token %T", tok)
	}
}

func decodeObject(dec *json.Decoder) (RawValue, error) {
	obj := RawValue{Kind: KindObject, Fields: make(map[string]RawValue)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return RawValue{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return RawValue{}, fmt.Errorf("expected object key, got %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return RawValue{}, err
		}
		if _, existed := obj.Fields[key]; !existed {
			obj.Keys = append(obj.Keys, key)
		}
		obj.Fields[key] = val
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return RawValue{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (RawValue, error) {
	arr := RawValue{Kind: KindArray}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return RawValue{}, err
		}
		arr.Arr = append(arr.Arr, val)
	}
	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return RawValue{}, err
	}
	return arr, nil
}
