package openapi

import "testing"

func TestParseRawValuePreservesKeyOrder(t *testing.T) {
	doc := []byte(`{"z": 1, "a": 2, "m": 3}`)
	val, err := ParseRawValue(doc)
	if err != nil {
		t.Fatalf("ParseRawValue: %v", err)
	}
	want := []string{"z", "a", "m"}
	if len(val.Keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(val.Keys))
	}
	for i, k := range want {
		if val.Keys[i] != k {
			t.Errorf("key %d: expected %q, got %q", i, k, val.Keys[i])
		}
	}
}

func TestParseRawValueRejectsTrailingData(t *testing.T) {
	if _, err := ParseRawValue([]byte(`{"a": 1} garbage`)); err == nil {
		t.Fatal("expected an error for trailing data, got nil")
	}
}

func TestParseRawValueNested(t *testing.T) {
	doc := []byte(`{"items": [1, "two", true, null], "nested": {"x": 1}}`)
	val, err := ParseRawValue(doc)
	if err != nil {
		t.Fatalf("ParseRawValue: %v", err)
	}

	items, ok := val.Get("items")
	if !ok || items.Kind != KindArray || len(items.Arr) != 4 {
		t.Fatalf("expected a 4-element array, got %+v", items)
	}
	if items.Arr[1].String() != "two" {
		t.Errorf("expected items[1] == \"two\", got %q", items.Arr[1].String())
	}
	if !items.Arr[3].IsNull() {
		t.Errorf("expected items[3] to be null")
	}

	nested, ok := val.Get("nested")
	if !ok || !nested.IsObject() {
		t.Fatalf("expected nested object, got %+v", nested)
	}
}

func TestRawValueSetPreservesOrderOnUpdate(t *testing.T) {
	val, err := ParseRawValue([]byte(`{"a": 1, "b": 2}`))
	if err != nil {
		t.Fatalf("ParseRawValue: %v", err)
	}
	val.Set("a", RawValue{Kind: KindNumber, Number: "9"})
	if len(val.Keys) != 2 {
		t.Fatalf("expected key count unchanged on update, got %d", len(val.Keys))
	}
	if val.Keys[0] != "a" || val.Keys[1] != "b" {
		t.Errorf("expected order [a b], got %v", val.Keys)
	}
}

func TestRawValueSetAppendsNewKey(t *testing.T) {
	val, err := ParseRawValue([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatalf("ParseRawValue: %v", err)
	}
	val.Set("x-codeSamples", RawValue{Kind: KindArray})
	if len(val.Keys) != 2 || val.Keys[1] != "x-codeSamples" {
		t.Errorf("expected x-codeSamples appended last, got %v", val.Keys)
	}
}

func TestRawValueMarshalJSONRoundTripsOrder(t *testing.T) {
	src := []byte(`{"z":1,"a":{"inner":true},"m":[1,2,3]}`)
	val, err := ParseRawValue(src)
	if err != nil {
		t.Fatalf("ParseRawValue: %v", err)
	}
	out, err := val.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"z":1,"a":{"inner":true},"m":[1,2,3]}`
	if string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestRawValueAny(t *testing.T) {
	val, err := ParseRawValue([]byte(`{"a":[1,"x",false,null]}`))
	if err != nil {
		t.Fatalf("ParseRawValue: %v", err)
	}
	plain := val.Any()
	m, ok := plain.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", plain)
	}
	arr, ok := m["a"].([]any)
	if !ok || len(arr) != 4 {
		t.Fatalf("expected 4-element slice, got %#v", m["a"])
	}
}
