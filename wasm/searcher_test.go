//go:build wasm

package main

import (
	"encoding/json"
	"syscall/js"
	"testing"
)

func decodeResult(t *testing.T, v interface{}) resultJSON {
	t.Helper()
	s, ok := v.(string)
	if !ok {
		t.Fatalf("Expected JSON string, got %#v", v)
	}
	var result resultJSON
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	return result
}

func TestSearcherLifecycle(t *testing.T) {
	created := newSearcher(js.Value{}, []js.Value{js.ValueOf("is"), js.ValueOf("w")})

	createdMap, ok := created.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected map result, got %T", created)
	}
	if errMsg, hasError := createdMap["error"]; hasError {
		t.Fatalf("Failed to create searcher: %v", errMsg)
	}
	handle := createdMap["handle"].(int)

	result := decodeResult(t, search(js.Value{}, []js.Value{js.ValueOf(handle), js.ValueOf("This is test data.\n")}))
	if len(result.Offsets) != 1 || result.Offsets[0] != 5 {
		t.Errorf("Expected offsets [5], got %v", result.Offsets)
	}
	if result.Matches[0].Column != 6 {
		t.Errorf("Expected column 6, got %d", result.Matches[0].Column)
	}

	closeSearcher(js.Value{}, []js.Value{js.ValueOf(handle)})

	closed := search(js.Value{}, []js.Value{js.ValueOf(handle), js.ValueOf("is")})
	if m, ok := closed.(map[string]interface{}); !ok || m["error"] != "invalid searcher handle" {
		t.Errorf("Expected invalid handle error, got %#v", closed)
	}
}

func TestFind(t *testing.T) {
	result := decodeResult(t, find(js.Value{}, []js.Value{js.ValueOf("This is test data.\n"), js.ValueOf("TEST"), js.ValueOf("i")}))
	if len(result.Offsets) != 1 || result.Offsets[0] != 8 {
		t.Errorf("Expected offsets [8], got %v", result.Offsets)
	}

	result = decodeResult(t, find(js.Value{}, []js.Value{js.ValueOf("This is test data.\n"), js.ValueOf("Aloy")}))
	if len(result.Offsets) != 0 {
		t.Errorf("Expected no offsets, got %v", result.Offsets)
	}
}

func TestFindInvalidOption(t *testing.T) {
	got := find(js.Value{}, []js.Value{js.ValueOf("x"), js.ValueOf("x"), js.ValueOf("vi")})
	m, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected error map, got %#v", got)
	}
	if m["error"] == nil {
		t.Error("Expected an error for invalid flags")
	}
}

func TestNewSearcherEmptyQuery(t *testing.T) {
	got := newSearcher(js.Value{}, []js.Value{js.ValueOf("")})
	m, ok := got.(map[string]interface{})
	if !ok || m["error"] == nil {
		t.Errorf("Expected error for empty query, got %#v", got)
	}
}
