package models

import (
	"encoding/json"
	"testing"
)

func TestFormatCategories(t *testing.T) {
	formatted := FormatCategories([]Category{{ID: 1, Type: "Science"}, {ID: 4, Type: "History"}})

	out, err := json.Marshal(formatted)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(out); got != `{"1":"Science","4":"History"}` {
		t.Fatalf("got %s", got)
	}

	if empty := FormatCategories(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil map, got %v", empty)
	}
}
