package icons

import (
	"sort"
	"testing"
)

func TestFA(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Add, "fa fa-plus"},
		{Delete, "fa fa-trash"},
		{"chevron-down", "fa fa-chevron-down"},
		{"made-up-key", "fa fa-made-up-key"}, // formatting is pure, not validating
	}
	for _, tt := range tests {
		if got := FA(tt.key); got != tt.want {
			t.Errorf("FA(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestClasses(t *testing.T) {
	if got, want := Classes(Edit), "fa fa-pencil"; got != want {
		t.Errorf("Classes(Edit) = %q, want %q", got, want)
	}
	got := Classes(Edit, "text-primary", "  ", "pull-right")
	if want := "fa fa-pencil text-primary pull-right"; got != want {
		t.Errorf("Classes with extras = %q, want %q", got, want)
	}
}

func TestValid(t *testing.T) {
	for _, k := range []Key{Add, Apply, Cancel, Close, Delete, Edit, Save, Search, Warning} {
		if !Valid(k) {
			t.Errorf("exported key %q missing from the vocabulary", k)
		}
	}
	if Valid("made-up-key") {
		t.Error("Valid accepted a key outside the vocabulary")
	}
}

func TestAll_SortedCopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("vocabulary is empty")
	}
	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i] < all[j] }) {
		t.Error("All() is not sorted")
	}

	all[0] = "mutated"
	if All()[0] == "mutated" {
		t.Error("mutating the returned slice changed the vocabulary")
	}
}
