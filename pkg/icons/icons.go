// Package icons provides stateless string helpers over a fixed vocabulary
// of icon keys.
//
// The vocabulary is embedded at build time from vocabulary.yaml. All
// helpers are pure formatting; Valid is advisory, and formatting an
// unknown key still produces the conventional class string.
package icons

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Key names an icon in the vocabulary, e.g. "pencil" or "plus-circle".
type Key string

// Commonly used keys, exported so call sites get compile-time spelling
// checks for the icons the framework itself reaches for.
const (
	Add      Key = "plus"
	Apply    Key = "check"
	Cancel   Key = "ban"
	Close    Key = "times"
	Delete   Key = "trash"
	Download Key = "download"
	Edit     Key = "pencil"
	Excel    Key = "file-excel"
	Help     Key = "question-circle"
	Pdf      Key = "file-pdf"
	Print    Key = "print"
	Refresh  Key = "refresh"
	Save     Key = "save"
	Search   Key = "search"
	Undo     Key = "undo"
	Upload   Key = "upload"
	Warning  Key = "exclamation-triangle"
)

//go:embed vocabulary.yaml
var vocabularyYAML []byte

var vocabulary []Key

func init() {
	var doc struct {
		Icons []Key `yaml:"icons"`
	}
	if err := yaml.Unmarshal(vocabularyYAML, &doc); err != nil {
		panic(fmt.Sprintf("icons: embedded vocabulary is invalid: %v", err))
	}
	vocabulary = doc.Icons
	slices.Sort(vocabulary)
	vocabulary = slices.Compact(vocabulary)
}

// FA formats k as a font-awesome class pair: "fa fa-<key>".
func FA(k Key) string {
	return "fa fa-" + string(k)
}

// Classes joins FA(k) with any extra class tokens, dropping empties.
func Classes(k Key, extra ...string) string {
	parts := []string{FA(k)}
	for _, e := range extra {
		if e = strings.TrimSpace(e); e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, " ")
}

// Valid reports whether k is part of the embedded vocabulary.
func Valid(k Key) bool {
	_, ok := slices.BinarySearch(vocabulary, k)
	return ok
}

// All returns the vocabulary keys in sorted order. The returned slice is
// a copy.
func All() []Key {
	return slices.Clone(vocabulary)
}
