package widget

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// DefaultClassPrefix is the marker prepended to every derived CSS class
// token when no prefix is configured.
const DefaultClassPrefix = "s-"

// Config represents the optional facet.yaml configuration.
type Config struct {
	// ClassPrefix is prepended to each derived CSS class token.
	// Empty means DefaultClassPrefix.
	ClassPrefix string `yaml:"classPrefix,omitempty"`
	// RootNamespaces lists package prefixes that derived CSS class lists
	// are shortened against. The first matching prefix wins.
	RootNamespaces []string `yaml:"rootNamespaces,omitempty"`
}

// LoadConfig reads facet.yaml from dir if present. A missing file yields
// an empty Config (all defaults), not an error.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "facet.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read facet.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse facet.yaml: %w", err)
	}

	return &cfg, nil
}

// Registry owns the process-lifetime widget state: the monotonically
// increasing counter that makes unique names unique, and the CSS class
// configuration. Its lifetime is expected to equal the application's;
// the counter is never reset, so unique names are never reused.
//
// The counter is atomic; everything else is read-only after NewRegistry.
type Registry struct {
	classPrefix    string
	rootNamespaces []string // normalized

	counter atomic.Uint64
}

// NewRegistry creates a registry from cfg. A nil cfg means all defaults.
func NewRegistry(cfg *Config) *Registry {
	if cfg == nil {
		cfg = &Config{}
	}
	prefix := cfg.ClassPrefix
	if prefix == "" {
		prefix = DefaultClassPrefix
	}
	r := &Registry{classPrefix: prefix}
	for _, ns := range cfg.RootNamespaces {
		if ns = normalizeName(ns); ns != "" {
			r.rootNamespaces = append(r.rootNamespaces, ns)
		}
	}
	return r
}

// nextSuffix returns the next counter value, starting at 0.
func (r *Registry) nextSuffix() uint64 {
	return r.counter.Add(1) - 1
}

// normalizeName replaces the package path separators of a fully-qualified
// Go type name with '-' so the result is usable as a storage key, an event
// namespace token, and a CSS class token.
func normalizeName(s string) string {
	return strings.NewReplacer("/", "-", ".", "-").Replace(s)
}

// indirect unwraps pointer types to the underlying named type.
func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// qualifiedTypeName returns the fully-qualified Go name of t, pointer
// indirected, e.g. "github.com/go-facet/facet/pkg/widget.Base". Used in
// error messages, where the unnormalized form reads better.
func qualifiedTypeName(t reflect.Type) string {
	t = indirect(t)
	if t == nil {
		return ""
	}
	if pp := t.PkgPath(); pp != "" {
		return pp + "." + t.Name()
	}
	return t.Name()
}

// WidgetName derives the widget name for a concrete widget type: the
// fully-qualified type name with every separator normalized to '-'.
// The result keys the element's auxiliary-data entry for that widget type
// and namespaces its teardown observer.
func (r *Registry) WidgetName(t reflect.Type) string {
	t = indirect(t)
	if t == nil {
		return ""
	}
	return normalizeName(qualifiedTypeName(t))
}

// WidgetNameOf derives the widget name from a value's concrete type.
func (r *Registry) WidgetNameOf(v any) string {
	return r.WidgetName(reflect.TypeOf(v))
}

// CSSClass derives the space-separated CSS class list for a concrete
// widget type. It is a pure function of the type and the registry
// configuration. The candidates are, in order: the normalized
// fully-qualified name, the suffix after the first matching root
// namespace (at most one), and the short type name. Duplicates are
// dropped preserving first occurrence, and each surviving candidate is
// prefixed with the configured class prefix.
func (r *Registry) CSSClass(t reflect.Type) string {
	t = indirect(t)
	if t == nil {
		return ""
	}
	full := r.WidgetName(t)

	candidates := []string{full}
	for _, ns := range r.rootNamespaces {
		if strings.HasPrefix(full, ns+"-") {
			candidates = append(candidates, full[len(ns)+1:])
			break
		}
	}
	candidates = append(candidates, t.Name())

	classes := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" && !slices.Contains(classes, c) {
			classes = append(classes, c)
		}
	}
	for i := range classes {
		classes[i] = r.classPrefix + classes[i]
	}
	return strings.Join(classes, " ")
}

// CSSClassOf derives the CSS class list from a value's concrete type.
func (r *Registry) CSSClassOf(v any) string {
	return r.CSSClass(reflect.TypeOf(v))
}
