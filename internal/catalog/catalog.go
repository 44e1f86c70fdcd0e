// Package catalog holds the trigger names that switch the fixture into debug
// mode. A TriggerSet is immutable once built; its order decides the order of
// matches reported by the classifier.
package catalog

import (
	"fmt"
	"strings"

	"debugfixture/internal/errors"
)

var defaultParams = []string{
	"_debug", "debug", "debug_mode", "XDEBUG_SESSION_START", "XDEBUG_SESSION",
	"debugbar", "profiler", "trace", "verbose", "show_errors", "display_errors",
	"dev_mode", "phpinfo", "error_reporting", "env", "environment", "staging",
	"beta", "internal", "test", "admin",
}

var defaultHeaders = []string{
	"x-debug", "x-forwarded-host", "x-forwarded-for", "x-original-url",
	"x-env", "env", "x-real-ip",
}

// TriggerSet is an ordered pair of query-parameter and header trigger lists.
type TriggerSet struct {
	params  []string
	headers []string
}

// Default returns the built-in catalog.
func Default() *TriggerSet {
	return &TriggerSet{
		params:  append([]string(nil), defaultParams...),
		headers: append([]string(nil), defaultHeaders...),
	}
}

// New builds a TriggerSet after checking that every name is non-empty and
// unique within its list. Header names are compared case-insensitively.
func New(params, headers []string) (*TriggerSet, error) {
	if err := checkNames("param", params, func(s string) string { return s }); err != nil {
		return nil, err
	}
	if err := checkNames("header", headers, strings.ToLower); err != nil {
		return nil, err
	}
	return &TriggerSet{
		params:  append([]string(nil), params...),
		headers: append([]string(nil), headers...),
	}, nil
}

func checkNames(kind string, names []string, key func(string) string) error {
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.CatalogInvalid,
				fmt.Sprintf("%s trigger #%d is empty", kind, i+1), nil)
		}
		k := key(name)
		if first, dup := seen[k]; dup {
			return errors.New(errors.CatalogInvalid,
				fmt.Sprintf("duplicate %s trigger %q", kind, name), nil).
				WithDetails(map[string]int{"first": first + 1, "duplicate": i + 1})
		}
		seen[k] = i
	}
	return nil
}

// Params returns a copy of the query-parameter triggers in catalog order.
func (t *TriggerSet) Params() []string {
	return append([]string(nil), t.params...)
}

// Headers returns a copy of the header triggers in catalog order.
func (t *TriggerSet) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Len returns the total number of triggers.
func (t *TriggerSet) Len() int {
	return len(t.params) + len(t.headers)
}
