// Package classify decides whether a request carries debug triggers.
package classify

import (
	"debugfixture/internal/catalog"
)

// Result lists the triggers matched by one request, in catalog order.
type Result struct {
	Params  []string // "key=value"
	Headers []string // "name: value"
}

// IsDebug reports whether any trigger matched.
func (r Result) IsDebug() bool {
	return len(r.Params) > 0 || len(r.Headers) > 0
}

// Classifier matches requests against a fixed trigger catalog. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	params  []string
	headers []string
}

// New creates a Classifier over ts. A nil ts selects the built-in catalog.
func New(ts *catalog.TriggerSet) *Classifier {
	if ts == nil {
		ts = catalog.Default()
	}
	return &Classifier{
		params:  ts.Params(),
		headers: ts.Headers(),
	}
}

// Classify returns the triggers present in req. Missing keys are not errors;
// an empty value still counts as a match.
func (c *Classifier) Classify(req Request) Result {
	var res Result
	for _, name := range c.params {
		if v, ok := req.Query[name]; ok {
			res.Params = append(res.Params, name+"="+v)
		}
	}
	for _, name := range c.headers {
		if v, ok := req.Headers.Get(name); ok {
			res.Headers = append(res.Headers, name+": "+v)
		}
	}
	return res
}
