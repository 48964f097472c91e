package schema

import (
	"context"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/schemakit/pkg/kind"
	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// walker carries the per-run state shared by every node of one validation.
// Violations go to the collector passed alongside each call.
type walker struct {
	opts  Options
	root  any
	async bool
}

// nodePanic carries a panic raised while evaluating the node at path up to
// the top-level call.
type nodePanic struct {
	path  string
	cause any
}

func guard(path string) {
	if r := recover(); r != nil {
		if _, ok := r.(*nodePanic); ok {
			panic(r)
		}
		panic(&nodePanic{path: path, cause: r})
	}
}

func (w *walker) walk(ctx context.Context, value any, n *Node, path string, parent any, acc *collector) any {
	defer guard(path)

	if n == nil {
		return value
	}

	if absent(value, n) {
		switch {
		case n.Required:
			acc.add(validator.RequiredError(path))
		case n.hasDefault():
			return n.resolveDefault()
		}
		return value
	}

	if n.Sanitize != nil {
		value = sanitizer.Sanitize(value, *n.Sanitize)
	}
	if n.Coerce {
		value = coerce(value, n.Type)
	}

	k := kind.Of(value)
	if len(n.Type) > 0 && !n.Type.Accepts(k) {
		acc.add(validator.TypeError(path, n.Type, k, value))
		if w.opts.AbortEarly {
			return value
		}
	}

	w.custom(ctx, value, n, Context{Path: path, Root: w.root, Parent: parent, Options: w.opts}, acc)

	switch k {
	case kind.String:
		value = w.checkString(value, n, path, acc)
	case kind.Number:
		w.checkNumber(value, n, path, acc)
	case kind.Array:
		value = w.walkArray(ctx, value, n, path, acc)
	case kind.Object:
		value = w.walkObject(ctx, value, n, path, acc)
	case kind.Null, kind.Undefined, kind.Boolean, kind.Date:
	}

	if len(n.Enum) > 0 {
		acc.add(validator.Collect(false, validator.OneOf(path, value, n.Enum))...)
	}
	return value
}

// absent reports whether presence rules apply to value. Null is a regular
// value for nodes whose Type lists kind.Null.
func absent(value any, n *Node) bool {
	if kind.IsMissing(value) {
		return true
	}
	return kind.Of(value) == kind.Null && !(len(n.Type) > 0 && n.Type.Accepts(kind.Null))
}

func (w *walker) custom(ctx context.Context, value any, n *Node, c Context, acc *collector) {
	if w.async && n.ValidateAsync != nil && !acc.full() {
		err := safeCall(func() error { return n.ValidateAsync(ctx, value, c) })
		if err != nil {
			acc.add(validator.CustomError(c.Path, validator.KindAsyncCustom, err.Error(), value))
		}
	}
	if n.Validate != nil && !acc.full() {
		err := safeCall(func() error { return n.Validate(value, c) })
		if err != nil {
			acc.add(validator.CustomError(c.Path, validator.KindCustom, err.Error(), value))
		}
	}
}

// safeCall turns a panic in fn into an error carrying the panic message.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return fn()
}

func (w *walker) checkString(value any, n *Node, path string, acc *collector) any {
	s, _ := kind.Text(value)
	if n.Trim {
		s = strings.TrimSpace(s)
	}
	switch {
	case n.Lowercase:
		s = strings.ToLower(s)
	case n.Uppercase:
		s = strings.ToUpper(s)
	}
	if n.Trim || n.Lowercase || n.Uppercase {
		value = s
	}

	var rules []validator.Rule
	if n.MinLength != nil {
		rules = append(rules, validator.MinLen(path, s, *n.MinLength))
	}
	if n.MaxLength != nil {
		rules = append(rules, validator.MaxLen(path, s, *n.MaxLength))
	}
	if n.Pattern != "" {
		rules = append(rules, validator.MatchesPattern(path, s, n.Pattern))
	}
	if n.Email {
		rules = append(rules, validator.ValidEmail(path, s))
	}
	if n.URL {
		rules = append(rules, validator.ValidURL(path, s))
	}
	if n.Alphanumeric {
		rules = append(rules, validator.ValidAlphanumeric(path, s))
	}
	if n.UUID {
		rules = append(rules, validator.ValidUUID(path, s))
	}
	acc.add(validator.Collect(false, rules...)...)
	return value
}

func (w *walker) checkNumber(value any, n *Node, path string, acc *collector) {
	f, _ := kind.Float(value)

	var rules []validator.Rule
	if n.Min != nil {
		rules = append(rules, validator.Min(path, f, *n.Min))
	}
	if n.Max != nil {
		rules = append(rules, validator.Max(path, f, *n.Max))
	}
	if n.Integer {
		rules = append(rules, validator.Integer(path, f))
	}
	acc.add(validator.Collect(false, rules...)...)
}

func (w *walker) walkArray(ctx context.Context, value any, n *Node, path string, acc *collector) any {
	src, ok := kind.Slice(value)
	if !ok {
		return value
	}

	var rules []validator.Rule
	if n.MinItems != nil {
		rules = append(rules, validator.MinItems(path, src, *n.MinItems))
	}
	if n.MaxItems != nil {
		rules = append(rules, validator.MaxItems(path, src, *n.MaxItems))
	}
	acc.add(validator.Collect(false, rules...)...)

	if n.Items == nil {
		return src
	}
	out := make([]any, len(src))
	for i, item := range src {
		out[i] = w.walk(ctx, item, n.Items, join(path, strconv.Itoa(i)), src, acc)
	}
	return out
}

func (w *walker) walkObject(ctx context.Context, value any, n *Node, path string, acc *collector) any {
	src, ok := kind.Map(value)
	if !ok {
		// Values that cannot be read as key/value pairs fail object constraints.
		if n.Properties != nil || !w.opts.AllowUnknown {
			acc.add(validator.TypeError(path, kind.Types{kind.Object}, reflect.TypeOf(value), nil))
		}
		return value
	}
	out := maps.Clone(src)
	if n.Properties == nil {
		return out
	}

	keys := slices.Sorted(maps.Keys(n.Properties))
	if w.async && w.opts.Concurrency > 1 && len(keys) > 1 {
		w.walkPropertiesConcurrently(ctx, src, out, n, keys, path, acc)
	} else {
		for _, key := range keys {
			set(out, key, w.walk(ctx, lookup(src, key), n.Properties[key], join(path, key), src, acc))
		}
	}

	if w.opts.StripUnknown || !w.opts.AllowUnknown {
		for _, key := range slices.Sorted(maps.Keys(src)) {
			if _, declared := n.Properties[key]; declared {
				continue
			}
			if w.opts.StripUnknown {
				delete(out, key)
				continue
			}
			acc.add(validator.UnknownError(join(path, key), src[key]))
		}
	}
	return out
}

// walkPropertiesConcurrently walks sibling properties with their own
// collectors and merges the results in key order. A panic in any sibling is
// re-raised once all of them have finished.
func (w *walker) walkPropertiesConcurrently(ctx context.Context, src, out map[string]any, n *Node, keys []string, path string, acc *collector) {
	results := make([]any, len(keys))
	accs := make([]*collector, len(keys))
	panics := make([]any, len(keys))

	var g errgroup.Group
	g.SetLimit(w.opts.Concurrency)
	for i, key := range keys {
		accs[i] = newCollector(acc.remaining())
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					panics[i] = r
				}
			}()
			results[i] = w.walk(ctx, lookup(src, key), n.Properties[key], join(path, key), src, accs[i])
			return nil
		})
	}
	_ = g.Wait()

	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
	for i, key := range keys {
		set(out, key, results[i])
		acc.add(accs[i].errs...)
	}
}

func lookup(m map[string]any, key string) any {
	if v, ok := m[key]; ok {
		return v
	}
	return kind.Missing
}

func set(m map[string]any, key string, v any) {
	if kind.IsMissing(v) {
		delete(m, key)
		return
	}
	m[key] = v
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

var dateLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// coerce converts value to the first declared kind it parses as. Values
// that already have an accepted kind, or that fail to parse, are returned
// unchanged.
func coerce(value any, types kind.Types) any {
	k := kind.Of(value)
	if types.Accepts(k) {
		return value
	}

	if k == kind.Number && types.Accepts(kind.String) {
		f, _ := kind.Float(value)
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s, ok := kind.Text(value)
	if !ok {
		return value
	}
	s = strings.TrimSpace(s)
	for _, t := range types {
		switch t {
		case kind.Number:
			if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
				return f
			}
		case kind.Boolean:
			if b, err := strconv.ParseBool(s); err == nil {
				return b
			}
		case kind.Date:
			for _, layout := range dateLayouts {
				if ts, err := time.Parse(layout, s); err == nil {
					return ts
				}
			}
		case kind.Null:
			if s == "" || s == "null" {
				return nil
			}
		case kind.Undefined, kind.String, kind.Array, kind.Object:
		}
	}
	return value
}
