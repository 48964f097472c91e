package schema

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/async"
	"github.com/dmitrymomot/schemakit/pkg/kind"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// Validate walks value against node and returns the processed value with
// every violation found. A nil node accepts any value.
func Validate(value any, node *Node, opts ...Option) Result {
	return run(context.Background(), value, node, newOptions(opts...), false)
}

// ValidateAsync is Validate with ValidateAsync hooks invoked. It returns
// once every hook has returned; ctx is passed to the hooks.
func ValidateAsync(ctx context.Context, value any, node *Node, opts ...Option) Result {
	return run(ctx, value, node, newOptions(opts...), true)
}

// ValidateFuture starts ValidateAsync in its own goroutine. A ctx that is
// already done completes the Future with ctx.Err(). To bound the wait use
// Future.AwaitWithTimeout; the validation itself runs to completion.
func ValidateFuture(ctx context.Context, value any, node *Node, opts ...Option) *async.Future[Result] {
	o := newOptions(opts...)
	return async.Go(ctx, func(ctx context.Context) (Result, error) {
		return run(ctx, value, node, o, true), nil
	})
}

func run(ctx context.Context, value any, node *Node, opts Options, isAsync bool) (res Result) {
	limit := -1
	if opts.AbortEarly {
		limit = 1
	}
	acc := newCollector(limit)
	w := &walker{opts: opts, root: value, async: isAsync}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		p, ok := r.(*nodePanic)
		if !ok {
			p = &nodePanic{cause: r}
		}
		opts.Logger.WarnContext(ctx, "schema evaluation failed",
			logger.Path(p.path),
			slog.Any("cause", p.cause),
		)
		res = newResult(settle(value), validator.ValidationErrors{validator.ExceptionError(p.path, p.cause)})
	}()

	out := w.walk(ctx, value, node, "", nil, acc)
	res = newResult(settle(out), acc.errs)

	opts.Logger.DebugContext(ctx, "validation finished",
		slog.Bool("valid", res.Valid),
		logger.ErrorCount(len(res.Errors)),
	)
	return res
}

// settle maps the undefined marker to nil for callers.
func settle(v any) any {
	if kind.IsMissing(v) {
		return nil
	}
	return v
}

// Validator binds a node and options for repeated use.
type Validator struct {
	node *Node
	opts Options
}

// NewValidator returns a Validator for node.
func NewValidator(node *Node, opts ...Option) *Validator {
	return &Validator{node: node, opts: newOptions(opts...)}
}

// Node returns the bound node.
func (v *Validator) Node() *Node {
	return v.node
}

// Validate runs Validate with the bound options, then overrides.
func (v *Validator) Validate(value any, overrides ...Option) Result {
	return run(context.Background(), value, v.node, v.opts.apply(overrides...), false)
}

// ValidateAsync runs ValidateAsync with the bound options, then overrides.
func (v *Validator) ValidateAsync(ctx context.Context, value any, overrides ...Option) Result {
	return run(ctx, value, v.node, v.opts.apply(overrides...), true)
}
