package sdk

import (
	"context"

	"github.com/shamank/adwords-sdk-go/pkg/model"
)

// ExpectsList wraps an invoker of a plural operation so that its result is
// always a sequence (Kind == Many):
//
//   - a sequence passes through unchanged;
//   - a single object carrying an "id" becomes a one-element sequence;
//   - anything else (no value, a leaf, an object without id) becomes empty.
//
// Errors pass through and response headers are kept.
func ExpectsList(invoke model.Invoker) model.Invoker {
	return func(ctx context.Context, args map[string]any) (*model.Result, error) {
		res, err := invoke(ctx, args)
		if err != nil {
			return nil, err
		}
		return asList(res), nil
	}
}

func asList(res *model.Result) *model.Result {
	if res == nil {
		return &model.Result{Kind: model.Many, Items: []any{}}
	}
	if res.Kind == model.Many {
		return res
	}

	out := &model.Result{Kind: model.Many, Items: []any{}, Headers: res.Headers}
	if obj, ok := res.Value().(model.Object); ok {
		if _, hasID := obj.ID(); hasID {
			out.Items = append(out.Items, obj)
		}
	}
	return out
}
