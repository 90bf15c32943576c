package sdk

import (
	"context"

	"github.com/shamank/adwords-sdk-go/pkg/model"
	"github.com/shamank/adwords-sdk-go/pkg/soap"
	"github.com/shamank/adwords-sdk-go/pkg/wsdl"
)

// Proxies returns one invoker per operation enumerated by d, keyed by the
// operation name. Every invoker calls through client, so all of them share its
// endpoint, timeout and credential header. Errors from the remote service are
// returned unchanged.
func Proxies(d *wsdl.Description, client *soap.Client) map[string]model.Invoker {
	out := make(map[string]model.Invoker, len(d.Operations))
	for _, op := range d.Operations {
		out[op.Name] = func(ctx context.Context, args map[string]any) (*model.Result, error) {
			return client.Call(ctx, op, args)
		}
	}
	return out
}
