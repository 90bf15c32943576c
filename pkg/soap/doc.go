// Package soap provides a lightweight SOAP 1.1 document/literal client that
// invokes operations described by a parsed WSDL without generated stubs.
//
// # Calls
//
//	d, _ := wsdl.ParseFile(path)
//	op, _ := d.Operation("getCampaign")
//
//	c := soap.NewClient(endpoint, d.TargetNamespace, creds)
//	c.Timeout = time.Minute
//	res, err := c.Call(ctx, op, map[string]any{"id": 42})
//
// Every request carries the credential header block: email, password,
// useragent, developerToken, applicationToken and clientEmail, each sent even
// when empty. Arguments named in the operation's declared parameters are
// written first, in declaration order; the rest follow sorted by key.
//
// Supported argument values are strings, booleans, numbers, fmt.Stringer
// values (decimal.Decimal for example), slices (one element per item),
// string-keyed maps (nested elements) and pointers to any of these. Nil values
// and nil pointers are sent as xsi:nil.
//
// # Results
//
// The shape of a response is decided while decoding it. A response wrapper
// with no return element is model.Empty, one return element is model.Single
// and more are model.Many. A lone xsi:nil return is Empty. Structured values
// decode into model.Object and leaves into strings. Response header values such
// as requestId are kept in Result.Headers.
//
// # Errors
//
// A SOAP fault is returned as a *Fault:
//
//	var fault *soap.Fault
//	if errors.As(err, &fault) {
//		log.Printf("rejected: %s", fault.String)
//	}
//
// Transport failures and non-2xx responses without a fault are plain errors.
// Nothing is retried.
package soap
