// Package model defines the data structures shared by the SDK layers:
// credentials, service descriptors, operation bindings and the tagged result
// type produced by the SOAP transport.
package model

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Credentials holds the authentication values sent in the SOAP header of every
// call. A value is immutable for the lifetime of one binding generation; use
// sdk.Client.WithCredentials to get a client bound to different values.
type Credentials struct {
	Email            string `json:"email" yaml:"email"`
	Password         string `json:"password" yaml:"password"`
	DeveloperToken   string `json:"developer_token" yaml:"developer_token"`
	ApplicationToken string `json:"application_token" yaml:"application_token"`
	UserAgent        string `json:"user_agent" yaml:"user_agent"`
	// ClientEmail is the delegated client identifier: the sub-account whose
	// data the call acts on.
	ClientEmail string `json:"client_email" yaml:"client_email"`
}

// ServiceDescriptor identifies one remote service.
type ServiceDescriptor struct {
	// Name is the full service name, e.g. "CampaignService".
	Name string
	// Version is the API version, e.g. "v11".
	Version string
	// BaseURL is the API server, e.g. "https://adwords.google.com".
	BaseURL string
}

// Cardinality tells whether an operation's response is a collection.
type Cardinality int

const (
	// Singular operations return whatever the remote service returns.
	Singular Cardinality = iota
	// Plural operations always return a sequence.
	Plural
)

// String implements fmt.Stringer.
func (c Cardinality) String() string {
	if c == Plural {
		return "plural"
	}
	return "singular"
}

// Kind is the shape of a decoded response.
type Kind int

const (
	// Empty means the response carried no return value.
	Empty Kind = iota
	// Single means the response carried exactly one return value.
	Single
	// Many means the response carried a sequence of return values.
	Many
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Many:
		return "many"
	default:
		return "empty"
	}
}

// Result is the decoded return value of a remote operation. The transport
// decides Kind at deserialization time from the number of return elements.
//
// Items hold either an Object (structured value), a string (leaf value) or nil
// (xsi:nil). For Kind == Single, Items has exactly one entry; for Empty, none.
type Result struct {
	Kind  Kind
	Items []any
	// Headers are the SOAP response header values (requestId, units, ...).
	Headers map[string]string
}

// Value returns the single item of a Single result, or nil otherwise.
func (r *Result) Value() any {
	if r == nil || r.Kind != Single || len(r.Items) == 0 {
		return nil
	}
	return r.Items[0]
}

// List returns the items of the result. It never returns nil.
func (r *Result) List() []any {
	if r == nil || r.Items == nil {
		return []any{}
	}
	return r.Items
}

// Invoker performs one remote operation call.
type Invoker func(ctx context.Context, args map[string]any) (*Result, error)

// OperationBinding ties an operation name to its cardinality and invoker.
type OperationBinding struct {
	Name        string
	Service     string
	Cardinality Cardinality
	Invoke      Invoker
}

// Object is a structured value decoded from a SOAP response element. Child
// elements map to strings, nested Objects, or []any when repeated.
type Object map[string]any

// ID returns the identifying "id" attribute of the object, if present.
func (o Object) ID() (string, bool) {
	v, ok := o["id"]
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

// String returns the leaf value stored under key, or "" when absent or not a leaf.
func (o Object) String(key string) string {
	s, _ := o[key].(string)
	return s
}

// Int parses the leaf value stored under key as a base-10 integer.
func (o Object) Int(key string) (int64, error) {
	s, ok := o[key].(string)
	if !ok {
		return 0, fmt.Errorf("field %q is not a leaf value", key)
	}
	return strconv.ParseInt(s, 10, 64)
}

// Micros reads an amount expressed in micros (millionths of the account
// currency, as used by budgets and bids) and returns it in currency units.
func (o Object) Micros(key string) (decimal.Decimal, error) {
	n, err := o.Int(key)
	if err != nil {
		return decimal.Zero, err
	}
	return MicrosToUnits(n), nil
}

// MicrosToUnits converts a micro amount into currency units.
func MicrosToUnits(micros int64) decimal.Decimal {
	return decimal.New(micros, -6)
}

// UnitsToMicros converts currency units into a micro amount, truncating any
// precision below one micro.
func UnitsToMicros(units decimal.Decimal) int64 {
	return units.Shift(6).IntPart()
}
