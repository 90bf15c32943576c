package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shamank/adwords-sdk-go/pkg/model"
	"github.com/shamank/adwords-sdk-go/pkg/wsdl"
	"go.uber.org/zap"
)

const (
	// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
	EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	// InstanceNamespace is the XML Schema instance namespace (xsi:nil).
	InstanceNamespace = "http://www.w3.org/2001/XMLSchema-instance"
	// ContentType is sent with every request.
	ContentType = "text/xml; charset=utf-8"
)

// HeaderFields lists the credential header element names in the order they
// are written to every request.
var HeaderFields = []string{"email", "password", "useragent", "developerToken", "applicationToken", "clientEmail"}

// Client calls the operations of one service endpoint. Every request made
// through it carries the same credential header block.
type Client struct {
	// Endpoint is the live service URL.
	Endpoint string
	// Namespace is the service target namespace used for headers and bodies.
	Namespace string
	// Credentials are attached to every call.
	Credentials model.Credentials
	// HTTP is the HTTP client to use. Nil means http.DefaultClient.
	HTTP *http.Client
	// Timeout bounds one call. Zero means no deadline beyond ctx.
	Timeout time.Duration
}

// NewClient creates a client for the given endpoint and namespace that sends
// creds in the header of every call.
func NewClient(endpoint, namespace string, creds model.Credentials) *Client {
	return &Client{
		Endpoint:    endpoint,
		Namespace:   namespace,
		Credentials: creds,
	}
}

// headerValues returns the credential header values keyed by element name.
func headerValues(creds model.Credentials) map[string]string {
	return map[string]string{
		"email":            creds.Email,
		"password":         creds.Password,
		"useragent":        creds.UserAgent,
		"developerToken":   creds.DeveloperToken,
		"applicationToken": creds.ApplicationToken,
		"clientEmail":      creds.ClientEmail,
	}
}

// Call invokes op with args and decodes the response. Arguments named in
// op.Params are written first, in declaration order; any others follow in
// sorted key order.
//
// A SOAP fault in the response is returned as a *Fault. Transport failures and
// non-2xx responses without a fault are returned as errors. Nothing is retried.
func (c *Client) Call(ctx context.Context, op wsdl.Operation, args map[string]any) (*model.Result, error) {
	payload, err := c.encode(op, args)
	if err != nil {
		return nil, err
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("SOAPAction", `""`)
	if c.Credentials.UserAgent != "" {
		req.Header.Set("User-Agent", c.Credentials.UserAgent)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	zap.L().Debug("SOAP call", zap.String("endpoint", c.Endpoint), zap.String("operation", op.Name))
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			zap.L().Error("failed to close SOAP response", zap.Error(cerr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read SOAP response: %w", err)
	}
	return decodeResponse(resp.StatusCode, body)
}

// encode renders the request envelope for op.
func (c *Client) encode(op wsdl.Operation, args map[string]any) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	env := doc.CreateElement("soapenv:Envelope")
	env.CreateAttr("xmlns:soapenv", EnvelopeNamespace)
	env.CreateAttr("xmlns:xsi", InstanceNamespace)

	header := env.CreateElement("soapenv:Header")
	values := headerValues(c.Credentials)
	for _, name := range HeaderFields {
		el := header.CreateElement(name)
		el.CreateAttr("xmlns", c.Namespace)
		el.SetText(values[name])
	}

	name := op.InputElement
	if name == "" {
		name = op.Name
	}
	body := env.CreateElement("soapenv:Body")
	wrapper := body.CreateElement(name)
	wrapper.CreateAttr("xmlns", c.Namespace)

	for _, key := range orderedKeys(op.Params, args) {
		if err := encodeValue(wrapper, key, args[key]); err != nil {
			return nil, fmt.Errorf("encode argument %q of %s: %w", key, op.Name, err)
		}
	}

	return doc.WriteToBytes()
}

func orderedKeys(params []string, args map[string]any) []string {
	keys := make([]string, 0, len(args))
	used := make(map[string]bool, len(params))
	for _, p := range params {
		if _, ok := args[p]; ok && !used[p] {
			keys = append(keys, p)
			used[p] = true
		}
	}
	for _, k := range slices.Sorted(maps.Keys(args)) {
		if !used[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// encodeValue appends v under parent as one or more <name> elements.
// Slices repeat the element; maps become nested elements with sorted keys.
func encodeValue(parent *etree.Element, name string, v any) error {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		v = nil
	}

	switch val := v.(type) {
	case nil:
		el := parent.CreateElement(name)
		el.CreateAttr("xsi:nil", "true")
		return nil
	case string:
		parent.CreateElement(name).SetText(val)
		return nil
	case bool:
		parent.CreateElement(name).SetText(strconv.FormatBool(val))
		return nil
	case []byte:
		parent.CreateElement(name).SetText(string(val))
		return nil
	case fmt.Stringer:
		parent.CreateElement(name).SetText(val.String())
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parent.CreateElement(name).SetText(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parent.CreateElement(name).SetText(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		parent.CreateElement(name).SetText(strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := encodeValue(parent, name, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		el := parent.CreateElement(name)
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		for _, k := range keys {
			if err := encodeValue(el, k, rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()); err != nil {
				return err
			}
		}
	case reflect.Pointer:
		if rv.IsNil() {
			return encodeValue(parent, name, nil)
		}
		return encodeValue(parent, name, rv.Elem().Interface())
	default:
		return fmt.Errorf("unsupported argument type %T", v)
	}
	return nil
}
