package soap

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"github.com/shamank/adwords-sdk-go/pkg/model"
)

// Fault is a SOAP fault returned by the remote service. It is surfaced as-is:
// authentication, quota and validation failures all arrive as faults.
type Fault struct {
	Code   string
	String string
	Actor  string
	// Detail holds the decoded <detail> element, if any.
	Detail model.Object
	// StatusCode is the HTTP status of the response carrying the fault.
	StatusCode int
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}

// decodeResponse turns a SOAP response into a Result. The shape is decided by
// the number of child elements in the response wrapper: none is Empty, one is
// Single, more is Many. A lone xsi:nil return is Empty.
func decodeResponse(status int, body []byte) (*model.Result, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		if status < 200 || status > 299 {
			return nil, fmt.Errorf("soap: HTTP status %d", status)
		}
		return nil, fmt.Errorf("parse SOAP response: %w", err)
	}

	env := doc.Root()
	if env == nil || env.Tag != "Envelope" {
		return nil, fmt.Errorf("soap: HTTP status %d: response is not a SOAP envelope", status)
	}
	bodyEl := env.SelectElement("Body")
	if bodyEl == nil {
		return nil, errors.New("soap: envelope has no body")
	}

	var wrapper *etree.Element
	if children := bodyEl.ChildElements(); len(children) > 0 {
		wrapper = children[0]
	}

	if wrapper != nil && wrapper.Tag == "Fault" {
		f := &Fault{
			Code:       childText(wrapper, "faultcode"),
			String:     childText(wrapper, "faultstring"),
			Actor:      childText(wrapper, "faultactor"),
			StatusCode: status,
		}
		if detail := wrapper.SelectElement("detail"); detail != nil {
			if obj, ok := decodeElement(detail).(model.Object); ok {
				f.Detail = obj
			}
		}
		return nil, f
	}

	if status < 200 || status > 299 {
		return nil, fmt.Errorf("soap: HTTP status %d", status)
	}

	res := &model.Result{Kind: model.Empty, Headers: make(map[string]string)}
	if header := env.SelectElement("Header"); header != nil {
		for _, h := range header.ChildElements() {
			collectHeader(res.Headers, h)
		}
	}

	if wrapper == nil {
		return res, nil
	}

	returns := wrapper.ChildElements()
	switch len(returns) {
	case 0:
	case 1:
		if v := decodeElement(returns[0]); v != nil {
			res.Kind = model.Single
			res.Items = []any{v}
		}
	default:
		res.Kind = model.Many
		res.Items = make([]any, 0, len(returns))
		for _, r := range returns {
			res.Items = append(res.Items, decodeElement(r))
		}
	}
	return res, nil
}

// decodeElement converts el to nil (xsi:nil), a string (leaf) or an Object.
// Repeated child names collect into []any.
func decodeElement(el *etree.Element) any {
	if el.SelectAttrValue("nil", "") == "true" {
		return nil
	}
	children := el.ChildElements()
	if len(children) == 0 {
		return el.Text()
	}
	obj := make(model.Object, len(children))
	for _, c := range children {
		v := decodeElement(c)
		existing, ok := obj[c.Tag]
		if !ok {
			obj[c.Tag] = v
			continue
		}
		if list, isList := existing.([]any); isList {
			obj[c.Tag] = append(list, v)
		} else {
			obj[c.Tag] = []any{existing, v}
		}
	}
	return obj
}

// collectHeader flattens response header elements into leaf values.
func collectHeader(out map[string]string, el *etree.Element) {
	children := el.ChildElements()
	if len(children) == 0 {
		out[el.Tag] = el.Text()
		return
	}
	for _, c := range children {
		collectHeader(out, c)
	}
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return c.Text()
	}
	return ""
}
