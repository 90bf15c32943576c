package wsdl

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/shamank/adwords-sdk-go/pkg/model"
	"go.uber.org/zap"
)

// ResponseSuffix ends the name of every response wrapper element.
const ResponseSuffix = "Response"

// Unbounded is the maxOccurs value marking a repeated element.
const Unbounded = "unbounded"

// ErrNoOperations is returned when a description declares no operations.
var ErrNoOperations = errors.New("service description declares no operations")

// Operation is one remote operation declared by a service description.
type Operation struct {
	// Name is the operation name as declared in the portType.
	Name string
	// InputElement is the local name of the request wrapper element
	// (document/literal); empty for rpc-style messages.
	InputElement string
	// Params are the request child element (or message part) names, in
	// declaration order.
	Params []string
}

// Description is a parsed service description.
type Description struct {
	// TargetNamespace is the namespace of the service's messages and headers.
	TargetNamespace string
	// Operations are listed in declaration order.
	Operations []Operation
	// Elements are the top-level elements declared by the embedded schemas.
	Elements []*etree.Element
}

// Operation returns the operation with the given name.
func (d *Description) Operation(name string) (Operation, bool) {
	for _, op := range d.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// ParseFile reads and parses the description stored at path.
func ParseFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service description: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse parses a WSDL 1.1 document. Names are matched by XML local name, so
// any namespace prefix convention is accepted.
func Parse(data []byte) (*Description, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse service description: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "definitions" {
		return nil, errors.New("parse service description: root element is not wsdl:definitions")
	}

	d := &Description{TargetNamespace: root.SelectAttrValue("targetNamespace", "")}

	for _, types := range root.SelectElements("types") {
		for _, schema := range types.SelectElements("schema") {
			if d.TargetNamespace == "" {
				d.TargetNamespace = schema.SelectAttrValue("targetNamespace", "")
			}
			d.Elements = append(d.Elements, schema.SelectElements("element")...)
		}
	}

	messages := make(map[string]*etree.Element)
	for _, msg := range root.SelectElements("message") {
		messages[msg.SelectAttrValue("name", "")] = msg
	}

	seen := make(map[string]bool)
	addOp := func(opEl *etree.Element) {
		name := opEl.SelectAttrValue("name", "")
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		op := Operation{Name: name}
		if in := opEl.SelectElement("input"); in != nil {
			if msg := messages[localName(in.SelectAttrValue("message", ""))]; msg != nil {
				d.describeInput(&op, msg)
			}
		}
		d.Operations = append(d.Operations, op)
	}

	for _, pt := range root.SelectElements("portType") {
		for _, opEl := range pt.SelectElements("operation") {
			addOp(opEl)
		}
	}
	// Descriptions without a portType still list operations in the binding.
	if len(d.Operations) == 0 {
		for _, b := range root.SelectElements("binding") {
			for _, opEl := range b.SelectElements("operation") {
				addOp(opEl)
			}
		}
	}

	if len(d.Operations) == 0 {
		return nil, ErrNoOperations
	}
	return d, nil
}

// describeInput fills the request element and parameter order of op from its
// input message.
func (d *Description) describeInput(op *Operation, msg *etree.Element) {
	for _, part := range msg.SelectElements("part") {
		if el := part.SelectAttrValue("element", ""); el != "" {
			op.InputElement = localName(el)
			if wrapper := d.element(op.InputElement); wrapper != nil {
				op.Params = childElementNames(wrapper)
			}
			return
		}
		op.Params = append(op.Params, part.SelectAttrValue("name", ""))
	}
}

// element returns the top-level schema element with the given name.
func (d *Description) element(name string) *etree.Element {
	for _, el := range d.Elements {
		if el.SelectAttrValue("name", "") == name {
			return el
		}
	}
	return nil
}

// Classify returns the operations whose response element declares an
// unbounded inner element. Operations absent from the result are Singular.
//
// For every top-level element named <Operation>Response the walk is
// element > complexType > sequence|all|choice > first element particle,
// reading that particle's maxOccurs. Elements missing any step of the walk (opaque or
// primitive responses) are skipped.
func Classify(d *Description) map[string]model.Cardinality {
	plurals := make(map[string]model.Cardinality)
	for _, el := range d.Elements {
		name := el.SelectAttrValue("name", "")
		if !strings.HasSuffix(name, ResponseSuffix) {
			continue
		}
		op := strings.TrimSuffix(name, ResponseSuffix)
		if op == "" {
			continue
		}
		inner := firstParticle(el)
		if inner == nil {
			zap.L().Debug("response element has no nested content, treating as singular", zap.String("element", name))
			continue
		}
		if inner.SelectAttrValue("maxOccurs", "") == Unbounded {
			plurals[op] = model.Plural
		}
	}
	return plurals
}

// firstParticle returns the first element or wildcard particle of the
// model group of el. Annotations and other non-particle children are ignored.
func firstParticle(el *etree.Element) *etree.Element {
	group := firstGroup(el)
	if group == nil {
		return nil
	}
	for _, c := range group.ChildElements() {
		switch c.Tag {
		case "element", "any":
			return c
		}
	}
	return nil
}

func childElementNames(el *etree.Element) []string {
	first := firstGroup(el)
	if first == nil {
		return nil
	}
	var names []string
	for _, c := range first.SelectElements("element") {
		if n := c.SelectAttrValue("name", ""); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func firstGroup(el *etree.Element) *etree.Element {
	ct := el.SelectElement("complexType")
	if ct == nil {
		return nil
	}
	for _, group := range ct.ChildElements() {
		switch group.Tag {
		case "sequence", "all", "choice":
			return group
		}
	}
	return nil
}

func localName(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}
