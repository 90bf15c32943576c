// Package soaptest provides an in-process fake of the AdWords SOAP API for
// tests: it serves generated service descriptions, records the credential
// headers of every call, and answers operations with canned envelopes.
package soaptest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/beevik/etree"
)

// Namespace is the target namespace used by generated descriptions.
const Namespace = "https://adwords.google.com/api/adwords/v11"

// Request is one SOAP call received by the server.
type Request struct {
	Service   string
	Operation string
	// Header holds the credential header values by element name.
	Header map[string]string
	// Body is the request wrapper element.
	Body *etree.Element
}

// Responder produces the HTTP status and envelope answering a call.
type Responder func(r *Request) (status int, envelope string)

// Server is an httptest-backed fake API server. Services are served under
// /api/adwords/<version>/<Name>; GET with ?wsdl returns the description.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	wsdl       map[string][]byte
	fetches    map[string]int
	agents     map[string][]string
	responders map[string]Responder
	requests   []*Request
}

// NewServer starts a fake server with no services.
func NewServer() *Server {
	s := &Server{
		wsdl:       make(map[string][]byte),
		fetches:    make(map[string]int),
		agents:     make(map[string][]string),
		responders: make(map[string]Responder),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// AddService registers the description served for the named service.
func (s *Server) AddService(name string, description []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wsdl[name] = description
}

// Handle registers the responder of an operation. Operations without a
// responder answer with an empty response wrapper.
func (s *Server) Handle(operation string, r Responder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responders[operation] = r
}

// Fetches returns how many times the description of service was downloaded.
func (s *Server) Fetches(service string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches[service]
}

// FetchUserAgents returns the User-Agent header of every download of the
// description of service, in order.
func (s *Server) FetchUserAgents(service string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.agents[service]...)
}

// Requests returns every call received so far.
func (s *Server) Requests() []*Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Request(nil), s.requests...)
}

// Last returns the most recent call or nil if none.
func (s *Server) Last() *Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	service := r.URL.Path[strings.LastIndexByte(r.URL.Path, '/')+1:]

	if r.Method == http.MethodGet && r.URL.Query().Has("wsdl") {
		s.mu.Lock()
		desc, ok := s.wsdl[service]
		if ok {
			s.fetches[service]++
			s.agents[service] = append(s.agents[service], r.UserAgent())
		}
		s.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write(desc)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseRequest(service, r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, Fault("soapenv:Client", err.Error()))
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	responder := s.responders[req.Operation]
	s.mu.Unlock()

	status, envelope := http.StatusOK, Response(req.Operation)
	if responder != nil {
		status, envelope = responder(req)
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, envelope)
}

func parseRequest(service string, body io.Reader) (*Request, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, err
	}
	env := doc.Root()
	if env == nil || env.Tag != "Envelope" {
		return nil, fmt.Errorf("request is not a SOAP envelope")
	}
	req := &Request{Service: service, Header: make(map[string]string)}
	if h := env.SelectElement("Header"); h != nil {
		for _, el := range h.ChildElements() {
			req.Header[el.Tag] = el.Text()
		}
	}
	b := env.SelectElement("Body")
	if b == nil || len(b.ChildElements()) == 0 {
		return nil, fmt.Errorf("request has no body")
	}
	req.Body = b.ChildElements()[0]
	req.Operation = req.Body.Tag
	return req, nil
}

// OK wraps a Response envelope in a Responder answering with HTTP 200.
func OK(envelope string) Responder {
	return func(*Request) (int, string) { return http.StatusOK, envelope }
}

// Response renders a response envelope for operation whose wrapper holds one
// <operation>Return element per entry of returns. Each entry is the raw inner
// XML of a return element.
func Response(operation string, returns ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	b.WriteString(`<soapenv:Header><responseTime xmlns="` + Namespace + `">12</responseTime><requestId xmlns="` + Namespace + `">req-1</requestId></soapenv:Header>`)
	b.WriteString(`<soapenv:Body><` + operation + `Response xmlns="` + Namespace + `">`)
	for _, r := range returns {
		b.WriteString(`<` + operation + `Return>` + r + `</` + operation + `Return>`)
	}
	b.WriteString(`</` + operation + `Response></soapenv:Body></soapenv:Envelope>`)
	return b.String()
}

// Fault renders a SOAP fault envelope.
func Fault(code, message string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"><soapenv:Body>` +
		`<soapenv:Fault><faultcode>` + code + `</faultcode><faultstring>` + message + `</faultstring>` +
		`<detail><code xmlns="` + Namespace + `">7</code></detail></soapenv:Fault>` +
		`</soapenv:Body></soapenv:Envelope>`
}

// Op describes one operation of a generated service description.
type Op struct {
	Name   string
	Params []string
	// Plural marks the response element as unbounded.
	Plural bool
}

// WSDL renders a document/literal service description declaring ops.
func WSDL(service string, ops ...Op) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<wsdl:definitions targetNamespace="` + Namespace + `" xmlns:impl="` + Namespace + `" xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/" xmlns:xsd="http://www.w3.org/2001/XMLSchema">`)
	b.WriteString(`<wsdl:types><schema elementFormDefault="qualified" targetNamespace="` + Namespace + `" xmlns="http://www.w3.org/2001/XMLSchema">`)
	for _, op := range ops {
		b.WriteString(`<element name="` + op.Name + `"><complexType><sequence>`)
		for _, p := range op.Params {
			b.WriteString(`<element name="` + p + `" type="xsd:string"/>`)
		}
		b.WriteString(`</sequence></complexType></element>`)
		maxOccurs := ""
		if op.Plural {
			maxOccurs = ` maxOccurs="unbounded"`
		}
		b.WriteString(`<element name="` + op.Name + `Response"><complexType><sequence>`)
		b.WriteString(`<element name="` + op.Name + `Return" type="xsd:anyType"` + maxOccurs + `/>`)
		b.WriteString(`</sequence></complexType></element>`)
	}
	b.WriteString(`</schema></wsdl:types>`)
	for _, op := range ops {
		b.WriteString(`<wsdl:message name="` + op.Name + `Request"><wsdl:part element="impl:` + op.Name + `" name="parameters"/></wsdl:message>`)
		b.WriteString(`<wsdl:message name="` + op.Name + `Response"><wsdl:part element="impl:` + op.Name + `Response" name="parameters"/></wsdl:message>`)
	}
	b.WriteString(`<wsdl:portType name="` + strings.TrimSuffix(service, "Service") + `Interface">`)
	for _, op := range ops {
		b.WriteString(`<wsdl:operation name="` + op.Name + `"><wsdl:input message="impl:` + op.Name + `Request"/><wsdl:output message="impl:` + op.Name + `Response"/></wsdl:operation>`)
	}
	b.WriteString(`</wsdl:portType></wsdl:definitions>`)
	return []byte(b.String())
}
