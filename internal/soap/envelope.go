package soap

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

const (
	envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	xsiNS      = "http://www.w3.org/2001/XMLSchema-instance"
	xsdNS      = "http://www.w3.org/2001/XMLSchema"

	// headerElement is the eWAY authentication header type
	headerElement = "eWAYHeader"
)

// ErrNoBody is returned when a response envelope carries no soap:Body
var ErrNoBody = errors.New("soap: response has no Body")

// Header holds the credentials attached to every outgoing call
type Header struct {
	CustomerID string
	Username   string
	Password   string
}

// encodeEnvelope renders a document/literal SOAP 1.1 request
func encodeEnvelope(namespace string, header Header, operation string, params *Params) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", envelopeNS)
	env.CreateAttr("xmlns:xsi", xsiNS)
	env.CreateAttr("xmlns:xsd", xsdNS)

	hdr := env.CreateElement("soap:Header").CreateElement(headerElement)
	hdr.CreateAttr("xmlns", namespace)
	hdr.CreateElement("eWAYCustomerID").SetText(header.CustomerID)
	hdr.CreateElement("Username").SetText(header.Username)
	hdr.CreateElement("Password").SetText(header.Password)

	op := env.CreateElement("soap:Body").CreateElement(operation)
	op.CreateAttr("xmlns", namespace)
	if params != nil {
		for _, p := range params.All() {
			el := op.CreateElement(p.Name)
			if p.Nil {
				el.CreateAttr("xsi:nil", "true")
				continue
			}
			el.SetText(p.Value)
		}
	}

	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}
	return b, nil
}

// decodeEnvelope parses a response body. A soap:Fault is returned as *Fault;
// a non-2xx status without a fault is returned as *StatusError.
func decodeEnvelope(operation string, resp *HTTPResponse) (*Response, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(resp.Body); err != nil {
		if !resp.IsSuccess() {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: resp.String()}
		}
		return nil, fmt.Errorf("failed to parse response envelope: %w", err)
	}

	root := doc.Root()
	var body *etree.Element
	if root != nil && root.Tag == "Envelope" {
		body = root.SelectElement("Body")
	}
	if body == nil {
		if !resp.IsSuccess() {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: resp.String()}
		}
		return nil, ErrNoBody
	}

	if f := body.SelectElement("Fault"); f != nil {
		return nil, decodeFault(f)
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: resp.String()}
	}

	var payload *etree.Element
	if children := body.ChildElements(); len(children) > 0 {
		payload = children[0]
	}
	return &Response{Operation: operation, Body: payload}, nil
}
