package soap

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Fault is a SOAP 1.1 fault returned by the remote service
type Fault struct {
	Code   string `json:"faultcode"`
	String string `json:"faultstring"`
	Actor  string `json:"faultactor,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (f *Fault) Error() string {
	if f.Code != "" {
		return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
	}
	return "soap fault: " + f.String
}

// StatusError is a non-2xx HTTP response that carried no SOAP fault
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("soap: unexpected HTTP status %d", e.StatusCode)
}

func decodeFault(el *etree.Element) *Fault {
	f := &Fault{}
	if c := el.SelectElement("faultcode"); c != nil {
		f.Code = strings.TrimSpace(c.Text())
	}
	if s := el.SelectElement("faultstring"); s != nil {
		f.String = strings.TrimSpace(s.Text())
	}
	if a := el.SelectElement("faultactor"); a != nil {
		f.Actor = strings.TrimSpace(a.Text())
	}
	if d := el.SelectElement("detail"); d != nil {
		f.Detail = innerXML(d)
	}
	return f
}

// innerXML serialises the children of el, or its text when it has none
func innerXML(el *etree.Element) string {
	children := el.ChildElements()
	if len(children) == 0 {
		return strings.TrimSpace(el.Text())
	}
	var sb strings.Builder
	for _, c := range children {
		doc := etree.NewDocument()
		doc.SetRoot(c.Copy())
		s, err := doc.WriteToString()
		if err != nil {
			continue
		}
		sb.WriteString(s)
	}
	return sb.String()
}
