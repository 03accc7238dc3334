package soap

import (
	"fmt"
	"net/url"

	"github.com/beevik/etree"
)

// Definition is the subset of a WSDL document a Session needs
type Definition struct {
	TargetNamespace string
	Location        string
	Operations      []string
}

// HasOperation reports whether the service declares op. A definition that
// lists no operations accepts any name.
func (d *Definition) HasOperation(op string) bool {
	if len(d.Operations) == 0 {
		return true
	}
	for _, o := range d.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// ParseWSDL extracts the target namespace, endpoint address and operation
// names. wsdlURL is used to derive the endpoint when the document has no
// soap:address.
func ParseWSDL(data []byte, wsdlURL string) (*Definition, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse WSDL: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "definitions" {
		return nil, fmt.Errorf("failed to parse WSDL: root element is not wsdl:definitions")
	}

	def := &Definition{TargetNamespace: root.SelectAttrValue("targetNamespace", "")}
	if def.TargetNamespace == "" {
		return nil, fmt.Errorf("failed to parse WSDL: missing targetNamespace")
	}

	for _, addr := range root.FindElements("./service/port/address") {
		if loc := addr.SelectAttrValue("location", ""); loc != "" {
			def.Location = loc
			break
		}
	}
	if def.Location == "" {
		u, err := url.Parse(wsdlURL)
		if err != nil {
			return nil, fmt.Errorf("failed to derive endpoint from %q: %w", wsdlURL, err)
		}
		u.RawQuery = ""
		def.Location = u.String()
	}

	seen := make(map[string]bool)
	for _, op := range root.FindElements("./portType/operation") {
		name := op.SelectAttrValue("name", "")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		def.Operations = append(def.Operations, name)
	}

	return def, nil
}
