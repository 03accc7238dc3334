package soap

import (
	"strings"

	"github.com/beevik/etree"
)

// Response is the decoded body of a successful remote call. Body is the
// <OperationResponse> element and may be nil for operations with no output.
type Response struct {
	Operation string
	Body      *etree.Element
}

// Result returns the <OperationResult> element, falling back to Body when
// the response has no single result wrapper.
func (r *Response) Result() *etree.Element {
	if r == nil || r.Body == nil {
		return nil
	}
	if res := r.Body.SelectElement(r.Operation + "Result"); res != nil {
		return res
	}
	return r.Body
}

// Text returns the text of a direct child of the result element
func (r *Response) Text(name string) string {
	res := r.Result()
	if res == nil {
		return ""
	}
	if el := res.SelectElement(name); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// Fields flattens the leaf children of the result element into a map
func (r *Response) Fields() map[string]string {
	out := make(map[string]string)
	res := r.Result()
	if res == nil {
		return out
	}
	for _, c := range res.ChildElements() {
		if len(c.ChildElements()) == 0 {
			out[c.Tag] = strings.TrimSpace(c.Text())
		}
	}
	return out
}

// Value converts the result element into plain Go values: leaves become
// strings (nil for xsi:nil), elements become maps, and repeated tags become
// slices. It is meant for JSON rendering.
func (r *Response) Value() any {
	res := r.Result()
	if res == nil {
		return nil
	}
	return elementValue(res)
}

func elementValue(el *etree.Element) any {
	children := el.ChildElements()
	if len(children) == 0 {
		if el.SelectAttrValue("nil", "") == "true" {
			return nil
		}
		return strings.TrimSpace(el.Text())
	}

	out := make(map[string]any, len(children))
	for _, c := range children {
		v := elementValue(c)
		existing, seen := out[c.Tag]
		if !seen {
			out[c.Tag] = v
			continue
		}
		if list, ok := existing.([]any); ok {
			out[c.Tag] = append(list, v)
		} else {
			out[c.Tag] = []any{existing, v}
		}
	}
	return out
}
