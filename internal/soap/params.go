package soap

// Param is a single named argument of a remote operation. A Nil param is
// sent as an empty element carrying xsi:nil="true".
type Param struct {
	Name  string
	Value string
	Nil   bool
}

// Params is an ordered argument list for one remote call. Element order in
// the request body follows insertion order; setting an existing name
// replaces its value in place.
type Params struct {
	list  []Param
	index map[string]int
}

// NewParams returns an empty parameter set
func NewParams() *Params {
	return &Params{index: make(map[string]int)}
}

// Set assigns a string value
func (p *Params) Set(name, value string) *Params {
	return p.put(Param{Name: name, Value: value})
}

// SetNil assigns an explicit nil
func (p *Params) SetNil(name string) *Params {
	return p.put(Param{Name: name, Nil: true})
}

// SetOptional assigns value, or nil when value is nil
func (p *Params) SetOptional(name string, value *string) *Params {
	if value == nil {
		return p.SetNil(name)
	}
	return p.Set(name, *value)
}

func (p *Params) put(param Param) *Params {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[param.Name]; ok {
		p.list[i] = param
		return p
	}
	p.index[param.Name] = len(p.list)
	p.list = append(p.list, param)
	return p
}

// Get returns the param stored under name
func (p *Params) Get(name string) (Param, bool) {
	i, ok := p.index[name]
	if !ok {
		return Param{}, false
	}
	return p.list[i], true
}

// Has reports whether name has been set
func (p *Params) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Len returns the number of params
func (p *Params) Len() int {
	return len(p.list)
}

// Names returns param names in order
func (p *Params) Names() []string {
	names := make([]string, len(p.list))
	for i, param := range p.list {
		names[i] = param.Name
	}
	return names
}

// All returns a copy of the params in order
func (p *Params) All() []Param {
	out := make([]Param, len(p.list))
	copy(out, p.list)
	return out
}
