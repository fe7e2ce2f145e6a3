// FILE: lixenwraith/flexop/option.go
package flexop

import (
	"strconv"
	"strings"
)

// Kind selects how an option's argument text is interpreted and where it is
// stored.
type Kind int

const (
	KindTitle Kind = iota
	KindFlag
	KindInt
	KindUint
	KindFloat
	KindString
	KindKeyword
	KindHandler
	KindVecInt
	KindVecUint
	KindVecFloat
	KindVecString
)

var kindNames = [...]string{
	KindTitle:     "title",
	KindFlag:      "flag",
	KindInt:       "int",
	KindUint:      "uint",
	KindFloat:     "float",
	KindString:    "string",
	KindKeyword:   "keyword",
	KindHandler:   "handler",
	KindVecInt:    "vec-int",
	KindVecUint:   "vec-uint",
	KindVecFloat:  "vec-float",
	KindVecString: "vec-string",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsVec reports whether k is one of the vector kinds.
func (k Kind) IsVec() bool {
	return k >= KindVecInt && k <= KindVecString
}

// elem returns the element kind stored by a vector kind.
func (k Kind) elem() Kind {
	switch k {
	case KindVecInt:
		return KindInt
	case KindVecUint:
		return KindUint
	case KindVecFloat:
		return KindFloat
	case KindVecString:
		return KindString
	}
	return k
}

// accessor names the Get/Set method family for a kind.
func (k Kind) accessor() string {
	switch k {
	case KindFlag:
		return "Flag"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindKeyword:
		return "Keyword"
	case KindHandler:
		return "Handler"
	case KindVecInt:
		return "VecInt"
	case KindVecUint:
		return "VecUint"
	case KindVecFloat:
		return "VecFloat"
	case KindVecString:
		return "VecString"
	}
	return ""
}

// placeholder is the argument hint shown in help output.
func (k Kind) placeholder() string {
	switch k {
	case KindInt, KindUint, KindVecInt, KindVecUint:
		return "<integer>"
	case KindFloat:
		return "<real>"
	case KindVecFloat:
		return "<float>"
	case KindString, KindHandler, KindVecString:
		return "<string>"
	case KindKeyword:
		return "<keyword>"
	}
	return ""
}

// binding is the sealed set of storage capabilities an option can hold.
// Each variant owns a typed reference to host storage.
type binding interface {
	kind() Kind
}

type (
	titleBinding   struct{ category string }
	flagBinding    struct{ p *bool }
	intBinding     struct{ p *int64 }
	uintBinding    struct{ p *uint64 }
	floatBinding   struct{ p *float64 }
	stringBinding  struct{ p *string }
	keywordBinding struct{ p *int }
	handlerBinding struct {
		h      Handler
		append bool
	}
	vecBinding struct {
		k Kind
		v *Vec
	}
)

func (titleBinding) kind() Kind   { return KindTitle }
func (flagBinding) kind() Kind    { return KindFlag }
func (intBinding) kind() Kind     { return KindInt }
func (uintBinding) kind() Kind    { return KindUint }
func (floatBinding) kind() Kind   { return KindFloat }
func (stringBinding) kind() Kind  { return KindString }
func (keywordBinding) kind() Kind { return KindKeyword }
func (handlerBinding) kind() Kind { return KindHandler }
func (b vecBinding) kind() Kind   { return b.k }

// option is the descriptor of one registered option or section title.
type option struct {
	name     string
	help     string
	bind     binding
	keywords []string // valid values, KindKeyword only
	history  []string // supplied arguments, KindHandler only
	used     bool
	generic  bool // built-in help and option_file
	pos      int
}

func (o *option) kind() Kind {
	return o.bind.kind()
}

// label is the text ShowUsed prints for an option.
func (o *option) label() string {
	if o.help == "" {
		return o.name
	}
	return o.help
}

// value returns the current typed value behind the binding.
func (o *option) value() any {
	switch b := o.bind.(type) {
	case flagBinding:
		return *b.p
	case intBinding:
		return *b.p
	case uintBinding:
		return *b.p
	case floatBinding:
		return *b.p
	case stringBinding:
		return *b.p
	case keywordBinding:
		if *b.p < 0 || *b.p >= len(o.keywords) {
			return ""
		}
		return o.keywords[*b.p]
	case handlerBinding:
		return append([]string(nil), o.history...)
	case vecBinding:
		if !b.v.Initialized() {
			return nil
		}
		switch b.k {
		case KindVecInt:
			return b.v.Ints()
		case KindVecUint:
			return b.v.Uints()
		case KindVecFloat:
			return b.v.Floats()
		case KindVecString:
			return b.v.Strings()
		}
	}
	return nil
}

// text renders the current value for help and diagnostic output.
func (o *option) text() string {
	switch b := o.bind.(type) {
	case flagBinding:
		if *b.p {
			return "True"
		}
		return "False"
	case intBinding:
		return strconv.FormatInt(*b.p, 10)
	case uintBinding:
		return strconv.FormatUint(*b.p, 10)
	case floatBinding:
		return formatFloat(*b.p)
	case stringBinding:
		if *b.p == "" {
			return "none"
		}
		return *b.p
	case keywordBinding:
		if *b.p < 0 || *b.p >= len(o.keywords) {
			return "none"
		}
		return o.keywords[*b.p]
	case handlerBinding:
		return strings.Join(o.history, " ")
	case vecBinding:
		return b.v.String()
	case titleBinding:
		return b.category
	}
	return ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
