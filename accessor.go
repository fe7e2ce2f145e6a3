// FILE: lixenwraith/flexop/accessor.go
package flexop

import (
	"fmt"
	"strings"
)

// resolve finds name for accessor op ("Get" or "Set") and checks that the
// option kind matches want.
func (p *Parser) resolve(op, name string, want Kind) (*option, error) {
	if err := p.requireInit(op + want.accessor()); err != nil {
		return nil, err
	}
	o, err := p.find(name)
	if err != nil {
		return nil, err
	}
	if o.kind() != want {
		return nil, fmt.Errorf("%w: option \"-%s\" is a %s option, use %s%s instead",
			ErrWrongAccessor, o.name, o.kind(), op, o.kind().accessor())
	}
	return o, nil
}

// GetFlag returns the value of a flag option.
func (p *Parser) GetFlag(name string) (bool, error) {
	o, err := p.resolve("Get", name, KindFlag)
	if err != nil {
		return false, err
	}
	return *o.bind.(flagBinding).p, nil
}

// GetInt returns the value of an integer option.
func (p *Parser) GetInt(name string) (int64, error) {
	o, err := p.resolve("Get", name, KindInt)
	if err != nil {
		return 0, err
	}
	return *o.bind.(intBinding).p, nil
}

// GetUint returns the value of an unsigned integer option.
func (p *Parser) GetUint(name string) (uint64, error) {
	o, err := p.resolve("Get", name, KindUint)
	if err != nil {
		return 0, err
	}
	return *o.bind.(uintBinding).p, nil
}

// GetFloat returns the value of a float option.
func (p *Parser) GetFloat(name string) (float64, error) {
	o, err := p.resolve("Get", name, KindFloat)
	if err != nil {
		return 0, err
	}
	return *o.bind.(floatBinding).p, nil
}

// GetString returns the value of a string option.
func (p *Parser) GetString(name string) (string, error) {
	o, err := p.resolve("Get", name, KindString)
	if err != nil {
		return "", err
	}
	return *o.bind.(stringBinding).p, nil
}

// GetKeyword returns the selected keyword, or "" when none is selected.
func (p *Parser) GetKeyword(name string) (string, error) {
	o, err := p.resolve("Get", name, KindKeyword)
	if err != nil {
		return "", err
	}
	return o.value().(string), nil
}

// GetKeywordIndex returns the index of the selected keyword, -1 when none is
// selected.
func (p *Parser) GetKeywordIndex(name string) (int, error) {
	o, err := p.resolve("Get", name, KindKeyword)
	if err != nil {
		return -1, err
	}
	return *o.bind.(keywordBinding).p, nil
}

// GetHandler returns the arguments recorded for a handler option.
func (p *Parser) GetHandler(name string) ([]string, error) {
	o, err := p.resolve("Get", name, KindHandler)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), o.history...), nil
}

// GetVecInt returns a copy of an int vector option.
func (p *Parser) GetVecInt(name string) ([]int64, error) {
	o, err := p.resolve("Get", name, KindVecInt)
	if err != nil {
		return nil, err
	}
	v, _ := o.value().([]int64)
	return v, nil
}

// GetVecUint returns a copy of an unsigned vector option.
func (p *Parser) GetVecUint(name string) ([]uint64, error) {
	o, err := p.resolve("Get", name, KindVecUint)
	if err != nil {
		return nil, err
	}
	v, _ := o.value().([]uint64)
	return v, nil
}

// GetVecFloat returns a copy of a float vector option.
func (p *Parser) GetVecFloat(name string) ([]float64, error) {
	o, err := p.resolve("Get", name, KindVecFloat)
	if err != nil {
		return nil, err
	}
	v, _ := o.value().([]float64)
	return v, nil
}

// GetVecString returns a copy of a string vector option.
func (p *Parser) GetVecString(name string) ([]string, error) {
	o, err := p.resolve("Get", name, KindVecString)
	if err != nil {
		return nil, err
	}
	v, _ := o.value().([]string)
	return v, nil
}

// SetFlag stores v into a flag option.
func (p *Parser) SetFlag(name string, v bool) error {
	o, err := p.resolve("Set", name, KindFlag)
	if err != nil {
		return err
	}
	*o.bind.(flagBinding).p = v
	o.used = true
	return nil
}

// SetInt stores v into an integer option.
func (p *Parser) SetInt(name string, v int64) error {
	o, err := p.resolve("Set", name, KindInt)
	if err != nil {
		return err
	}
	*o.bind.(intBinding).p = v
	o.used = true
	return nil
}

// SetUint stores v into an unsigned integer option.
func (p *Parser) SetUint(name string, v uint64) error {
	o, err := p.resolve("Set", name, KindUint)
	if err != nil {
		return err
	}
	*o.bind.(uintBinding).p = v
	o.used = true
	return nil
}

// SetFloat stores v into a float option.
func (p *Parser) SetFloat(name string, v float64) error {
	o, err := p.resolve("Set", name, KindFloat)
	if err != nil {
		return err
	}
	*o.bind.(floatBinding).p = v
	o.used = true
	return nil
}

// SetString stores a copy of v into a string option.
func (p *Parser) SetString(name, v string) error {
	o, err := p.resolve("Set", name, KindString)
	if err != nil {
		return err
	}
	*o.bind.(stringBinding).p = strings.Clone(v)
	o.used = true
	return nil
}

// SetKeyword selects keyword, which must be one of the registered keywords.
func (p *Parser) SetKeyword(name, keyword string) error {
	o, err := p.resolve("Set", name, KindKeyword)
	if err != nil {
		return err
	}
	return p.apply(o, '-', keyword, true)
}

// ClearKeyword deselects the keyword of a keyword option.
func (p *Parser) ClearKeyword(name string) error {
	o, err := p.resolve("Set", name, KindKeyword)
	if err != nil {
		return err
	}
	return p.apply(o, '-', "", false)
}

// SetHandler passes arg to the handler of a handler option, the same way the
// command line does.
func (p *Parser) SetHandler(name, arg string) error {
	o, err := p.resolve("Set", name, KindHandler)
	if err != nil {
		return err
	}
	return p.apply(o, '-', arg, true)
}

// SetVecInt replaces the content of an int vector option with the
// whitespace separated integers in text.
func (p *Parser) SetVecInt(name, text string) error {
	return p.setVec(name, text, KindVecInt)
}

// SetVecUint replaces the content of an unsigned vector option.
func (p *Parser) SetVecUint(name, text string) error {
	return p.setVec(name, text, KindVecUint)
}

// SetVecFloat replaces the content of a float vector option.
func (p *Parser) SetVecFloat(name, text string) error {
	return p.setVec(name, text, KindVecFloat)
}

// SetVecString replaces the content of a string vector option.
func (p *Parser) SetVecString(name, text string) error {
	return p.setVec(name, text, KindVecString)
}

func (p *Parser) setVec(name, text string, kind Kind) error {
	o, err := p.resolve("Set", name, kind)
	if err != nil {
		return err
	}
	return p.apply(o, '-', text, true)
}
