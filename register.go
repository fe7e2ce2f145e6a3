// File: lixenwraith/flexop/register.go
package flexop

import (
	"fmt"
	"log/slog"
)

// Titles and categories of the automatically registered sections.
const (
	userTitle       = "User options:"
	userCategory    = "user"
	genericTitle    = "Generic options:"
	genericCategory = "generic"
)

// stripName removes one leading '-' or '+' from an option name.
func stripName(name string) string {
	if name != "" && (name[0] == '-' || name[0] == '+') {
		return name[1:]
	}
	return name
}

// register is the common path of every Register* method.
func (p *Parser) register(name, help string, b binding) (*option, error) {
	if p.state == stateInitialized || p.parsed {
		return nil, fmt.Errorf("%w: option \"-%s\" not registered, Register must be called before Init", ErrUsage, stripName(name))
	}

	if b.kind() != KindTitle {
		name = stripName(name)
		if name == "" {
			return nil, fmt.Errorf("%w: option name cannot be empty", ErrInvalidName)
		}
	}

	// Options registered before any title belong to the user section.
	if !p.titled {
		p.titled = true
		if b.kind() != KindTitle {
			if err := p.reg.add(&option{name: userTitle, help: "", bind: titleBinding{category: userCategory}}); err != nil {
				return nil, err
			}
		}
	}

	o := &option{name: name, help: help, bind: b}
	if err := p.reg.add(o); err != nil {
		return nil, err
	}
	return o, nil
}

// registerGeneric adds the generic section with the help and option_file
// options. It runs at the start of Init.
func (p *Parser) registerGeneric() error {
	p.titled = true
	if err := p.reg.add(&option{name: genericTitle, bind: titleBinding{category: genericCategory}, generic: true}); err != nil {
		return err
	}
	if err := p.reg.add(&option{
		name:    HelpOption,
		help:    "Print options help then exit",
		bind:    stringBinding{p: &p.helpCategory},
		generic: true,
	}); err != nil {
		return err
	}
	return p.reg.add(&option{
		name:    OptionFileOption,
		help:    "Options file",
		bind:    stringBinding{p: &p.optionFile},
		generic: true,
	})
}

// RegisterTitle starts a new help section. Options registered after it are
// listed under title, and "-help category" selects the section.
func (p *Parser) RegisterTitle(title, help, category string) error {
	_, err := p.register(title, help, titleBinding{category: category})
	return err
}

// RegisterFlag registers a boolean option without argument: "-name" sets
// *v to true and "+name" sets it to false.
func (p *Parser) RegisterFlag(name, help string, v *bool) error {
	if v == nil {
		return nilStorage(name)
	}
	_, err := p.register(name, help, flagBinding{p: v})
	return err
}

// RegisterInt registers a signed integer option.
func (p *Parser) RegisterInt(name, help string, v *int64) error {
	if v == nil {
		return nilStorage(name)
	}
	_, err := p.register(name, help, intBinding{p: v})
	return err
}

// RegisterUint registers an unsigned integer option.
func (p *Parser) RegisterUint(name, help string, v *uint64) error {
	if v == nil {
		return nilStorage(name)
	}
	_, err := p.register(name, help, uintBinding{p: v})
	return err
}

// RegisterFloat registers a floating point option.
func (p *Parser) RegisterFloat(name, help string, v *float64) error {
	if v == nil {
		return nilStorage(name)
	}
	_, err := p.register(name, help, floatBinding{p: v})
	return err
}

// RegisterString registers a string option.
func (p *Parser) RegisterString(name, help string, v *string) error {
	if v == nil {
		return nilStorage(name)
	}
	_, err := p.register(name, help, stringBinding{p: v})
	return err
}

// RegisterKeyword registers an option whose argument must be one of
// keywords. *v receives the index of the matched keyword, -1 when unset.
//
// The keyword list is copied. An empty list discards the registration.
func (p *Parser) RegisterKeyword(name, help string, keywords []string, v *int) error {
	if v == nil {
		return nilStorage(name)
	}
	if len(keywords) == 0 {
		p.opts.Logger.Warn("keyword option has no keywords, option not registered",
			slog.String("option", stripName(name)))
		return nil
	}

	keys := make([]string, len(keywords))
	for i, k := range keywords {
		if k == "" {
			p.opts.Logger.Warn("empty string in the keywords list",
				slog.String("option", stripName(name)),
				slog.Int("index", i))
		}
		keys[i] = k
	}

	o, err := p.register(name, help, keywordBinding{p: v})
	if err != nil {
		return err
	}
	o.keywords = keys
	return nil
}

// RegisterHandler registers an option whose argument is passed to h. Every
// supplied argument is recorded; with append set the record keeps all of
// them, otherwise only the most recent one.
func (p *Parser) RegisterHandler(name, help string, h Handler, append bool) error {
	if h == nil {
		return nilStorage(name)
	}
	_, err := p.register(name, help, handlerBinding{h: h, append: append})
	return err
}

// RegisterVecInt registers a vector-of-integers option. Elements already in
// v are kept as defaults until the option is first given.
func (p *Parser) RegisterVecInt(name, help string, v *Vec) error {
	return p.registerVec(name, help, v, KindVecInt)
}

// RegisterVecUint registers a vector-of-unsigned-integers option.
func (p *Parser) RegisterVecUint(name, help string, v *Vec) error {
	return p.registerVec(name, help, v, KindVecUint)
}

// RegisterVecFloat registers a vector-of-floats option.
func (p *Parser) RegisterVecFloat(name, help string, v *Vec) error {
	return p.registerVec(name, help, v, KindVecFloat)
}

// RegisterVecString registers a vector-of-strings option.
func (p *Parser) RegisterVecString(name, help string, v *Vec) error {
	return p.registerVec(name, help, v, KindVecString)
}

func (p *Parser) registerVec(name, help string, v *Vec, kind Kind) error {
	if v == nil {
		return nilStorage(name)
	}
	if !v.Initialized() || v.Kind() != kind.elem() {
		v.Init(kind.elem())
	}
	_, err := p.register(name, help, vecBinding{k: kind, v: v})
	return err
}

func nilStorage(name string) error {
	return fmt.Errorf("%w: option \"-%s\" has no storage", ErrInvalidName, stripName(name))
}
