// FILE: lixenwraith/flexop/save.go
package flexop

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Save writes the current value of every option to path atomically, in a
// form Init reads back through -option_file. The format follows the file
// extension the same way option files are read.
func (p *Parser) Save(path string) error {
	return p.save(path, false)
}

// SaveUsed is like Save but writes only options set by some source.
func (p *Parser) SaveUsed(path string) error {
	return p.save(path, true)
}

func (p *Parser) save(path string, usedOnly bool) error {
	if err := p.requireInit("Save"); err != nil {
		return err
	}

	format := p.opts.FileFormat
	if format == "" || format == FormatAuto {
		format = detectFileFormat(path)
	}

	if format == FormatLine {
		return atomicWriteFile(path, p.encodeLines(usedOnly))
	}

	values, err := p.saveValues(usedOnly, format)
	if err != nil {
		return fmt.Errorf("cannot save options as %s: %w", format, err)
	}

	var data []byte
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(values)
		data = buf.Bytes()
	case FormatYAML:
		data, err = yaml.Marshal(values)
	case FormatJSON:
		data, err = json.MarshalIndent(values, "", "  ")
		data = append(data, '\n')
	case FormatHCL:
		data, err = encodeHCL(values)
	default:
		err = fmt.Errorf("unknown options file format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal options to %s: %w", format, err)
	}

	return atomicWriteFile(path, data)
}

// saveValues is the nested value map written by structured formats. Unset
// keywords, handlers never given and uninitialized vectors have no value to
// write. TOML integers are signed 64-bit, so larger unsigned values are
// written as strings there.
func (p *Parser) saveValues(usedOnly bool, format string) (map[string]any, error) {
	nested := make(map[string]any)
	for _, o := range p.reg.options {
		if o.kind() == KindTitle || o.generic || (usedOnly && !o.used) {
			continue
		}
		if o.kind() == KindHandler && len(o.history) == 0 {
			continue
		}
		v := o.value()
		if v == nil || (o.kind() == KindKeyword && v == "") {
			continue
		}
		if format == FormatTOML {
			v = tomlSafe(v)
		}
		if err := setNestedValue(nested, o.name, v); err != nil {
			return nil, err
		}
	}
	return nested, nil
}

// tomlSafe converts unsigned values above math.MaxInt64 to their decimal
// text, which the unsigned option parser accepts on reload.
func tomlSafe(v any) any {
	switch x := v.(type) {
	case uint64:
		if x > math.MaxInt64 {
			return strconv.FormatUint(x, 10)
		}
	case []uint64:
		if slices.ContainsFunc(x, func(e uint64) bool { return e > math.MaxInt64 }) {
			text := make([]string, len(x))
			for i, e := range x {
				text[i] = strconv.FormatUint(e, 10)
			}
			return text
		}
	}
	return v
}

// encodeLines renders the line-based option file format.
func (p *Parser) encodeLines(usedOnly bool) []byte {
	var b strings.Builder
	for _, o := range p.reg.options {
		if o.generic || (usedOnly && !o.used) {
			continue
		}

		switch bind := o.bind.(type) {
		case titleBinding:
			if !usedOnly {
				fmt.Fprintf(&b, "# %s\n", strings.TrimSpace(o.name))
			}
		case flagBinding:
			if *bind.p {
				fmt.Fprintf(&b, "-%s\n", o.name)
			} else {
				fmt.Fprintf(&b, "+%s\n", o.name)
			}
		case stringBinding:
			fmt.Fprintf(&b, "-%s %s\n", o.name, Quote(*bind.p))
		case keywordBinding:
			if kw, _ := o.value().(string); kw != "" {
				fmt.Fprintf(&b, "-%s %s\n", o.name, Quote(kw))
			}
		case handlerBinding:
			for _, arg := range o.history {
				fmt.Fprintf(&b, "-%s %s\n", o.name, Quote(arg))
			}
		case vecBinding:
			if bind.v.Initialized() {
				fmt.Fprintf(&b, "-%s %s\n", o.name, Quote(bind.v.String()))
			}
		default:
			fmt.Fprintf(&b, "-%s %s\n", o.name, Quote(o.text()))
		}
	}
	return []byte(b.String())
}

// encodeHCL writes values as top-level HCL attributes.
func encodeHCL(values map[string]any) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, name := range sortedKeys(values) {
		if !hclsyntax.ValidIdentifier(name) {
			return nil, fmt.Errorf("option name %q is not a valid HCL identifier", name)
		}
		v, err := nativeToCty(values[name])
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		body.SetAttributeValue(name, v)
	}
	return f.Bytes(), nil
}

// nativeToCty converts an option value to its cty representation.
func nativeToCty(v any) (cty.Value, error) {
	switch x := v.(type) {
	case bool:
		return cty.BoolVal(x), nil
	case int64:
		return cty.NumberIntVal(x), nil
	case uint64:
		return cty.NumberUIntVal(x), nil
	case float64:
		return cty.NumberFloatVal(x), nil
	case string:
		return cty.StringVal(x), nil
	case []int64:
		return listVal(x, cty.Number, func(e int64) cty.Value { return cty.NumberIntVal(e) }), nil
	case []uint64:
		return listVal(x, cty.Number, func(e uint64) cty.Value { return cty.NumberUIntVal(e) }), nil
	case []float64:
		return listVal(x, cty.Number, func(e float64) cty.Value { return cty.NumberFloatVal(e) }), nil
	case []string:
		return listVal(x, cty.String, cty.StringVal), nil
	case map[string]any:
		attrs := make(map[string]cty.Value, len(x))
		for k, e := range x {
			cv, err := nativeToCty(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("key %q: %w", k, err)
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	}
	return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
}

func listVal[T any](s []T, elem cty.Type, conv func(T) cty.Value) cty.Value {
	if len(s) == 0 {
		return cty.ListValEmpty(elem)
	}
	vals := make([]cty.Value, len(s))
	for i, e := range s {
		vals[i] = conv(e)
	}
	return cty.ListVal(vals)
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
