// FILE: lixenwraith/flexop/file.go
package flexop

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"
)

// Option file formats.
const (
	FormatAuto = "auto"
	FormatLine = "line"
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatHCL  = "hcl"
)

// detectFileFormat determines the option file format from the extension.
// Anything unrecognized is a line-based option file.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".hcl":
		return FormatHCL
	default:
		return FormatLine
	}
}

// loadOptionFile reads the option file at path and appends its tokens to
// the file argument buffer.
func (p *Parser) loadOptionFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: cannot open options file %q", ErrOptionFile, path)
		}
		return fmt.Errorf("%w: failed to stat options file %q: %w", ErrOptionFile, path, err)
	}
	if p.opts.MaxFileSize > 0 && info.Size() > p.opts.MaxFileSize {
		return fmt.Errorf("%w: options file %q exceeds maximum size %d bytes", ErrOptionFile, path, p.opts.MaxFileSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: cannot open options file %q: %w", ErrOptionFile, path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if p.opts.MaxFileSize > 0 {
		reader = io.LimitReader(file, p.opts.MaxFileSize)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: failed to read options file %q: %w", ErrOptionFile, path, err)
	}

	format := p.opts.FileFormat
	if format == "" || format == FormatAuto {
		format = detectFileFormat(path)
	}

	var args []string
	switch format {
	case FormatLine:
		args, err = lineTokens(p.fileArgs, data)
	case FormatTOML, FormatYAML, FormatJSON, FormatHCL:
		var values map[string]any
		values, err = decodeStructured(format, path, data)
		if err == nil {
			args = p.structuredTokens(p.fileArgs, flattenMap(values, ""))
		}
	default:
		err = fmt.Errorf("unknown options file format %q", format)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOptionFile, path, err)
	}

	p.opts.Logger.Debug("options file loaded",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("tokens", len(args)-len(p.fileArgs)),
	)
	p.fileArgs = args
	return nil
}

// lineTokens tokenizes a line-based option file. Blank lines and lines
// whose first non-blank character is '#' are skipped; every other line is
// tokenized on its own.
func lineTokens(dst []string, data []byte) ([]string, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	for n := 1; sc.Scan(); n++ {
		line := strings.TrimLeftFunc(sc.Text(), func(r rune) bool {
			return r < 0x80 && isSpace(byte(r))
		})
		if line == "" || line[0] == '#' {
			continue
		}

		var err error
		if dst, err = Tokenize(dst, line); err != nil {
			return dst, fmt.Errorf("line %d: %w", n, err)
		}
	}
	return dst, sc.Err()
}

// decodeStructured decodes a TOML, YAML, JSON or HCL document into a nested
// map.
func decodeStructured(format, path string, data []byte) (map[string]any, error) {
	values := make(map[string]any)

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&values); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatHCL:
		return decodeHCL(path, data)
	}

	return values, nil
}

// decodeHCL reads the top-level attributes of an HCL document.
func decodeHCL(path string, data []byte) (map[string]any, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read HCL attributes: %w", diags)
	}

	values := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("attribute %q: %w", name, diags)
		}
		native, err := ctyToNative(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		values[name] = native
	}
	return values, nil
}

// ctyToNative converts a cty value to the Go value the other decoders
// produce for the same document.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var i int64
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return i, nil
		}
		var u uint64
		if err := gocty.FromCtyValue(v, &u); err == nil {
			return u, nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert number: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		list := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			native, err := ctyToNative(ev)
			if err != nil {
				return nil, err
			}
			list = append(list, native)
		}
		return list, nil

	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			k, ev := it.Element()
			native, err := ctyToNative(ev)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k.AsString(), err)
			}
			m[k.AsString()] = native
		}
		return m, nil
	}

	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

// structuredTokens turns flattened document values into option tokens in
// key order. Booleans of flag options become "-name" or "+name"; lists are
// joined into one argument, except for handler options which receive one
// occurrence per element; everything else becomes "-name=value". Keys that
// are not registered still produce tokens so the scan reports them.
func (p *Parser) structuredTokens(dst []string, flat map[string]any) []string {
	for _, key := range sortedKeys(flat) {
		value := flat[key]
		if value == nil {
			continue
		}

		o, _ := p.reg.lookup(key)

		if b, ok := value.(bool); ok && o != nil && o.kind() == KindFlag {
			if b {
				dst = append(dst, "-"+key)
			} else {
				dst = append(dst, "+"+key)
			}
			continue
		}

		if list, ok := value.([]any); ok {
			parts := make([]string, 0, len(list))
			for _, e := range list {
				parts = append(parts, scalarText(e))
			}
			if o != nil && o.kind() == KindHandler {
				for _, part := range parts {
					dst = append(dst, "-"+key+"="+part)
				}
				continue
			}
			dst = append(dst, "-"+key+"="+strings.Join(parts, " "))
			continue
		}

		dst = append(dst, "-"+key+"="+scalarText(value))
	}
	return dst
}
