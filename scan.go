// FILE: lixenwraith/flexop/scan.go
package flexop

import (
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Scan.
const TagName = "option"

// Values returns the current value of every registered option keyed by
// name. The built-in help and option_file options are not included.
//
// Value types follow the option kind: bool, int64, uint64, float64, string,
// the selected keyword (string, "" when unset), the recorded handler
// arguments ([]string) and the vector elements as a typed slice.
func (p *Parser) Values() map[string]any {
	values := make(map[string]any, len(p.reg.options))
	for _, o := range p.reg.options {
		if o.kind() == KindTitle || o.generic {
			continue
		}
		values[o.name] = o.value()
	}
	return values
}

// nestedValues returns Values with dotted names expanded into nested maps.
// It fails when one option name is a dotted prefix of another.
func (p *Parser) nestedValues() (map[string]any, error) {
	nested := make(map[string]any)
	for _, o := range p.reg.options {
		if o.kind() == KindTitle || o.generic {
			continue
		}
		if err := setNestedValue(nested, o.name, o.value()); err != nil {
			return nil, err
		}
	}
	return nested, nil
}

// Scan decodes the option values into target, a pointer to a struct.
// Fields are matched by the "option" tag; dotted option names map to nested
// structs. Strings are converted to durations, times (RFC 3339), URLs and
// comma separated slices where the field type asks for it.
func (p *Parser) Scan(target any) error {
	return p.ScanSection("", target)
}

// ScanSection is like Scan but decodes only the options under the dotted
// prefix basePath.
func (p *Parser) ScanSection(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}
	if err := p.requireInit("Scan"); err != nil {
		return err
	}

	values, err := p.nestedValues()
	if err != nil {
		return fmt.Errorf("cannot nest option values: %w", err)
	}
	section := navigateToPath(values, basePath)
	sectionMap, ok := section.(map[string]any)
	if !ok {
		if section != nil {
			return fmt.Errorf("path %q refers to non-map value (type %T)", basePath, section)
		}
		sectionMap = make(map[string]any)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", basePath, err)
	}
	return nil
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToURLHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToURLHookFunc handles url.URL conversion
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(url.URL{}) {
			return data, nil
		}

		u, err := url.Parse(data.(string))
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		if isPtr {
			return u, nil
		}
		return *u, nil
	}
}
