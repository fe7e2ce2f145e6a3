// File: lixenwraith/flexop/helper.go
package flexop

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// isSpace matches the C locale whitespace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// parseInt parses a full-length base 10 integer literal. Surrounding
// whitespace is tolerated; anything else is an error.
func parseInt(s string) (int64, error) {
	t := strings.TrimSpace(s)
	x, err := strconv.ParseInt(t, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidNumber, s)
	}
	return x, nil
}

// parseUint parses a full-length base 10 unsigned integer literal.
func parseUint(s string) (uint64, error) {
	t := strings.TrimSpace(s)
	x, err := strconv.ParseUint(t, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidNumber, s)
	}
	return x, nil
}

// parseFloat parses a full-length floating point literal.
func parseFloat(s string) (float64, error) {
	t := strings.TrimSpace(s)
	x, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a float number", ErrInvalidNumber, s)
	}
	return x, nil
}

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// scalarText renders a decoded file value as option argument text.
func scalarText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return formatFloat(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// setNestedValue sets value at a dot-separated path, creating intermediate
// maps. A path that runs through a value, or lands on a map built for a
// longer name, is an error.
func setNestedValue(nested map[string]any, path string, value any) error {
	m := nested
	segments := strings.Split(path, ".")
	for i, segment := range segments[:len(segments)-1] {
		switch cur := m[segment].(type) {
		case nil:
			sub := make(map[string]any)
			m[segment] = sub
			m = sub
		case map[string]any:
			m = cur
		default:
			return fmt.Errorf("%q: %q already holds a value", path, strings.Join(segments[:i+1], "."))
		}
	}

	last := segments[len(segments)-1]
	if _, isMap := m[last].(map[string]any); isMap {
		return fmt.Errorf("%q: name is a prefix of other options", path)
	}
	m[last] = value
	return nil
}

// navigateToPath traverses a nested map to reach path.
func navigateToPath(nested map[string]any, path string) any {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nested
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		value, exists := m[segment]
		if !exists {
			return nil
		}
		current = value
	}
	return current
}
