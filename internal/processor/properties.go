package processor

import "github.com/spf13/cast"

// Properties is the request property map handed to a processor. Values come
// from query parameters or a decoded JSON body, so getters coerce loosely.
type Properties map[string]interface{}

// Has reports whether key is present.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the property as a string, or "" when absent.
func (p Properties) String(key string) string {
	return cast.ToString(p[key])
}

// StringOr returns the property as a string, or def when absent or empty.
func (p Properties) StringOr(key, def string) string {
	if v := cast.ToString(p[key]); v != "" {
		return v
	}
	return def
}

// Int returns the property as an int, or 0 when absent or unparseable.
func (p Properties) Int(key string) int {
	return cast.ToInt(p[key])
}

// IntOr returns the property as an int, or def when absent.
func (p Properties) IntOr(key string, def int) int {
	if !p.Has(key) {
		return def
	}
	v, err := cast.ToIntE(p[key])
	if err != nil {
		return def
	}
	return v
}

// Bool returns the property as a bool, or false when absent.
func (p Properties) Bool(key string) bool {
	return cast.ToBool(p[key])
}

// Map returns the property as a nested map, or nil when absent.
func (p Properties) Map(key string) map[string]interface{} {
	if !p.Has(key) {
		return nil
	}
	return cast.ToStringMap(p[key])
}

// Strings returns the property as a string slice, or nil when absent.
func (p Properties) Strings(key string) []string {
	if !p.Has(key) {
		return nil
	}
	return cast.ToStringSlice(p[key])
}
