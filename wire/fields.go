package wire

import "time"

// Field-extraction helpers shared by all entity decoders. Required lookups
// fail with *ParseError; optional lookups report absence through a bool
// instead of an error. A value that is present but malformed is always an
// error, even on the optional paths.

// RequireField returns the value at key, or a *ParseError naming the missing
// key and the offending dictionary.
func RequireField(dict map[string]any, key string) (any, error) {
	value, ok := dict[key]
	if !ok {
		return nil, NewMissingKeyError(key, dict)
	}
	return value, nil
}

// OptionalField returns the value at key. Absent keys and JSON nulls report
// ok=false rather than an error.
func OptionalField(dict map[string]any, key string) (any, bool) {
	value, ok := dict[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// RequireString returns the string at key. Missing keys and non-string values
// are errors.
func RequireString(dict map[string]any, key string) (string, error) {
	value, err := RequireField(dict, key)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", NewFieldError(key, value, "expected a string")
	}
	return s, nil
}

// OptionalString returns the string at key. Absent keys, nulls and empty
// strings all report ok=false: the service writes "no value" as any of the
// three, and every decode site treats them alike (an empty projectId is no
// project, an empty end is a running timer), so present-but-empty is
// deliberately collapsed into absence here. A present non-string value is an
// error.
func OptionalString(dict map[string]any, key string) (string, bool, error) {
	value, ok := OptionalField(dict, key)
	if !ok {
		return "", false, nil
	}
	s, isString := value.(string)
	if !isString {
		return "", false, NewFieldError(key, value, "expected a string")
	}
	if s == "" {
		return "", false, nil
	}
	return s, true, nil
}

// RequireDateTime returns the timestamp at key. Missing keys and unparsable
// values are errors.
func RequireDateTime(dict map[string]any, key string) (time.Time, error) {
	raw, err := RequireString(dict, key)
	if err != nil {
		return time.Time{}, err
	}
	dt, err := ParseDateTime(raw)
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time(), nil
}

// OptionalDateTime returns the timestamp at key, or nil when the key is
// absent, null or empty. A present but unparsable value is always an error,
// since it indicates a protocol problem worth surfacing.
func OptionalDateTime(dict map[string]any, key string) (*time.Time, error) {
	raw, ok, err := OptionalString(dict, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	dt, err := ParseDateTime(raw)
	if err != nil {
		return nil, err
	}
	t := dt.Time()
	return &t, nil
}
