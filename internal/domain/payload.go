package domain

import "errors"

// Entity constructors take the raw decoded request body (plus parameters
// merged in by the handler) and fail with a machine-readable code. The
// boundary translates codes to user-facing messages, see internal/errors.
//
// Presence is checked for every field before any type check so the two
// failure modes stay distinct.

func requireStrings(payload map[string]any, errPrefix string, fields ...string) (map[string]string, error) {
	for _, f := range fields {
		if isAbsent(payload[f]) {
			return nil, errors.New(errPrefix + ".NOT_CONTAIN_NEEDED_PROPERTY")
		}
	}

	out := make(map[string]string, len(fields))
	for _, f := range fields {
		s, ok := payload[f].(string)
		if !ok {
			return nil, errors.New(errPrefix + ".NOT_MEET_DATA_TYPE_SPECIFICATION")
		}
		out[f] = s
	}
	return out, nil
}

// isAbsent mirrors a javascript-style falsy check: a missing key, null,
// empty string, false and numeric zero all count as "not provided".
func isAbsent(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	default:
		return false
	}
}

// optionalString returns the field value when present, type-checking it
// against errPrefix, or fallback when absent.
func optionalString(payload map[string]any, errPrefix, field, fallback string) (string, error) {
	v, ok := payload[field]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.New(errPrefix + ".NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return s, nil
}
