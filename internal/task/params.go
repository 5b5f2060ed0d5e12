package task

// Params is the untyped parameter bag attached to a task. Keys are strings;
// values are whatever the submitter sent (numbers arrive as float64 after
// JSON decoding). Only the executor matched to the task interprets them.
type Params map[string]any

// Float returns the parameter as a float64, or def when the key is absent
// or not numeric. Integer values are widened.
func (p Params) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// String returns the parameter as a string, or def when the key is absent,
// empty, or not a string.
func (p Params) String(key, def string) string {
	v, ok := p[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	return s
}
