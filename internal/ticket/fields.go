package ticket

import (
	"fmt"
	"strconv"
)

// Fields holds one ticket's attributes keyed by the names the pass
// templates reference. Values are strings for text attributes, a nested
// map for seat, or whatever non-string value the caller sent verbatim.
type Fields map[string]any

// SeatInfo is the typed view of the nested seat attribute.
type SeatInfo struct {
	Row    string `json:"row"`
	SeatNo string `json:"seat_no"`
}

// Defaults returns a fresh copy of the built-in ticket template. Every
// attribute the pass payloads reference is present and non-empty.
func Defaults() Fields {
	return Fields{
		"event_name":         "Event Name",
		"banner":             "https://farm4.staticflickr.com/3723/11177041115_6e6a3b6f49_o.jpg",
		"main_image":         "http://farm4.staticflickr.com/3738/12440799783_3dc3c20606_b.jpg",
		"google_map_url":     "http://maps.google.com/",
		"header_text":        "Text module header",
		"body_text":          "Text module body",
		"phone_number":       "9876543210",
		"section":            "0",
		"issuer_name":        "Issuer Name",
		"gate":               "0",
		"ticket_number":      "ABC123456789",
		"ticket_holder_name": "Ticket Holder Name",
		"seat": map[string]any{
			"row":     "0",
			"seat_no": "0",
		},
	}
}

// Normalize merges caller-supplied ticket data over the defaults
// template. Only keys present in defaults are considered; unknown input
// keys are ignored. An empty string falls back to the default, including
// per sub-key inside seat, and non-string values are carried as sent.
// The result always contains the defaults' full key set.
func Normalize(defaults Fields, input map[string]any) Fields {
	result := make(Fields, len(defaults))

	for key, def := range defaults {
		value, ok := input[key]
		if !ok {
			result[key] = copyValue(def)
			continue
		}

		switch v := value.(type) {
		case string:
			if v == "" {
				result[key] = copyValue(def)
			} else {
				result[key] = v
			}
		case map[string]any:
			defMap, defIsMap := def.(map[string]any)
			if !defIsMap {
				result[key] = v
				continue
			}
			result[key] = mergeNested(defMap, v)
		default:
			result[key] = value
		}
	}

	return result
}

// mergeNested overlays a caller-supplied sub-map on a default sub-map.
// Extra caller keys ride along untouched; empty strings fall back to the
// default only for keys the default sub-map knows about.
func mergeNested(def, in map[string]any) map[string]any {
	merged := make(map[string]any, len(def)+len(in))
	for k, v := range def {
		merged[k] = v
	}
	for k, v := range in {
		merged[k] = v
	}
	for k, defVal := range def {
		if s, ok := in[k].(string); ok && s == "" {
			merged[k] = defVal
		}
	}
	return merged
}

func copyValue(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	c := make(map[string]any, len(m))
	for k, val := range m {
		c[k] = val
	}
	return c
}

// Text renders the attribute as a string, which is the form the pass
// payloads need regardless of what type the caller sent.
func (f Fields) Text(key string) string {
	v, ok := f[key]
	if !ok {
		return ""
	}
	return text(v)
}

// text stringifies one attribute value. JSON numbers decode as float64
// and are kept in plain decimal; fmt.Sprint would shift large values
// into exponent form.
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Seat returns the typed seat attribute. A caller can replace the whole
// seat value with a non-mapping; that surfaces here as an error instead
// of a panic while the object payload is being built.
func (f Fields) Seat() (SeatInfo, error) {
	v, ok := f["seat"]
	if !ok {
		return SeatInfo{}, fmt.Errorf("seat attribute missing")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return SeatInfo{}, fmt.Errorf("seat attribute is %T, expected an object", v)
	}

	var info SeatInfo
	if r, ok := m["row"]; ok {
		info.Row = text(r)
	}
	if s, ok := m["seat_no"]; ok {
		info.SeatNo = text(s)
	}
	return info, nil
}
