package parser

import (
	"encoding/json"
	"net/url"
	"strings"
)

// StudioCodePrefix marks a shared palette code
const StudioCodePrefix = "studiocode?"

// StudioColor is one color entry recovered from a studio code
type StudioColor struct {
	Hex  string `json:"hex"`
	Name string `json:"name,omitempty"`
}

// StudioPayload is the JSON document carried by an exported studio code
type StudioPayload struct {
	ColorNames []string `json:"colorNames"`
	Colors     []string `json:"colors"`
}

// IsStudioCode reports whether the blob looks like a shared palette code
func IsStudioCode(blob string) bool {
	trimmed := strings.TrimSpace(blob)
	return strings.HasPrefix(trimmed, StudioCodePrefix) || strings.Contains(trimmed, "colorNames=")
}

// DecodeStudioCode extracts colors from a studio code. Two layouts are understood:
//
//	studiocode?colorNames=<urlencoded [{"hex": "#..", "name": ".."}]>
//	studiocode?<urlencoded {"colorNames": [..], "colors": [..]}>
//
// ok is false when the blob is not a studio code or is malformed, in which
// case callers fall back to plain delimiter splitting.
func DecodeStudioCode(blob string) ([]StudioColor, bool) {
	if !IsStudioCode(blob) {
		return nil, false
	}
	query := strings.TrimPrefix(strings.TrimSpace(blob), StudioCodePrefix)

	if colors, ok := decodeColorNamesParam(query); ok {
		return colors, true
	}
	if colors, ok := decodePayload(query); ok {
		return colors, true
	}
	return nil, false
}

// decodeColorNamesParam handles the colorNames=<json array> layout
func decodeColorNamesParam(query string) ([]StudioColor, bool) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, false
	}
	param := values.Get("colorNames")
	if param == "" {
		return nil, false
	}

	var entries []StudioColor
	if err := json.Unmarshal([]byte(param), &entries); err != nil {
		// Some codes were encoded twice before being embedded
		unescaped, unescapeErr := url.QueryUnescape(param)
		if unescapeErr != nil {
			return nil, false
		}
		if err := json.Unmarshal([]byte(unescaped), &entries); err != nil {
			return nil, false
		}
	}
	return nonEmpty(entries), true
}

// decodePayload handles the layout produced by export.ShareCode
func decodePayload(query string) ([]StudioColor, bool) {
	raw, err := url.QueryUnescape(query)
	if err != nil {
		return nil, false
	}

	var payload StudioPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false
	}
	if payload.Colors == nil {
		return nil, false
	}

	entries := make([]StudioColor, 0, len(payload.Colors))
	for i, hex := range payload.Colors {
		entry := StudioColor{Hex: hex}
		if i < len(payload.ColorNames) {
			entry.Name = payload.ColorNames[i]
		}
		entries = append(entries, entry)
	}
	return nonEmpty(entries), true
}

func nonEmpty(entries []StudioColor) []StudioColor {
	out := make([]StudioColor, 0, len(entries))
	for _, e := range entries {
		e.Hex = strings.TrimSpace(e.Hex)
		if e.Hex != "" {
			out = append(out, e)
		}
	}
	return out
}
