package agent

import (
	"encoding/json"
	"strings"
)

// ParseEditResult decodes the model's edit-section response. Models routinely
// wrap JSON in markdown fences or prepend a sentence of prose, so the parser
// extracts the outermost JSON object before unmarshalling.
//
// When no valid JSON object can be recovered, the raw text is returned as a
// degraded result: the reply is shown to the user, nothing else is applied.
func ParseEditResult(raw string) *EditResult {
	payload := extractJSONObject(raw)
	if payload != "" {
		var res EditResult
		if err := json.Unmarshal([]byte(payload), &res); err == nil && (res.Reply != "" || res.UpdatedSection != "") {
			return &res
		}
	}

	return &EditResult{
		Reply:    strings.TrimSpace(raw),
		Degraded: true,
	}
}

// extractJSONObject returns the substring from the first '{' to its matching
// closing brace, honoring strings and escapes. Empty when unbalanced.
func extractJSONObject(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return ""
}
