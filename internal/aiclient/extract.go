package aiclient

import (
	"encoding/json"
	"strings"
)

// ExtractText pulls the generated text out of a proxy payload. It
// understands Responses-API output blocks, chat-completion choices,
// and raw string payloads, in that order.
func ExtractText(payload any) string {
	if s, ok := payload.(string); ok {
		return s
	}

	data, ok := payload.(map[string]any)
	if !ok {
		return ""
	}

	if output, ok := data["output"].([]any); ok {
		var combined strings.Builder
		for _, item := range output {
			block, ok := item.(map[string]any)
			if !ok {
				continue
			}
			content, ok := block["content"].([]any)
			if !ok {
				continue
			}
			for _, part := range content {
				m, ok := part.(map[string]any)
				if !ok {
					continue
				}
				if m["type"] == "output_text" {
					if text, ok := stringField(m, "text"); ok {
						combined.WriteString(text)
					}
				}
			}
			// The message block carries the final answer; stop at the
			// first block that produced text.
			if combined.Len() > 0 {
				return combined.String()
			}
		}
	}

	if choices, ok := data["choices"].([]any); ok && len(choices) > 0 {
		if choice, ok := choices[0].(map[string]any); ok {
			if message, ok := choice["message"].(map[string]any); ok {
				if content, ok := stringField(message, "content"); ok {
					return content
				}
			}
		}
	}

	return ""
}

// DecodeJSON attempts to decode a JSON object emitted by the model,
// tolerating markdown ```json fences around the body. Returns false
// when the payload holds no decodable object.
func DecodeJSON(payload any) (map[string]any, bool) {
	text := ExtractText(payload)
	if text == "" {
		return nil, false
	}

	if decoded, ok := decodeObject(text); ok {
		return decoded, true
	}

	stripped := strings.TrimSpace(text)
	stripped = strings.TrimPrefix(stripped, "```json")
	stripped = strings.TrimSuffix(stripped, "```")
	stripped = strings.TrimSpace(stripped)
	if stripped == "" || stripped == text {
		return nil, false
	}
	return decodeObject(stripped)
}

func decodeObject(text string) (map[string]any, bool) {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, false
	}
	return decoded, decoded != nil
}
