package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	objectJSONPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON decodes a JSON value embedded in a free-text answer. It tries the
// whole answer, then a ```json fenced block, then the outermost braces.
func ExtractJSON(text string, v any) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("extract json from empty response: %w", ErrParse)
	}

	if err := json.Unmarshal([]byte(trimmed), v); err == nil {
		return nil
	}

	if match := fencedJSONPattern.FindStringSubmatch(trimmed); match != nil {
		if err := json.Unmarshal([]byte(match[1]), v); err != nil {
			return fmt.Errorf("decode fenced json block: %w: %w", ErrParse, err)
		}
		return nil
	}

	if match := objectJSONPattern.FindString(trimmed); match != "" {
		if err := json.Unmarshal([]byte(match), v); err != nil {
			return fmt.Errorf("decode embedded json object: %w: %w", ErrParse, err)
		}
		return nil
	}

	return fmt.Errorf("no json found in response: %w", ErrParse)
}

// HasUsefulContent reports whether an answer carries anything other than one of
// the tool's "nothing found" phrasings.
func HasUsefulContent(answer string, emptyMarkers ...string) bool {
	if strings.TrimSpace(answer) == "" {
		return false
	}
	for _, marker := range emptyMarkers {
		if strings.Contains(answer, marker) {
			return false
		}
	}

	return true
}
