package providers

import (
	"bytes"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
)

var imageURLPattern = regexp.MustCompile(`(?i)https://[^\s]+\.(?:jpg|jpeg|png|webp)`)

// structured replies are checked in this order
var imageFields = []string{"url", "image_url", "output"}

// ResolveImageURL finds the generated image in a chat message content value.
// Strings are searched for an image link, objects are checked field by field
// and arrays are treated as multi-part content.
func ResolveImageURL(content json.RawMessage) (string, error) {
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		return "", ErrNoImageURL
	}

	switch content[0] {
	case '"':
		var text string
		if err := json.Unmarshal(content, &text); err != nil {
			return "", ErrNoImageURL
		}
		return FromText(text)
	case '{':
		if u := fromObject(content); u != "" {
			return u, nil
		}
	case '[':
		var parts []json.RawMessage
		if err := json.Unmarshal(content, &parts); err != nil {
			return "", ErrNoImageURL
		}
		for _, part := range parts {
			if u, err := ResolveImageURL(part); err == nil {
				return u, nil
			}
		}
	}
	return "", ErrNoImageURL
}

// FromText returns the first https image link in text. Failing that, the
// whole text is used when it is itself an absolute URL.
func FromText(text string) (string, error) {
	if m := imageURLPattern.FindString(text); m != "" {
		return m, nil
	}

	text = strings.TrimSpace(text)
	if isAbsoluteURL(text) {
		return text, nil
	}
	return "", ErrNoImageURL
}

func isAbsoluteURL(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "data":
		return strings.HasPrefix(u.Opaque, "image/")
	}
	return false
}

func fromObject(content json.RawMessage) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(content, &fields); err != nil {
		return ""
	}
	for _, name := range imageFields {
		if raw, ok := fields[name]; ok {
			if u := fieldValue(raw); u != "" {
				return u
			}
		}
	}
	return ""
}

// fieldValue accepts "x", {"url": "x"} or ["x", ...].
func fieldValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var nested struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.URL != "" {
		return strings.TrimSpace(nested.URL)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if err := json.Unmarshal(item, &s); err == nil && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
