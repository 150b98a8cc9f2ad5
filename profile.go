package flokk

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNullAccount = errors.New("account document is null")

// Profile is a Flokk account in the shape shared by every login provider.
type Profile struct {
	Provider    string         `json:"provider"`
	ID          string         `json:"id"`
	DisplayName string         `json:"displayName"`
	Username    string         `json:"username"`
	ProfileURL  string         `json:"profileUrl"`
	Emails      []Email        `json:"emails"`
	Raw         []byte         `json:"-"`
	JSON        map[string]any `json:"-"`
}

type Email struct {
	Value string `json:"value"`
}

type account struct {
	ID       json.RawMessage `json:"id"`
	Name     json.RawMessage `json:"name"`
	Username json.RawMessage `json:"username"`
	Href     json.RawMessage `json:"href"`
	Email    json.RawMessage `json:"email"`
}

// ParseProfile normalizes the body of the account resource.
func ParseProfile(body []byte) (Profile, error) {
	var out Profile

	var acc account
	if err := json.Unmarshal(body, &acc); err != nil {
		return out, &ParseError{Err: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return out, &ParseError{Err: err}
	}

	if doc == nil {
		return out, &ParseError{Err: errNullAccount}
	}

	out.Provider = Name
	out.ID = rawScalar(acc.ID)
	out.DisplayName = rawScalar(acc.Name)
	out.Username = rawScalar(acc.Username)
	out.ProfileURL = rawScalar(acc.Href)
	out.Emails = parseEmails(acc.Email)
	out.Raw = body
	out.JSON = doc

	return out, nil
}

// rawScalar returns a JSON string unquoted and any other value as its
// literal text.
func rawScalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

// parseEmails accepts either a list or a single entry. An entry is an
// address string or an object holding the address in "href".
func parseEmails(raw json.RawMessage) []Email {
	out := []Email{}

	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil || !truthy(v) {
		return out
	}

	entries, ok := v.([]any)
	if !ok {
		entries = []any{v}
	}

	for _, entry := range entries {
		if addr, ok := emailValue(entry); ok {
			out = append(out, Email{Value: addr})
		}
	}

	return out
}

func emailValue(entry any) (string, bool) {
	switch e := entry.(type) {
	case string:
		return e, e != ""
	case map[string]any:
		href, ok := e["href"].(string)
		return href, ok && href != ""
	}
	return "", false
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	}
	return true
}
