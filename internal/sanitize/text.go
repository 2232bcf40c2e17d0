// Package sanitize hardens untrusted request input before it reaches the
// database: control-character stripping, length capping, an allow-list HTML
// filter and a recursive walk for loosely structured values.
package sanitize

import (
	"strings"

	"careerhub-backend/internal/model"
)

// Caps for the createdBy/lastEditedBy snapshot fields.
const (
	maxUserImageLen = 500
	maxUserNameLen  = 120
	maxUserEmailLen = 200
)

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
}

// Text coerces v to a string (non-strings become ""), strips control
// characters, trims surrounding whitespace and truncates to maxLen runes.
// maxLen <= 0 means no cap.
func Text(v any, maxLen int) string {
	s, _ := v.(string)
	s = strings.TrimSpace(stripControl(s))
	if maxLen > 0 {
		if rs := []rune(s); len(rs) > maxLen {
			s = string(rs[:maxLen])
		}
	}
	return s
}

// UserInfo reduces an arbitrary decoded JSON value to the three sanitized
// fields a user snapshot may carry. Anything else in the object is discarded.
func UserInfo(v any) model.UserInfo {
	info := model.UserInfo{}
	obj, ok := v.(map[string]any)
	if !ok {
		return info
	}
	info.Image = Text(obj["image"], maxUserImageLen)
	info.Name = Text(obj["name"], maxUserNameLen)
	info.Email = Text(obj["email"], maxUserEmailLen)
	return info
}
