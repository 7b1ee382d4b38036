package models

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the wire format of createdAt/updatedAt: UTC with
// exactly three fractional digits, e.g. 2025-06-02T00:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// MarshalJSON writes fixed-width millisecond timestamps and always emits
// roles, as an empty list when unset.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return json.Marshal(struct {
		plain
		Roles     []string `json:"roles"`
		CreatedAt string   `json:"createdAt"`
		UpdatedAt string   `json:"updatedAt"`
	}{
		plain:     plain(u),
		Roles:     nonNil(u.Roles),
		CreatedAt: FormatTimestamp(u.CreatedAt),
		UpdatedAt: FormatTimestamp(u.UpdatedAt),
	})
}

// MarshalJSON writes fixed-width millisecond timestamps and always emits
// tags and coverImageUrl.
func (p BlogPost) MarshalJSON() ([]byte, error) {
	type plain BlogPost
	return json.Marshal(struct {
		plain
		Tags      []string `json:"tags"`
		CreatedAt string   `json:"createdAt"`
		UpdatedAt string   `json:"updatedAt"`
	}{
		plain:     plain(p),
		Tags:      nonNil(p.Tags),
		CreatedAt: FormatTimestamp(p.CreatedAt),
		UpdatedAt: FormatTimestamp(p.UpdatedAt),
	})
}
