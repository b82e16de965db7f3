package apod

import (
	"encoding/json"
	"strings"
)

// MediaType classifies the media attached to a record.
type MediaType int

const (
	// MediaOther covers videos and anything that is not a still image.
	MediaOther MediaType = iota
	// MediaImage is a still image reachable at Record.MediaURL.
	MediaImage
)

// String returns the lower-case media type name.
func (m MediaType) String() string {
	if m == MediaImage {
		return "image"
	}
	return "other"
}

// MarshalText implements encoding.TextMarshaler.
func (m MediaType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMediaType maps the provider's media_type string. Only "image" is an
// image; every other value, including "video", is MediaOther.
func ParseMediaType(raw string) MediaType {
	if raw == "image" {
		return MediaImage
	}
	return MediaOther
}

// Record is one Astronomy Picture of the Day entry.
type Record struct {
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	MediaType   MediaType `json:"media_type"`
	MediaURL    string    `json:"url"`
	Explanation string    `json:"explanation"`

	HDURL        string `json:"hdurl,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Copyright    string `json:"copyright,omitempty"`
	RawMediaType string `json:"raw_media_type,omitempty"`
}

// IsImage reports whether the record carries a displayable image.
func (r Record) IsImage() bool {
	return r.MediaType == MediaImage
}

// payload mirrors both shapes the endpoint answers with: a record, or an
// error object ({"code":404,"msg":...} or {"error":{"code":...,"message":...}}).
type payload struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	MediaType    string `json:"media_type"`
	URL          string `json:"url"`
	HDURL        string `json:"hdurl"`
	ThumbnailURL string `json:"thumbnail_url"`
	Explanation  string `json:"explanation"`
	Copyright    string `json:"copyright"`

	Code  json.RawMessage `json:"code"`
	Msg   string          `json:"msg"`
	Error *errorBody      `json:"error"`
}

type errorBody struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
}

func (p payload) record() Record {
	return Record{
		Title:        p.Title,
		Date:         p.Date,
		MediaType:    ParseMediaType(p.MediaType),
		MediaURL:     p.URL,
		Explanation:  p.Explanation,
		HDURL:        p.HDURL,
		ThumbnailURL: p.ThumbnailURL,
		Copyright:    strings.TrimSpace(p.Copyright),
		RawMediaType: p.MediaType,
	}
}

// numericCode decodes a JSON number code. String codes such as
// "API_KEY_INVALID" yield 0.
func numericCode(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return n
}
