package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// JSON columns share the same Value/Scan plumbing.

// jsonValue stores v as JSON without HTML escaping, so text such as "R&B"
// stays searchable as written.
func jsonValue(name string, v any) (driver.Value, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshal %s: %w", name, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func jsonScan(name string, src, dst any) error {
	var data []byte
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("%s.Scan: expected []byte, got %T", name, src)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}

// Tags is an ordered set of trimmed, non-empty labels.
type Tags []string

// ParseTags splits a comma-delimited string into Tags.
func ParseTags(s string) Tags {
	return NormaliseTags(strings.Split(s, ","))
}

// NormaliseTags trims every tag and drops empties and repeats, keeping order.
func NormaliseTags(in []string) Tags {
	out := make(Tags, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// UnmarshalJSON accepts either an array of strings or a comma-delimited string.
func (t *Tags) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = ParseTags(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return fmt.Errorf("tags must be a string or an array of strings")
	}
	*t = NormaliseTags(arr)
	return nil
}

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	return jsonValue("Tags", []string(t))
}

func (t *Tags) Scan(src interface{}) error {
	var arr []string
	if err := jsonScan("Tags", src, &arr); err != nil {
		return err
	}
	*t = Tags(arr)
	if *t == nil {
		*t = Tags{}
	}
	return nil
}

// Dimensions are the pixel size of an image.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) Value() (driver.Value, error) { return jsonValue("Dimensions", d) }
func (d *Dimensions) Scan(src interface{}) error  { return jsonScan("Dimensions", src, d) }

// MediaMetadata is free-form shooting information attached to a media.
type MediaMetadata struct {
	Camera       string `json:"camera,omitempty"`
	Location     string `json:"location,omitempty"`
	Photographer string `json:"photographer,omitempty"`
	Event        string `json:"event,omitempty"`
}

// ParseMediaMetadata decodes a JSON object string. An empty string yields the zero value.
func ParseMediaMetadata(s string) (MediaMetadata, error) {
	var m MediaMetadata
	if strings.TrimSpace(s) == "" {
		return m, nil
	}
	type plain MediaMetadata
	if err := json.Unmarshal([]byte(s), (*plain)(&m)); err != nil {
		return MediaMetadata{}, fmt.Errorf("metadata is not a valid JSON object: %w", err)
	}
	return m, nil
}

// UnmarshalJSON accepts either an object or a string holding a JSON object.
func (m *MediaMetadata) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := ParseMediaMetadata(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	type plain MediaMetadata
	return json.Unmarshal(b, (*plain)(m))
}

func (m MediaMetadata) Value() (driver.Value, error) { return jsonValue("MediaMetadata", m) }
func (m *MediaMetadata) Scan(src interface{}) error {
	type plain MediaMetadata
	return jsonScan("MediaMetadata", src, (*plain)(m))
}

// ParseTime accepts RFC3339 timestamps and YYYY-MM-DD dates (midnight UTC).
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither an RFC3339 timestamp nor a YYYY-MM-DD date", s)
	}
	return t, nil
}

// FlexTime is a time decoded from JSON with ParseTime.
type FlexTime time.Time

func (f FlexTime) Time() time.Time { return time.Time(f) }

func (f FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(f).UTC().Format(time.RFC3339Nano))
}

func (f *FlexTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("dates must be strings: %w", err)
	}
	t, err := ParseTime(s)
	if err != nil {
		return err
	}
	*f = FlexTime(t)
	return nil
}
