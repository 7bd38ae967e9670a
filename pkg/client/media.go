package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
)

func (c *Client) ListMedia(ctx context.Context, p ListMediaParams) (*MediaPage, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Type != "" {
		q.Set("type", string(p.Type))
	}
	if p.Category != "" {
		q.Set("category", string(p.Category))
	}
	if p.Featured {
		q.Set("featured", "true")
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}

	var out MediaPage
	if err := c.doJSON(ctx, http.MethodGet, "/media"+encodeQuery(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMedia(ctx context.Context, id ID) (*Media, error) {
	var out Media
	if err := c.doJSON(ctx, http.MethodGet, "/media/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadMedia(ctx context.Context, p UploadMediaParams) (*Media, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	if err := writeFilePart(mw, "media", p.File); err != nil {
		return nil, err
	}
	if p.Thumbnail != nil {
		if err := writeFilePart(mw, "thumbnail", *p.Thumbnail); err != nil {
			return nil, err
		}
	}
	fields := map[string]string{
		"title":       p.Title,
		"description": p.Description,
		"category":    string(p.Category),
		"tags":        strings.Join(p.Tags, ","),
	}
	if p.Metadata != nil {
		b, err := json.Marshal(p.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encode metadata: %w", err)
		}
		fields["metadata"] = string(b)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var out mediaEnvelope
	if err := c.do(ctx, http.MethodPost, "/media/upload", body, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return out.Media, nil
}

func writeFilePart(mw *multipart.Writer, field string, f FilePart) error {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.Filename))
	h.Set("Content-Type", f.ContentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(f.Data)
	return err
}

func (c *Client) UpdateMedia(ctx context.Context, id ID, patch MediaPatch) (*Media, error) {
	var out mediaEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/media/"+id.String(), patch, &out); err != nil {
		return nil, err
	}
	return out.Media, nil
}

func (c *Client) DeleteMedia(ctx context.Context, id ID) error {
	return c.doJSON(ctx, http.MethodDelete, "/media/"+id.String(), nil, nil)
}

func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
