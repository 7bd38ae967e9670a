package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

func (c *Client) ListEvents(ctx context.Context, p ListEventsParams) ([]*Event, error) {
	q := url.Values{}
	if p.StartDate != nil {
		q.Set("startDate", p.StartDate.UTC().Format(time.RFC3339))
	}
	if p.EndDate != nil {
		q.Set("endDate", p.EndDate.UTC().Format(time.RFC3339))
	}
	if p.Month > 0 {
		q.Set("month", strconv.Itoa(p.Month))
	}
	if p.Year > 0 {
		q.Set("year", strconv.Itoa(p.Year))
	}
	if p.Type != "" {
		q.Set("type", string(p.Type))
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}

	var out []*Event
	if err := c.doJSON(ctx, http.MethodGet, "/calendar"+encodeQuery(q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMonthlyEvents(ctx context.Context, year, month int) ([]*Event, error) {
	var out []*Event
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/calendar/month/%d/%d", year, month), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUpcomingEvents(ctx context.Context, limit int) ([]*Event, error) {
	var out []*Event
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/calendar/upcoming/limit/%d", limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id ID) (*Event, error) {
	var out Event
	if err := c.doJSON(ctx, http.MethodGet, "/calendar/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, in NewEvent) (*Event, error) {
	var out eventEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/calendar", in, &out); err != nil {
		return nil, err
	}
	return out.Event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id ID, patch EventPatch) (*Event, error) {
	var out eventEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/calendar/"+id.String(), patch, &out); err != nil {
		return nil, err
	}
	return out.Event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id ID) error {
	return c.doJSON(ctx, http.MethodDelete, "/calendar/"+id.String(), nil, nil)
}
