package eqdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/quarm-tools/craftbot/internal/domain"
	"github.com/quarm-tools/craftbot/internal/logger"
	"github.com/quarm-tools/craftbot/internal/metrics"
)

// API endpoints relative to the configured base URL
const (
	endpointItems  = "/items"
	endpointTrades = "/trades"
)

// Client talks to an eqdb-style JSON API. It is stateless apart from the
// shared connection pool and safe for concurrent use. Lookups are never
// retried and never cached.
type Client struct {
	http        *resty.Client
	concurrency int
}

// NewClient creates a catalog client for the given API base URL.
// concurrency bounds the fan-out of nested item-name lookups per recipe.
func NewClient(baseURL string, timeout time.Duration, concurrency int) *Client {
	if concurrency < 1 {
		concurrency = 1
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "craftbot/1.0")

	return &Client{
		http:        httpClient,
		concurrency: concurrency,
	}
}

// get performs a single GET against the API. Lookup failure is an ordinary,
// expected outcome: network faults, non-200 statuses and undecodable bodies
// are logged and reported as ok=false, never as an error to the caller.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string) ([]byte, bool) {
	log := logger.FromContext(ctx)
	metrics.LookupsTotal.WithLabelValues(endpoint).Inc()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		metrics.LookupErrors.WithLabelValues(endpoint).Inc()
		log.Error("eqdb request failed", "endpoint", endpoint, "error", err)
		return nil, false
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return resp.Body(), true
	case http.StatusNotFound:
		log.Info("eqdb resource not found", "endpoint", endpoint)
		return nil, false
	case http.StatusTooManyRequests:
		log.Warn("eqdb rate limited", "endpoint", endpoint)
		return nil, false
	default:
		metrics.LookupErrors.WithLabelValues(endpoint).Inc()
		log.Warn("eqdb request returned unexpected status", "endpoint", endpoint, "status", resp.StatusCode())
		return nil, false
	}
}

// itemPayload normalizes the three response shapes the items endpoint is
// known to return: a bare array of items, an {"items": [...]} envelope, or a
// single item object. The ambiguity is resolved here, once, so callers only
// ever see a flat list.
type itemPayload struct {
	refs []domain.ItemRef
}

func (p *itemPayload) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty payload")
	}

	switch data[0] {
	case '[':
		return json.Unmarshal(data, &p.refs)
	case '{':
		var envelope struct {
			Items *[]domain.ItemRef `json:"items"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return err
		}
		if envelope.Items != nil {
			p.refs = *envelope.Items
			return nil
		}
		// No wrapper marker: the object is the item itself.
		var ref domain.ItemRef
		if err := json.Unmarshal(data, &ref); err != nil {
			return err
		}
		p.refs = []domain.ItemRef{ref}
		return nil
	default:
		return fmt.Errorf("unexpected payload shape: %.40s", data)
	}
}

// SearchByName searches the catalog for an item by name. The first match
// wins when the search returns several. A false result means "not found" and
// is never an error condition.
func (c *Client) SearchByName(ctx context.Context, name string) (*domain.ItemRef, bool) {
	log := logger.FromContext(ctx)
	log.Info("searching item by name", "name", name)

	body, ok := c.get(ctx, endpointItems, map[string]string{"name": name})
	if !ok {
		return nil, false
	}

	var payload itemPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Warn("unexpected response format for item search", "name", name, "error", err)
		return nil, false
	}
	if len(payload.refs) == 0 {
		log.Info("no items found", "name", name)
		return nil, false
	}

	log.Info("item search matched", "name", name, "count", len(payload.refs))
	return &payload.refs[0], true
}

// GetByID looks up a single item by its catalog ID.
func (c *Client) GetByID(ctx context.Context, itemID string) (*domain.ItemRef, bool) {
	log := logger.FromContext(ctx)
	log.Debug("looking up item by id", "item_id", itemID)

	body, ok := c.get(ctx, endpointItems, map[string]string{"id": itemID})
	if !ok {
		return nil, false
	}

	var payload itemPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Warn("unexpected response format for item lookup", "item_id", itemID, "error", err)
		return nil, false
	}
	if len(payload.refs) == 0 {
		log.Debug("no item for id", "item_id", itemID)
		return nil, false
	}

	return &payload.refs[0], true
}
