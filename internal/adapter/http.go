package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-registry-validator/internal/config"
	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/internal/utils"
	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/google/uuid"
)

// uriList is the request and response body of the batch endpoints.
type uriList struct {
	URIs []string `json:"uris"`
}

type httpTaxonomyAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTaxonomyAdapter constructs the REST implementation of
// [TaxonomyAdapter]. The base URL is taken from cfg.TaxonomyURL; a missing
// scheme defaults to http.
//
// Endpoints used:
//
//	POST /api/taxonomy/{kind}/missing           {"uris": [...]} -> {"uris": [...]}
//	GET  /api/taxonomy/{kind}/items?uri={uri}   TaxonomyItem, 404 when unknown
//	GET  /api/taxonomy/{kind}/items/{id}        TaxonomyItem, 404 when unknown
//	POST /api/taxonomy/ServiceClass/main        {"uris": [...]} -> {"uris": [...]}
func NewHTTPTaxonomyAdapter(cfg config.Adapter, log *logger.Logger) (TaxonomyAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.TaxonomyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	return &httpTaxonomyAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpTaxonomyAdapter) NotExistingURIs(ctx context.Context, kind models.TaxonomyKind, uris []string) ([]string, error) {
	if len(uris) == 0 {
		return nil, nil
	}
	return h.postURIs(ctx, "/api/taxonomy/{kind}/missing", kind, uris)
}

func (h *httpTaxonomyAdapter) MainServiceClasses(ctx context.Context, uris []string) ([]string, error) {
	if len(uris) == 0 {
		return nil, nil
	}
	return h.postURIs(ctx, "/api/taxonomy/{kind}/main", models.TaxonomyServiceClass, uris)
}

// TaxonomyItem returns nil when the service does not know uri.
func (h *httpTaxonomyAdapter) TaxonomyItem(ctx context.Context, kind models.TaxonomyKind, uri string) (*models.TaxonomyItem, error) {
	var item models.TaxonomyItem

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("kind", string(kind)).
		SetQueryParam("uri", uri).
		SetResult(&item).
		Get("/api/taxonomy/{kind}/items")
	if err != nil {
		return nil, fmt.Errorf("taxonomy item request: %w", err)
	}

	return h.itemResult(ctx, &item, mapHTTPError(resp))
}

// TaxonomyItemByID returns nil when the service does not know id.
func (h *httpTaxonomyAdapter) TaxonomyItemByID(ctx context.Context, kind models.TaxonomyKind, id uuid.UUID) (*models.TaxonomyItem, error) {
	var item models.TaxonomyItem

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"kind": string(kind), "id": id.String()}).
		SetResult(&item).
		Get("/api/taxonomy/{kind}/items/{id}")
	if err != nil {
		return nil, fmt.Errorf("taxonomy item by id request: %w", err)
	}

	return h.itemResult(ctx, &item, mapHTTPError(resp))
}

func (h *httpTaxonomyAdapter) itemResult(ctx context.Context, item *models.TaxonomyItem, err error) (*models.TaxonomyItem, error) {
	switch {
	case errors.Is(err, ErrNotFound):
		return nil, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*httpTaxonomyAdapter.itemResult").Msg("taxonomy service error")
		return nil, err
	}
	return item, nil
}

func (h *httpTaxonomyAdapter) postURIs(ctx context.Context, path string, kind models.TaxonomyKind, uris []string) ([]string, error) {
	var result uriList

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("kind", string(kind)).
		SetHeader("Content-Type", "application/json").
		SetBody(uriList{URIs: uris}).
		SetResult(&result).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpTaxonomyAdapter.postURIs").Str("kind", string(kind)).Msg("taxonomy service error")
		return nil, err
	}

	return result.URIs, nil
}
