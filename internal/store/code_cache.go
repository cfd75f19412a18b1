package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/models"
	"golang.org/x/sync/singleflight"
)

// CodeCache is an in-memory snapshot of the code tables. It answers the
// code lookups of the validation engine without a query per code. Until the
// first successful Refresh every lookup goes to the underlying repository.
type CodeCache struct {
	source CodeRepository
	group  singleflight.Group

	mu       sync.RWMutex
	codes    map[CodeKind]map[string]struct{}
	loadedAt time.Time

	logger *logger.Logger
}

// NewCodeCache returns an empty cache over source.
func NewCodeCache(source CodeRepository, log *logger.Logger) *CodeCache {
	return &CodeCache{source: source, logger: log}
}

// Refresh reloads the snapshot. Concurrent calls share one load. A failed
// load keeps the previous snapshot.
func (c *CodeCache) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("refresh", func() (any, error) {
		all, err := c.source.AllCodes(ctx)
		if err != nil {
			return nil, err
		}

		codes := make(map[CodeKind]map[string]struct{}, len(all))
		total := 0
		for kind, values := range all {
			set := make(map[string]struct{}, len(values))
			for _, v := range values {
				set[v] = struct{}{}
			}
			codes[kind] = set
			total += len(set)
		}

		c.mu.Lock()
		c.codes = codes
		c.loadedAt = time.Now()
		c.mu.Unlock()

		c.logger.Debug().Int("kinds", len(codes)).Int("codes", total).Msg("code cache refreshed")
		return nil, nil
	})
	if err != nil {
		c.logger.Err(err).Str("func", "*CodeCache.Refresh").Msg("error refreshing code cache")
	}
	return err
}

// LoadedAt returns the time of the last successful refresh, zero if none.
func (c *CodeCache) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

func (c *CodeCache) CountryExists(ctx context.Context, code string) (bool, error) {
	return c.lookup(ctx, CodeCountry, code, c.source.CountryExists)
}

func (c *CodeCache) MunicipalityExists(ctx context.Context, code string) (bool, error) {
	return c.lookup(ctx, CodeMunicipality, code, c.source.MunicipalityExists)
}

func (c *CodeCache) PostalCodeExists(ctx context.Context, code string) (bool, error) {
	return c.lookup(ctx, CodePostalCode, code, c.source.PostalCodeExists)
}

func (c *CodeCache) DialCodeExists(ctx context.Context, code string) (bool, error) {
	return c.lookup(ctx, CodeDialCode, code, c.source.DialCodeExists)
}

func (c *CodeCache) LanguageExists(ctx context.Context, code string) (bool, error) {
	return c.lookup(ctx, CodeLanguage, code, c.source.LanguageExists)
}

func (c *CodeCache) AreaCodeExists(ctx context.Context, areaType models.AreaType, code string) (bool, error) {
	kind, err := areaCodeKind(areaType)
	if err != nil {
		return false, err
	}
	return c.lookup(ctx, kind, code, func(ctx context.Context, code string) (bool, error) {
		return c.source.AreaCodeExists(ctx, areaType, code)
	})
}

func (c *CodeCache) lookup(ctx context.Context, kind CodeKind, code string, fallback func(context.Context, string) (bool, error)) (bool, error) {
	c.mu.RLock()
	codes := c.codes
	c.mu.RUnlock()

	if codes == nil {
		return fallback(ctx, code)
	}
	_, ok := codes[kind][code]
	return ok, nil
}
