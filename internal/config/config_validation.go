// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-registry-validator/internal/validators"
)

// validate checks that the merged [StructuredConfig] can start the service.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if db.Driver != "" && db.Driver != "postgres" && db.Driver != "sqlite" {
		return fmt.Errorf("%w: unknown driver '%s'", ErrInvalidStorageConfigs, db.Driver)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.TaxonomyURL != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	v := cfg.Validation
	if v.MaxServiceClasses <= 0 || v.MaxOntologyTerms <= 0 || v.MaxLifeEvents <= 0 {
		return fmt.Errorf("%w: limits must be positive", ErrInvalidValidationConfigs)
	}
	if v.DefaultVersion < validators.MinVersion || v.DefaultVersion > validators.MaxVersion {
		return fmt.Errorf("%w: default version %d is not supported", ErrInvalidValidationConfigs, v.DefaultVersion)
	}

	if cfg.Workers.CodeCacheRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
