package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:   "sqlite driver",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "sqlite" },
		},
		{
			name: "no listen address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
				cfg.Server.GRPCAddress = ""
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "grpc address only",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
				cfg.Server.GRPCAddress = "localhost:9090"
			},
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "taxonomy url without timeout",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.TaxonomyURL = "http://taxonomy.local"
				cfg.Adapter.RequestTimeout = 0
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Validation.MaxLifeEvents = 0 },
			wantErr: ErrInvalidValidationConfigs,
		},
		{
			name:    "unsupported default version",
			mutate:  func(cfg *StructuredConfig) { cfg.Validation.DefaultVersion = 6 },
			wantErr: ErrInvalidValidationConfigs,
		},
		{
			name:    "zero refresh interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.CodeCacheRefreshInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.App.TokenSignKey = "secret"
			cfg.Storage.DB.DSN = "postgres://localhost/registry"
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
