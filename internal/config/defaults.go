package config

import "time"

// Defaults returns the built-in configuration. It has no DSN and no token
// sign key, so it does not pass validation on its own.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: "registry",
			LogLevel:    "debug",
			Version:     "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{Driver: "postgres"},
		},
		Adapter: Adapter{
			RequestTimeout: 5 * time.Second,
		},
		Validation: Validation{
			MaxServiceClasses: 4,
			MaxOntologyTerms:  10,
			MaxLifeEvents:     4,
			DefaultVersion:    11,
		},
		Workers: Workers{
			CodeCacheRefreshInterval: 5 * time.Minute,
		},
	}
}
