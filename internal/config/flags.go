package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress is a flag.Value accepting listen addresses.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (postgres, sqlite)
//	-migrate apply migrations on startup
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-log-level minimal log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-taxonomy-url remote taxonomy service url
//	-taxonomy-timeout remote taxonomy request timeout
//	-max-service-classes service class limit
//	-max-ontology-terms ontology term limit
//	-max-life-events life event limit
//	-default-version default API version
//	-code-cache-refresh code cache refresh interval
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var migrate bool
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, logLevel string
	var requestTimeout time.Duration
	var taxonomyURL string
	var taxonomyTimeout time.Duration
	var maxServiceClasses, maxOntologyTerms, maxLifeEvents, defaultVersion int
	var codeCacheRefresh time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres, sqlite)")
	flag.BoolVar(&migrate, "migrate", false, "Apply migrations on startup")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&taxonomyURL, "taxonomy-url", "", "Remote taxonomy service URL")
	flag.DurationVar(&taxonomyTimeout, "taxonomy-timeout", 0, "Remote taxonomy request timeout")
	flag.IntVar(&maxServiceClasses, "max-service-classes", 0, "Maximum number of service classes")
	flag.IntVar(&maxOntologyTerms, "max-ontology-terms", 0, "Maximum number of ontology terms")
	flag.IntVar(&maxLifeEvents, "max-life-events", 0, "Maximum number of life events")
	flag.IntVar(&defaultVersion, "default-version", 0, "Default API version")
	flag.DurationVar(&codeCacheRefresh, "code-cache-refresh", 0, "Code cache refresh interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			LogLevel:     logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver:  databaseDriver,
				DSN:     databaseDSN,
				Migrate: migrate,
			},
		},
		Adapter: Adapter{
			TaxonomyURL:    taxonomyURL,
			RequestTimeout: taxonomyTimeout,
		},
		Validation: Validation{
			MaxServiceClasses: maxServiceClasses,
			MaxOntologyTerms:  maxOntologyTerms,
			MaxLifeEvents:     maxLifeEvents,
			DefaultVersion:    defaultVersion,
		},
		Workers: Workers{
			CodeCacheRefreshInterval: codeCacheRefresh,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the address as host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP
// literal (IPv6 in brackets); the port must lie in 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port '%s': %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d is out of range 1-65535", port)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("host '%s' is neither localhost nor an IP address", host)
	}

	a.Host = host
	a.Port = port
	return nil
}
