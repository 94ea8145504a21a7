package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/gridiron-teams/internal/platform/logging"
	"github.com/riskibarqy/gridiron-teams/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	defaultESPNTeamsURL       = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/teams"
	defaultESPNStandingsURL   = "https://site.api.espn.com/apis/v2/sports/football/nfl/standings"
	defaultESPNLeagueStatsURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/statistics"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level
	SwaggerEnabled     bool

	ESPN ESPNConfig

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	PprofEnabled bool
	PprofAddr    string
}

type ESPNConfig struct {
	TeamsURL       string
	StandingsURL   string
	LeagueStatsURL string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        strings.TrimSpace(getEnv("APP_SERVICE_NAME", "gridiron-teams-api")),
		ServiceVersion:     strings.TrimSpace(getEnv("APP_SERVICE_VERSION", "dev")),
		HTTPAddr:           strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, crerr.New("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	swaggerDefault := appEnv != EnvProd
	if cfg.SwaggerEnabled, err = getEnvAsBool("SWAGGER_ENABLED", swaggerDefault); err != nil {
		return Config{}, err
	}

	if cfg.ReadTimeout, err = getEnvAsPositiveDuration("APP_READ_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.ESPN, err = loadESPN(); err != nil {
		return Config{}, err
	}
	if cfg.ESPN.Timeout >= cfg.WriteTimeout {
		return Config{}, crerr.Newf("ESPN_TIMEOUT (%s) must be shorter than APP_WRITE_TIMEOUT (%s)", cfg.ESPN.Timeout, cfg.WriteTimeout)
	}

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return Config{}, err
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, crerr.New("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = getEnvAsBool("UPTRACE_LOGS_ENABLED", true); err != nil {
		return Config{}, err
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return Config{}, err
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, crerr.New("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, crerr.New("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	if cfg.PyroscopeUploadRate, err = getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return Config{}, err
	}
	cfg.PprofAddr = strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, crerr.New("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	return cfg, nil
}

func loadESPN() (ESPNConfig, error) {
	out := ESPNConfig{
		TeamsURL:       strings.TrimSpace(getEnv("ESPN_TEAMS_URL", defaultESPNTeamsURL)),
		StandingsURL:   strings.TrimSpace(getEnv("ESPN_STANDINGS_URL", defaultESPNStandingsURL)),
		LeagueStatsURL: strings.TrimSpace(getEnv("ESPN_LEAGUE_STATS_URL", defaultESPNLeagueStatsURL)),
	}

	var err error
	if out.Timeout, err = getEnvAsPositiveDuration("ESPN_TIMEOUT", 10*time.Second); err != nil {
		return ESPNConfig{}, err
	}

	breaker := resilience.DefaultCircuitBreakerConfig()
	if breaker.Enabled, err = getEnvAsBool("ESPN_CIRCUIT_ENABLED", breaker.Enabled); err != nil {
		return ESPNConfig{}, err
	}
	if breaker.FailureThreshold, err = getEnvAsInt("ESPN_CIRCUIT_FAILURE_COUNT", breaker.FailureThreshold); err != nil {
		return ESPNConfig{}, err
	}
	if breaker.FailureThreshold < 1 {
		return ESPNConfig{}, crerr.New("ESPN_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if breaker.OpenTimeout, err = getEnvAsPositiveDuration("ESPN_CIRCUIT_OPEN_TIMEOUT", breaker.OpenTimeout); err != nil {
		return ESPNConfig{}, err
	}
	if breaker.HalfOpenMaxReq, err = getEnvAsInt("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ", breaker.HalfOpenMaxReq); err != nil {
		return ESPNConfig{}, err
	}
	if breaker.HalfOpenMaxReq < 1 {
		return ESPNConfig{}, crerr.New("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	out.CircuitBreaker = breaker

	return out, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, crerr.Wrapf(err, "parse %s", key)
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, crerr.Wrapf(err, "parse %s", key)
	}

	return out, nil
}

func getEnvAsPositiveDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, crerr.Wrapf(err, "parse %s", key)
	}
	if out <= 0 {
		return 0, crerr.Newf("%s must be > 0", key)
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", crerr.Newf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
