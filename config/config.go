package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

// Session store backends.
const (
	SessionStoreCookie = "cookie"
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API configures the remote autoparts API client
	API APIConfig `json:"api" yaml:"api"`

	// Session configures where browser credentials are kept
	Session SessionConfig `json:"session" yaml:"session"`

	// Redis is required only when session.store is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Routes classifies page paths for the route guard
	Routes RoutesConfig `json:"routes" yaml:"routes"`

	// Guard tunes anonymous session provisioning
	Guard GuardConfig `json:"guard" yaml:"guard"`

	// Auth tunes the login flow
	Auth AuthConfig `json:"auth" yaml:"auth"`
}

// APIConfig defines the remote API endpoint and client timeouts
type APIConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Prefix  string `json:"prefix" yaml:"prefix"`

	// Per-request timeout for every outbound call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Timeout of the shared refresh call, detached from the caller
	RefreshTimeout time.Duration `json:"refreshTimeout" yaml:"refreshTimeout"`

	// How long a finished refresh can be adopted by late callers holding the rotated-away token
	RefreshReuseWindow time.Duration `json:"refreshReuseWindow" yaml:"refreshReuseWindow"`
}

// SessionConfig defines token persistence
type SessionConfig struct {
	// Backend: "cookie" (default), "memory" or "redis"
	Store string `json:"store" yaml:"store"`

	SecureCookies         bool          `json:"secureCookies" yaml:"secureCookies"`
	CookieDomain          string        `json:"cookieDomain" yaml:"cookieDomain"`
	RefreshTokenTTL       time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
	DefaultAccessTokenTTL time.Duration `json:"defaultAccessTokenTtl" yaml:"defaultAccessTokenTtl"`
	ProjectionTTL         time.Duration `json:"projectionTtl" yaml:"projectionTtl"`
	LoginFlowTTL          time.Duration `json:"loginFlowTtl" yaml:"loginFlowTtl"`
	KeyPrefix             string        `json:"keyPrefix" yaml:"keyPrefix"`
}

// RedisConfig defines the redis connection for server-side sessions
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RoutesConfig defines page path classes
type RoutesConfig struct {
	LoginPath string   `json:"loginPath" yaml:"loginPath"`
	HomePath  string   `json:"homePath" yaml:"homePath"`
	AdminPath string   `json:"adminPath" yaml:"adminPath"`
	Protected []string `json:"protected" yaml:"protected"`
	AuthOnly  []string `json:"authOnly" yaml:"authOnly"`
	Skip      []string `json:"skip" yaml:"skip"`
}

// GuardConfig defines route guard behaviour
type GuardConfig struct {
	ProvisionAnonymous bool          `json:"provisionAnonymous" yaml:"provisionAnonymous"`
	AnonymousTimeout   time.Duration `json:"anonymousTimeout" yaml:"anonymousTimeout"`
}

// AuthConfig defines login flow behaviour
type AuthConfig struct {
	// Show the code returned by non-production APIs on the login page
	ExposeDevCode bool `json:"exposeDevCode" yaml:"exposeDevCode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// A missing .env is normal outside local development
	_ = godotenv.Load()

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment overrides, e.g. API_BASEURL -> api.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every unset value with the production default.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 3001
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:4000"
	}
	if cfg.API.Prefix == "" {
		cfg.API.Prefix = "/api/v1"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	if cfg.API.RefreshTimeout == 0 {
		cfg.API.RefreshTimeout = 10 * time.Second
	}
	if cfg.API.RefreshReuseWindow == 0 {
		cfg.API.RefreshReuseWindow = 10 * time.Second
	}

	if cfg.Session.Store == "" {
		cfg.Session.Store = SessionStoreCookie
	}
	if cfg.Session.RefreshTokenTTL == 0 {
		cfg.Session.RefreshTokenTTL = 90 * 24 * time.Hour
	}
	if cfg.Session.DefaultAccessTokenTTL == 0 {
		cfg.Session.DefaultAccessTokenTTL = 15 * time.Minute
	}
	if cfg.Session.ProjectionTTL == 0 {
		cfg.Session.ProjectionTTL = 24 * time.Hour
	}
	if cfg.Session.LoginFlowTTL == 0 {
		cfg.Session.LoginFlowTTL = 15 * time.Minute
	}
	if cfg.Session.KeyPrefix == "" {
		cfg.Session.KeyPrefix = "autoparts:session:"
	}

	if cfg.Routes.LoginPath == "" {
		cfg.Routes.LoginPath = "/login"
	}
	if cfg.Routes.HomePath == "" {
		cfg.Routes.HomePath = "/"
	}
	if cfg.Routes.AdminPath == "" {
		cfg.Routes.AdminPath = "/admin"
	}
	if cfg.Routes.Protected == nil {
		cfg.Routes.Protected = []string{"/admin", "/profile"}
	}
	if cfg.Routes.AuthOnly == nil {
		cfg.Routes.AuthOnly = []string{cfg.Routes.LoginPath}
	}
	if cfg.Routes.Skip == nil {
		cfg.Routes.Skip = []string{"/health", "/metrics", "/static", "/favicon.ico"}
	}

	if cfg.Guard.AnonymousTimeout == 0 {
		cfg.Guard.AnonymousTimeout = 3 * time.Second
	}
}

// Validate rejects combinations the process cannot start with.
func (cfg *Config) Validate() error {
	switch cfg.Session.Store {
	case SessionStoreCookie, SessionStoreMemory:
	case SessionStoreRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return errors.New("redis.addr is required when session.store is redis")
		}
	default:
		return errors.Errorf("unknown session store: %s", cfg.Session.Store)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
