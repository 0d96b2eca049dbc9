package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
)

// Storage drivers.
const (
	StorageDriverS3   = "s3"
	StorageDriverFile = "file"
	StorageDriverMem  = "mem"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migration controls the embedded schema migrations.
	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Fetch *FetchConfig `json:"fetch" yaml:"fetch"`

	Gallery *GalleryConfig `json:"gallery" yaml:"gallery"`

	Assets *AssetsConfig `json:"assets" yaml:"assets"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	Housekeeping *HousekeepingConfig `json:"housekeeping" yaml:"housekeeping"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationConfig controls the goose migrations embedded in the binary.
type MigrationConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	Username          string        `json:"username" yaml:"username"`
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	SessionTTL        time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	ResetTokenTTL     time.Duration `json:"resetTokenTTL" yaml:"resetTokenTTL"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`

	// BootstrapPasswordHash is a bcrypt hash stored for Username on first start when no credential exists.
	BootstrapPasswordHash string `json:"bootstrapPasswordHash" yaml:"bootstrapPasswordHash"`

	// ExposeResetTokenWithoutMail returns the raw reset token to the caller when mail cannot be sent.
	// Never enable it where untrusted clients can reach the API.
	ExposeResetTokenWithoutMail bool `json:"exposeResetTokenWithoutMail" yaml:"exposeResetTokenWithoutMail"`

	// ResetURL is the dashboard page that accepts ?token=<reset token>.
	ResetURL string `json:"resetURL" yaml:"resetURL"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// RateLimitConfig throttles the unauthenticated auth routes per client IP.
type RateLimitConfig struct {
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// StorageConfig selects and configures the object store.
type StorageConfig struct {
	Driver          string `json:"driver" yaml:"driver"` // s3, file or mem
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	UsePathStyle    bool   `json:"usePathStyle" yaml:"usePathStyle"`

	// PublicBaseURL prefixes public object URLs as <PublicBaseURL>/<bucket>/<name>.
	PublicBaseURL string `json:"publicBaseURL" yaml:"publicBaseURL"`

	// LocalDir is the root directory of the file driver.
	LocalDir string `json:"localDir" yaml:"localDir"`

	Buckets StorageBuckets `json:"buckets" yaml:"buckets"`
}

// StorageBuckets maps logical storage areas to physical bucket names.
type StorageBuckets struct {
	Gallery string `json:"gallery" yaml:"gallery"`
	OG      string `json:"og" yaml:"og"`
	Site    string `json:"site" yaml:"site"`
}

// FetchConfig bounds outbound image downloads.
type FetchConfig struct {
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	MaxBytes  int64         `json:"maxBytes" yaml:"maxBytes"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// GalleryConfig tunes the gallery reconciler.
type GalleryConfig struct {
	ImportConcurrency int           `json:"importConcurrency" yaml:"importConcurrency"`
	OrphanGracePeriod time.Duration `json:"orphanGracePeriod" yaml:"orphanGracePeriod"`
	ListCacheMaxAge   time.Duration `json:"listCacheMaxAge" yaml:"listCacheMaxAge"`
}

// AssetsConfig limits site asset uploads.
type AssetsConfig struct {
	FaviconMaxBytes int64 `json:"faviconMaxBytes" yaml:"faviconMaxBytes"`
	OGImageMaxBytes int64 `json:"ogImageMaxBytes" yaml:"ogImageMaxBytes"`
}

// MailConfig configures the optional SMTP transport.
type MailConfig struct {
	Enable   bool   `json:"enable" yaml:"enable"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// HousekeepingConfig schedules removal of stale sessions and reset tokens.
type HousekeepingConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Interval  time.Duration `json:"interval" yaml:"interval"`
	Retention time.Duration `json:"retention" yaml:"retention"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
			cfg.Postgres.Replicas = replicas
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads a standalone YAML document (for example a seed file) into T.
func LoadFile[T any](path string) (*T, error) {
	out := new(T)
	koanfInstance := koanf.New(".")
	if err := koanfInstance.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}

	if err := koanfInstance.UnmarshalWithConf("", out, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s failed", path)
	}

	return out, nil
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

// ApplyDefaults fills every unset option with its documented default.
func (c *Config) ApplyDefaults() {
	if c.Migration == nil {
		c.Migration = &MigrationConfig{}
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.Username == "" {
		c.Auth.Username = "admin"
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = bcrypt.DefaultCost
	}
	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = 2 * time.Minute
	}
	if c.Auth.ResetTokenTTL == 0 {
		c.Auth.ResetTokenTTL = 60 * time.Minute
	}
	if c.Auth.MinPasswordLength == 0 {
		c.Auth.MinPasswordLength = 8
	}
	if c.Auth.RateLimit.RequestsPerSecond == 0 {
		c.Auth.RateLimit.RequestsPerSecond = 1
	}
	if c.Auth.RateLimit.Burst == 0 {
		c.Auth.RateLimit.Burst = 5
	}
	if c.Auth.RateLimit.ExpiresIn == 0 {
		c.Auth.RateLimit.ExpiresIn = 3 * time.Minute
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverS3
	}
	if c.Storage.Buckets.Gallery == "" {
		c.Storage.Buckets.Gallery = "gallery"
	}
	if c.Storage.Buckets.OG == "" {
		c.Storage.Buckets.OG = "og-images"
	}
	if c.Storage.Buckets.Site == "" {
		c.Storage.Buckets.Site = "site"
	}

	if c.Fetch == nil {
		c.Fetch = &FetchConfig{}
	}
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 15 * time.Second
	}
	if c.Fetch.MaxBytes == 0 {
		c.Fetch.MaxBytes = 10 << 20
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "folio-gallery-fetcher/1.0"
	}

	if c.Gallery == nil {
		c.Gallery = &GalleryConfig{}
	}
	if c.Gallery.ImportConcurrency <= 0 {
		c.Gallery.ImportConcurrency = 1
	}
	if c.Gallery.OrphanGracePeriod == 0 {
		c.Gallery.OrphanGracePeriod = time.Hour
	}
	if c.Gallery.ListCacheMaxAge == 0 {
		c.Gallery.ListCacheMaxAge = time.Hour
	}

	if c.Assets == nil {
		c.Assets = &AssetsConfig{}
	}
	if c.Assets.FaviconMaxBytes == 0 {
		c.Assets.FaviconMaxBytes = 100 << 10
	}
	if c.Assets.OGImageMaxBytes == 0 {
		c.Assets.OGImageMaxBytes = 5 << 20
	}

	if c.Mail == nil {
		c.Mail = &MailConfig{}
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}

	if c.Housekeeping == nil {
		c.Housekeeping = &HousekeepingConfig{}
	}
	if c.Housekeeping.Interval == 0 {
		c.Housekeeping.Interval = 10 * time.Minute
	}
	if c.Housekeeping.Retention == 0 {
		c.Housekeeping.Retention = 24 * time.Hour
	}
}

// Validate rejects option combinations the service cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverS3:
		if c.Storage.Region == "" {
			return errors.New("storage.region is required for the s3 driver")
		}
	case StorageDriverFile:
		if c.Storage.LocalDir == "" {
			return errors.New("storage.localDir is required for the file driver")
		}
	case StorageDriverMem:
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Auth.MinPasswordLength < 1 {
		return errors.New("auth.minPasswordLength must be positive")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return errors.Errorf("auth.bcryptCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Mail.Enable && (c.Mail.Host == "" || c.Mail.From == "") {
		return errors.New("mail.host and mail.from are required when mail is enabled")
	}

	return nil
}
