package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/haukened/rr-zone/internal/dns/repos/zone"
	"github.com/haukened/rr-zone/internal/dns/services/zonefile"
)

// envPrefix is stripped from every environment variable before mapping.
const envPrefix = "ZONE_"

// AppConfig is the full runtime configuration of the rr-zone tool.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	Log LoggingConfig `koanf:"log"`

	// Mode selects the operation run by the command. import, export, find,
	// list and delete work on the zone archive.
	Mode string `koanf:"mode" validate:"required,oneof=parse generate check import export find list delete"`

	IO      IOConfig      `koanf:"io"`
	Zone    ZoneConfig    `koanf:"zone"`
	Archive ArchiveConfig `koanf:"archive"`
}

// LoggingConfig controls log verbosity: "debug", "info", "warn", or "error".
type LoggingConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// IOConfig names where input is read and output written. An empty path
// means stdin or stdout respectively.
type IOConfig struct {
	Input   string `koanf:"input"`
	Output  string `koanf:"output"`
	Format  string `koanf:"format" validate:"required,oneof=json yaml toml"`
	Flatten bool   `koanf:"flatten"`
}

// ZoneConfig carries the parse and generate options. Name is the owner
// name looked up by find. FieldMap is inline JSON or a record file path,
// read by Load into the generator's field map.
type ZoneConfig struct {
	Origin          string `koanf:"origin" validate:"omitempty,domain_name"`
	Name            string `koanf:"name" validate:"omitempty,max=253"`
	TTL             uint32 `koanf:"ttl" validate:"required"`
	PreserveSpacing bool   `koanf:"preserve_spacing"`
	KeepTrailingDot bool   `koanf:"keep_trailing_dot"`
	KeepComments    bool   `koanf:"keep_comments"`
	KeepHeaders     bool   `koanf:"keep_headers"`
	KeepDirectives  bool   `koanf:"keep_directives"`
	Tool            string `koanf:"tool" validate:"required,max=128"`
	FieldMap        string `koanf:"field_map"`

	fields zonefile.FieldMap
}

// ArchiveConfig configures the zone archive used by the archive modes.
// An empty DB keeps the archive in memory.
type ArchiveConfig struct {
	DB     string      `koanf:"db"`
	Cache  CacheConfig `koanf:"cache"`
	FPRate float64     `koanf:"fp_rate" validate:"gt=0,lt=1"`
}

// CacheConfig sizes an LRU cache; zero disables it.
type CacheConfig struct {
	Size int `koanf:"size" validate:"gte=0"`
}

// DEFAULT_APP_CONFIG defines the defaults applied before the environment is read.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:  "prod",
	Log:  LoggingConfig{Level: "info"},
	Mode: "parse",
	IO: IOConfig{
		Format: "json",
	},
	Zone: ZoneConfig{
		TTL:             3600,
		PreserveSpacing: true,
		KeepTrailingDot: true,
		KeepComments:    true,
		KeepDirectives:  true,
		Tool:            zonefile.DefaultTool,
	},
	Archive: ArchiveConfig{
		Cache:  CacheConfig{Size: 128},
		FPRate: 0.01,
	},
}

// envKeys maps environment variable names, without the prefix, to config paths.
var envKeys = map[string]string{
	"ENV":                   "env",
	"LOG_LEVEL":             "log.level",
	"MODE":                  "mode",
	"INPUT":                 "io.input",
	"OUTPUT":                "io.output",
	"FORMAT":                "io.format",
	"FLATTEN":               "io.flatten",
	"ORIGIN":                "zone.origin",
	"NAME":                  "zone.name",
	"TTL":                   "zone.ttl",
	"PRESERVE_SPACING":      "zone.preserve_spacing",
	"KEEP_TRAILING_DOT":     "zone.keep_trailing_dot",
	"KEEP_COMMENTS":         "zone.keep_comments",
	"KEEP_HEADERS":          "zone.keep_headers",
	"KEEP_DIRECTIVES":       "zone.keep_directives",
	"TOOL":                  "zone.tool",
	"FIELD_MAP":             "zone.field_map",
	"ARCHIVE_DB":            "archive.db",
	"ARCHIVE_CACHE_SIZE":    "archive.cache.size",
	"ARCHIVE_BLOOM_FP_RATE": "archive.fp_rate",
}

// envLoader loads environment variables with the prefix "ZONE_".
// Unknown variables are ignored. It can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			path, ok := envKeys[strings.ToUpper(strings.TrimPrefix(key, envPrefix))]
			if !ok {
				return "", nil
			}
			return path, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG through the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation adds the "domain_name" tag used by ZoneConfig.Origin.
var registerValidation = func(v *validator.Validate) error {
	return zonefile.RegisterValidations(v)
}

// fieldMapLoader reads ZoneConfig.FieldMap. It can be mocked in tests.
var fieldMapLoader = zone.LoadFieldMap

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	err = registerValidation(validate)
	if err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cfg.Zone.fields, err = fieldMapLoader(cfg.Zone.FieldMap)
	if err != nil {
		return nil, fmt.Errorf("error loading field map: %w", err)
	}

	return &cfg, nil
}

// ParseOptions builds the zone file parser options from the config.
func (c *AppConfig) ParseOptions() zonefile.ParseOptions {
	opts := zonefile.DefaultParseOptions()
	opts.PreserveSpacing = c.Zone.PreserveSpacing
	opts.KeepTrailingDot = c.Zone.KeepTrailingDot
	opts.Origin = c.Zone.Origin
	opts.DefaultTTL = c.Zone.TTL
	return opts
}

// GenerateOptions builds the zone file generator options from the config.
func (c *AppConfig) GenerateOptions() zonefile.GenerateOptions {
	opts := zonefile.DefaultGenerateOptions()
	opts.Origin = c.Zone.Origin
	opts.TTL = c.Zone.TTL
	opts.KeepComments = c.Zone.KeepComments
	opts.KeepHeaders = c.Zone.KeepHeaders
	opts.KeepDirectives = c.Zone.KeepDirectives
	opts.Tool = c.Zone.Tool
	opts.FieldMap = c.Zone.fields
	return opts
}
