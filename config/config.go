package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// Config holds everything needed to bootstrap an instance.
type Config struct {
	Application ApplicationConfig `mapstructure:"application"`
	Extensions  ExtensionsConfig  `mapstructure:"extensions"`
	System      SystemConfig      `mapstructure:"system"`
	Frame       FrameConfig       `mapstructure:"frame"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ApplicationConfig is copied into the instance create info.
type ApplicationConfig struct {
	Name          string `mapstructure:"name"`
	Version       uint32 `mapstructure:"version"`
	EngineName    string `mapstructure:"engine_name"`
	EngineVersion uint32 `mapstructure:"engine_version"`
	// APIVersion is "major.minor.patch"; empty means the facade default.
	APIVersion string `mapstructure:"api_version"`
}

// ExtensionsConfig lists the extensions to enable. Required ones must be
// advertised by the runtime; optional ones are enabled when they are.
type ExtensionsConfig struct {
	Required []string `mapstructure:"required"`
	Optional []string `mapstructure:"optional"`
}

type SystemConfig struct {
	// FormFactor is "hmd" or "handheld".
	FormFactor string `mapstructure:"form_factor"`
	// ViewConfiguration is "stereo" or "mono".
	ViewConfiguration string `mapstructure:"view_configuration"`
	// BlendMode is "opaque", "additive" or "alpha_blend".
	BlendMode string `mapstructure:"blend_mode"`
}

type FrameConfig struct {
	// SwapchainWaitTimeoutMs bounds WaitImage. 0 means wait forever.
	SwapchainWaitTimeoutMs int `mapstructure:"swapchain_wait_timeout_ms"`
	// ReferenceSpace is "view", "local", "stage" or "local_floor".
	ReferenceSpace string `mapstructure:"reference_space"`
}

type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name:       "openxr-app",
			Version:    1,
			EngineName: "openxr-go",
		},
		Extensions: ExtensionsConfig{
			Required: []string{},
			Optional: []string{},
		},
		System: SystemConfig{
			FormFactor:        "hmd",
			ViewConfiguration: "stereo",
			BlendMode:         "opaque",
		},
		Frame: FrameConfig{
			SwapchainWaitTimeoutMs: 100,
			ReferenceSpace:         "local",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("application.name", defaults.Application.Name)
	v.SetDefault("application.version", defaults.Application.Version)
	v.SetDefault("application.engine_name", defaults.Application.EngineName)
	v.SetDefault("application.engine_version", defaults.Application.EngineVersion)
	v.SetDefault("application.api_version", defaults.Application.APIVersion)

	v.SetDefault("extensions.required", defaults.Extensions.Required)
	v.SetDefault("extensions.optional", defaults.Extensions.Optional)

	v.SetDefault("system.form_factor", defaults.System.FormFactor)
	v.SetDefault("system.view_configuration", defaults.System.ViewConfiguration)
	v.SetDefault("system.blend_mode", defaults.System.BlendMode)

	v.SetDefault("frame.swapchain_wait_timeout_ms", defaults.Frame.SwapchainWaitTimeoutMs)
	v.SetDefault("frame.reference_space", defaults.Frame.ReferenceSpace)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.development", defaults.Logging.Development)
}

// EnvPrefix is the prefix of environment overrides, e.g.
// OPENXR_APPLICATION_NAME or OPENXR_EXTENSIONS_REQUIRED=XR_A,XR_B.
const EnvPrefix = "OPENXR"

// New returns a viper instance with defaults and environment overrides
// registered.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (YAML, TOML or JSON by extension) over the defaults and
// environment, then validates. An empty path loads defaults and
// environment only.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Config("read "+path, err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Config("decode", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.Config("invalid configuration", ValidationErrors(errs))
	}
	return &cfg, nil
}

// FormFactorValue returns the configured form factor. Unknown names map
// to zero; Validate reports them.
func (c *SystemConfig) FormFactorValue() abi.FormFactor {
	v, _ := abi.ParseFormFactor(c.FormFactor)
	return v
}

func (c *SystemConfig) ViewConfigurationValue() abi.ViewConfigurationType {
	v, _ := abi.ParseViewConfigurationType(c.ViewConfiguration)
	return v
}

func (c *SystemConfig) BlendModeValue() abi.EnvironmentBlendMode {
	v, _ := abi.ParseEnvironmentBlendMode(c.BlendMode)
	return v
}

func (c *FrameConfig) ReferenceSpaceValue() abi.ReferenceSpaceType {
	v, _ := abi.ParseReferenceSpaceType(c.ReferenceSpace)
	return v
}

// SwapchainWaitTimeout returns the wait timeout as a time.Duration (0 means no limit)
func (c *FrameConfig) SwapchainWaitTimeout() time.Duration {
	return time.Duration(c.SwapchainWaitTimeoutMs) * time.Millisecond
}

// WaitTimeout returns the timeout to pass to Swapchain.WaitImage.
func (c *FrameConfig) WaitTimeout() abi.Duration {
	if c.SwapchainWaitTimeoutMs <= 0 {
		return abi.InfiniteDuration
	}
	return abi.Duration(c.SwapchainWaitTimeout().Nanoseconds())
}

// APIVersionValue parses APIVersion. Empty yields zero, which asks for
// the facade default.
func (c *ApplicationConfig) APIVersionValue() (abi.Version, error) {
	if c.APIVersion == "" {
		return 0, nil
	}
	return abi.ParseVersion(c.APIVersion)
}

// Build creates a zap logger from the logging section.
func (c *LoggingConfig) Build() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Config("logging.level", err)
	}
	var zc zap.Config
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
