package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.System.FormFactorValue() != abi.FormFactorHeadMountedDisplay {
		t.Errorf("FormFactor = %q, want hmd", cfg.System.FormFactor)
	}
	if cfg.System.ViewConfigurationValue() != abi.ViewConfigurationPrimaryStereo {
		t.Errorf("ViewConfiguration = %q, want stereo", cfg.System.ViewConfiguration)
	}
	if cfg.System.BlendModeValue() != abi.BlendModeOpaque {
		t.Errorf("BlendMode = %q, want opaque", cfg.System.BlendMode)
	}
	if cfg.Frame.SwapchainWaitTimeout() != 100*time.Millisecond {
		t.Errorf("SwapchainWaitTimeout = %v, want 100ms", cfg.Frame.SwapchainWaitTimeout())
	}
	if cfg.Frame.ReferenceSpaceValue() != abi.ReferenceSpaceLocal {
		t.Errorf("ReferenceSpace = %q, want local", cfg.Frame.ReferenceSpace)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default config should validate, got %v", ValidationErrors(errs))
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openxr.yaml")
	content := `
application:
  name: viewer
  api_version: 1.0.30
extensions:
  required: [XR_KHR_vulkan_enable]
  optional: [XR_FB_passthrough]
system:
  blend_mode: alpha_blend
frame:
  swapchain_wait_timeout_ms: 0
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Application.Name != "viewer" {
		t.Errorf("Application.Name = %q, want viewer", cfg.Application.Name)
	}
	v, err := cfg.Application.APIVersionValue()
	if err != nil || v != abi.MakeVersion(1, 0, 30) {
		t.Errorf("APIVersionValue = %v, %v; want 1.0.30", v, err)
	}
	if len(cfg.Extensions.Required) != 1 || cfg.Extensions.Required[0] != "XR_KHR_vulkan_enable" {
		t.Errorf("Extensions.Required = %v", cfg.Extensions.Required)
	}
	if cfg.System.BlendModeValue() != abi.BlendModeAlphaBlend {
		t.Errorf("BlendMode = %q", cfg.System.BlendMode)
	}
	// Unset keys keep their defaults
	if cfg.System.FormFactor != "hmd" {
		t.Errorf("FormFactor = %q, want default hmd", cfg.System.FormFactor)
	}
	if cfg.Frame.WaitTimeout() != abi.InfiniteDuration {
		t.Errorf("WaitTimeout = %v, want infinite", cfg.Frame.WaitTimeout())
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("OPENXR_APPLICATION_NAME", "from-env")
	t.Setenv("OPENXR_FRAME_SWAPCHAIN_WAIT_TIMEOUT_MS", "250")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Application.Name != "from-env" {
		t.Errorf("Application.Name = %q, want from-env", cfg.Application.Name)
	}
	if cfg.Frame.WaitTimeout() != abi.Duration(250*time.Millisecond) {
		t.Errorf("WaitTimeout = %v, want 250ms", cfg.Frame.WaitTimeout())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.IsKind(err, errors.KindConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := `
system:
  form_factor: glasses
logging:
  level: loud
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verrs ValidationErrors
	if !stderrors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors in chain, got %T", err)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 validation errors, got %d: %v", len(verrs), verrs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty name", func(c *Config) { c.Application.Name = " " }, "application.name"},
		{"bad api version", func(c *Config) { c.Application.APIVersion = "1.0" }, "application.api_version"},
		{"bad extension name", func(c *Config) { c.Extensions.Required = []string{"vulkan"} }, "extensions.required"},
		{"duplicate optional", func(c *Config) {
			c.Extensions.Required = []string{"XR_A"}
			c.Extensions.Optional = []string{"XR_A"}
		}, "extensions.optional"},
		{"view configuration", func(c *Config) { c.System.ViewConfiguration = "quad" }, "system.view_configuration"},
		{"blend mode", func(c *Config) { c.System.BlendMode = "multiply" }, "system.blend_mode"},
		{"negative timeout", func(c *Config) { c.Frame.SwapchainWaitTimeoutMs = -1 }, "frame.swapchain_wait_timeout_ms"},
		{"reference space", func(c *Config) { c.Frame.ReferenceSpace = "world" }, "frame.reference_space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), ValidationErrors(errs))
			}
			if errs[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	single := ValidationErrors{{Field: "a", Value: 1, Message: "bad"}}
	if single.Error() != "a: bad (got: 1)" {
		t.Errorf("single = %q", single.Error())
	}

	multi := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	if !strings.HasPrefix(multi.Error(), "2 validation errors:") {
		t.Errorf("multi = %q", multi.Error())
	}
}

func TestLoggingConfig_Build(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Development: true}
	l, err := lc.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}

	bad := LoggingConfig{Level: "chatty"}
	if _, err := bad.Build(); err == nil {
		t.Error("expected error for unknown level")
	}
}
