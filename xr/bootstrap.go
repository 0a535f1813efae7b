package xr

import (
	"go.uber.org/zap"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/config"
	"github.com/wippyai/openxr/errors"
)

// Bootstrap creates an instance from configuration. Every required
// extension must be advertised by the runtime, otherwise a
// *errors.MissingExtensionsError is returned and nothing is created.
// Optional extensions are enabled when advertised. A name listed more
// than once is enabled once. The partial
// construction contract of CreateInstance applies to the result.
func Bootstrap(rt abi.Runtime, cfg *config.Config) (*Instance, error) {
	ep := Open(rt)

	available, err := ep.EnumerateExtensions()
	if err != nil {
		return nil, err
	}
	if missing := errors.NewMissingExtensionsError(cfg.Extensions.Required, available); missing != nil {
		return nil, missing
	}

	advertised := make(map[string]struct{}, len(available))
	for _, name := range available {
		advertised[name] = struct{}{}
	}
	// Each name is enabled once, in first-listed order.
	var enabled []string
	seen := make(map[string]struct{}, len(cfg.Extensions.Required)+len(cfg.Extensions.Optional))
	enable := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			enabled = append(enabled, name)
		}
	}
	for _, name := range cfg.Extensions.Required {
		enable(name)
	}
	for _, name := range cfg.Extensions.Optional {
		if _, ok := advertised[name]; ok {
			enable(name)
		} else {
			Logger().Debug("optional extension not advertised", zap.String("extension", name))
		}
	}

	apiVersion, err := cfg.Application.APIVersionValue()
	if err != nil {
		return nil, errors.Config("application.api_version", err)
	}

	return ep.CreateInstanceWith(InstanceOptions{
		ApplicationName:    cfg.Application.Name,
		ApplicationVersion: cfg.Application.Version,
		EngineName:         cfg.Application.EngineName,
		EngineVersion:      cfg.Application.EngineVersion,
		APIVersion:         apiVersion,
		Extensions:         enabled,
		FormFactor:         cfg.System.FormFactorValue(),
	})
}
