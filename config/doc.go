// Package config loads the settings used to bootstrap an OpenXR instance.
//
// Configuration is read with viper from a YAML, TOML or JSON file, with
// OPENXR_-prefixed environment variables taking precedence:
//
//	application:
//	  name: viewer
//	  api_version: 1.0.34
//	extensions:
//	  required: [XR_KHR_vulkan_enable]
//	  optional: [XR_FB_passthrough]
//	system:
//	  form_factor: hmd
//	  view_configuration: stereo
//	  blend_mode: opaque
//	frame:
//	  swapchain_wait_timeout_ms: 100
//	  reference_space: local
//	logging:
//	  level: debug
//
//	cfg, err := config.Load("openxr.yaml")
//	inst, err := xr.Bootstrap(rt, cfg)
package config
