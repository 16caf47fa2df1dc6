package config

import (
	"github.com/conn-castle/podkit/internal/reactnative"
	"github.com/conn-castle/podkit/internal/render"
	"github.com/conn-castle/podkit/internal/sdkversion"
)

// ThresholdTable returns the configured thresholds, or nil when none are set.
func (c *Config) ThresholdTable() sdkversion.Table {
	if len(c.Thresholds) == 0 {
		return nil
	}
	table := make(sdkversion.Table, 0, len(c.Thresholds))
	for _, t := range c.Thresholds {
		table = append(table, sdkversion.Threshold{Major: t.Major, Behavior: sdkversion.Behavior(t.Behavior)})
	}
	return table
}

// RenderDefaults returns the render defaults with configured values applied.
// Unset fields keep the built-in defaults.
func (c *Config) RenderDefaults() render.Defaults {
	d := render.NewDefaults()
	if c.Render.SdkVersion != "" {
		d.SdkVersion = c.Render.SdkVersion
	}
	if c.Render.VersionedReactNativePath != "" {
		d.VersionedReactNativePath = c.Render.VersionedReactNativePath
	}
	if len(c.Render.ExpoSubspecs) > 0 {
		d.ExpoSubspecs = append([]string(nil), c.Render.ExpoSubspecs...)
	}
	if c.Render.UniversalModulesPath != "" {
		d.UniversalModulesPath = c.Render.UniversalModulesPath
	}
	if c.Render.CorePodName != "" {
		d.CorePodName = c.Render.CorePodName
	}
	if table := c.ThresholdTable(); table != nil {
		d.Thresholds = table
	}
	return d
}

// UniversalModuleList converts [[universal_modules]] for the renderer.
func (c *Config) UniversalModuleList() []reactnative.UniversalModule {
	if len(c.UniversalModules) == 0 {
		return nil
	}
	modules := make([]reactnative.UniversalModule, 0, len(c.UniversalModules))
	for _, m := range c.UniversalModules {
		modules = append(modules, reactnative.UniversalModule{PodName: m.PodName, Path: m.Path})
	}
	return modules
}
