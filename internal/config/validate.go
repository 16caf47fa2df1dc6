package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/sdkversion"
	"github.com/conn-castle/podkit/internal/substitution"
)

// Validate ensures the config is consistent. path names the source in errors.
func (c *Config) Validate(path string) error {
	if v := c.Render.SdkVersion; v != "" {
		if _, err := sdkversion.Parse(v); err != nil {
			return fmt.Errorf(messages.ConfigSdkVersionInvalidFmt, path, v, err)
		}
	}
	templates := []struct{ field, name string }{
		{"render.podfile_template", c.Render.PodfileTemplate},
		{"render.podspec_template", c.Render.PodspecTemplate},
	}
	for _, tmpl := range templates {
		if tmpl.name != "" && !fs.ValidPath(tmpl.name) {
			return fmt.Errorf(messages.ConfigTemplatePathInvalidFmt, path, tmpl.field, tmpl.name)
		}
	}
	for i, subspec := range c.Render.ExpoSubspecs {
		if strings.TrimSpace(subspec) == "" {
			return fmt.Errorf(messages.ConfigExpoSubspecEmptyFmt, path, i)
		}
	}
	for i, module := range c.UniversalModules {
		if strings.TrimSpace(module.PodName) == "" {
			return fmt.Errorf(messages.ConfigUniversalModuleFieldFmt, path, i, "pod_name")
		}
		if strings.TrimSpace(module.Path) == "" {
			return fmt.Errorf(messages.ConfigUniversalModuleFieldFmt, path, i, "path")
		}
	}
	if err := c.ThresholdTable().Validate(); err != nil {
		return fmt.Errorf(messages.ConfigSectionFmt, path, err)
	}
	if err := substitution.PodfileRegistry.Validate(c.Substitutions); err != nil {
		return fmt.Errorf(messages.ConfigSectionFmt, path, err)
	}
	if err := substitution.PodspecRegistry.Validate(c.PodspecSubstitutions); err != nil {
		return fmt.Errorf(messages.ConfigSectionFmt, path, err)
	}
	return nil
}
