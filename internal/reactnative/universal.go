package reactnative

import (
	"fmt"
	"path"
	"strings"

	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/podspec"
)

// DefaultUniversalModulesPath is where universal modules are installed, relative to the Podfile.
const DefaultUniversalModulesPath = "../node_modules"

// UniversalModule is a universal (unimodule) native package declared as a local pod.
type UniversalModule struct {
	PodName string
	Path    string
}

// RenderUniversalModules declares each module as a local path pod under modulesPath,
// in input order. No modules render as the empty string.
func RenderUniversalModules(modules []UniversalModule, modulesPath string) (string, error) {
	if len(modules) == 0 {
		return "", nil
	}
	if strings.TrimSpace(modulesPath) == "" {
		modulesPath = DefaultUniversalModulesPath
	}
	blocks := make([]string, 0, len(modules))
	for i, module := range modules {
		if strings.TrimSpace(module.PodName) == "" {
			return "", fmt.Errorf("%w: "+messages.ReactNativeUniversalModuleFieldFmt, ErrMissingRequiredOption, i, "pod_name")
		}
		if strings.TrimSpace(module.Path) == "" {
			return "", fmt.Errorf("%w: "+messages.ReactNativeUniversalModuleFieldFmt, ErrMissingRequiredOption, i, "path")
		}
		block, err := podspec.RenderPod(module.PodName, podspec.Attributes{
			{Key: "path", Value: path.Join(modulesPath, module.Path)},
			{Key: "inhibit_warnings", Value: true},
		}, podspec.DialectPodfile)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return podspec.Indent(strings.Join(blocks, "\n"), 2), nil
}
