// Package render composes dependency declarations, versioned fragments and
// version-gated hooks into a Podfile or an embedded podspec and writes the result.
package render

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/postinstall"
	"github.com/conn-castle/podkit/internal/reactnative"
	"github.com/conn-castle/podkit/internal/sdkversion"
	"github.com/conn-castle/podkit/internal/templates"
)

var (
	// ErrTemplateRead wraps failures reading a template or the dependency list.
	ErrTemplateRead = errors.New(messages.RenderTemplateReadFailed)
	// ErrWrite wraps failures persisting the rendered output.
	ErrWrite = errors.New(messages.RenderWriteFailed)
)

// Defaults are the values a render falls back to when a request leaves them unset.
type Defaults struct {
	// SdkVersion is the SDK the project is built against. Default UNVERSIONED.
	SdkVersion string
	// VersionedReactNativePath is the path from the Podfile to versioned-react-native.
	// Default ./versioned-react-native.
	VersionedReactNativePath string
	// ExpoSubspecs are the subspecs of versioned dependencies. Default [Expo].
	ExpoSubspecs []string
	// UniversalModulesPath is where universal modules are installed. Default ../node_modules.
	UniversalModulesPath string
	// CorePodName is the pod that receives detached macros. Default ExpoKit.
	CorePodName string
	// Thresholds is the SDK threshold history. Default sdkversion.DefaultTable().
	Thresholds sdkversion.Table
	// DependenciesFile is the dependency list, relative to the template directory.
	DependenciesFile string
	// VersionedDependenciesDir holds dependency fragments, relative to the template directory.
	VersionedDependenciesDir string
	// VersionedPostinstallsDir holds postinstall fragments, relative to the template directory.
	VersionedPostinstallsDir string
	// OutputPerm is the mode of written files. Default 0644.
	OutputPerm fs.FileMode
}

// NewDefaults returns the built-in defaults.
func NewDefaults() Defaults {
	return Defaults{
		SdkVersion:               sdkversion.UnversionedLiteral,
		VersionedReactNativePath: "./versioned-react-native",
		ExpoSubspecs:             []string{"Expo"},
		UniversalModulesPath:     reactnative.DefaultUniversalModulesPath,
		CorePodName:              postinstall.DefaultCorePodName,
		Thresholds:               sdkversion.DefaultTable(),
		DependenciesFile:         templates.DependenciesFile,
		VersionedDependenciesDir: "versioned-react-native/dependencies",
		VersionedPostinstallsDir: "versioned-react-native/postinstalls",
		OutputPerm:               0o644,
	}
}

// withFallbacks fills zero fields of d from NewDefaults.
func (d Defaults) withFallbacks() Defaults {
	base := NewDefaults()
	if d.SdkVersion == "" {
		d.SdkVersion = base.SdkVersion
	}
	if d.VersionedReactNativePath == "" {
		d.VersionedReactNativePath = base.VersionedReactNativePath
	}
	if len(d.ExpoSubspecs) == 0 {
		d.ExpoSubspecs = base.ExpoSubspecs
	}
	if d.UniversalModulesPath == "" {
		d.UniversalModulesPath = base.UniversalModulesPath
	}
	if d.CorePodName == "" {
		d.CorePodName = base.CorePodName
	}
	if d.Thresholds == nil {
		d.Thresholds = base.Thresholds
	}
	if d.DependenciesFile == "" {
		d.DependenciesFile = base.DependenciesFile
	}
	if d.VersionedDependenciesDir == "" {
		d.VersionedDependenciesDir = base.VersionedDependenciesDir
	}
	if d.VersionedPostinstallsDir == "" {
		d.VersionedPostinstallsDir = base.VersionedPostinstallsDir
	}
	if d.OutputPerm == 0 {
		d.OutputPerm = base.OutputPerm
	}
	return d
}

// Renderer renders manifests from a template tree. Each call is independent.
type Renderer struct {
	templates fs.FS
	sys       System
	defaults  Defaults
	logger    *log.Logger
}

// New returns a Renderer over the template tree fsys. A nil fsys uses the embedded
// templates, a nil sys uses RealSystem and a nil logger discards output.
func New(fsys fs.FS, sys System, defaults Defaults, logger *log.Logger) *Renderer {
	if fsys == nil {
		fsys = templates.FS()
	}
	if sys == nil {
		sys = RealSystem{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{templates: fsys, sys: sys, defaults: defaults.withFallbacks(), logger: logger}
}

// Defaults returns the effective defaults.
func (r *Renderer) Defaults() Defaults {
	return r.defaults
}

func (r *Renderer) readTemplate(name string) (string, error) {
	data, err := fs.ReadFile(r.templates, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrTemplateRead, name, err)
	}
	return string(data), nil
}

// Write persists output at outputPath in one step, creating parent directories.
func (r *Renderer) Write(outputPath string, output string) error {
	if outputPath == "" {
		return fmt.Errorf("%w: %s", ErrWrite, messages.RenderOutputPathRequired)
	}
	dir := filepath.Dir(outputPath)
	if err := r.sys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, dir, err)
	}
	if err := r.sys.WriteFileAtomic(outputPath, []byte(output), r.defaults.OutputPerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, outputPath, err)
	}
	r.logger.Debug("wrote manifest", "path", outputPath, "bytes", len(output))
	return nil
}

// ReadCurrent returns the manifest already at outputPath. exists is false when
// there is no file yet.
func (r *Renderer) ReadCurrent(outputPath string) (content string, exists bool, err error) {
	data, err := r.sys.ReadFile(outputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf(messages.RenderReadCurrentFmt, outputPath, err)
	}
	return string(data), true, nil
}

// templateDir returns the slash-separated directory of a template inside the tree.
func templateDir(templatePath string) string {
	return path.Dir(templatePath)
}
