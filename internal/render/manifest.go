package render

import (
	"fmt"
	"path"

	"github.com/conn-castle/podkit/internal/fragments"
	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/podspec"
	"github.com/conn-castle/podkit/internal/postinstall"
	"github.com/conn-castle/podkit/internal/reactnative"
	"github.com/conn-castle/podkit/internal/sdkversion"
	"github.com/conn-castle/podkit/internal/substitution"
	"github.com/conn-castle/podkit/internal/templates"
)

// ManifestRequest describes one Podfile render.
type ManifestRequest struct {
	// TemplatePath is the template inside the template tree. Default "Podfile".
	TemplatePath string
	// OutputPath is where the result is written. Ignored by BuildManifest.
	OutputPath string
	// SdkVersion selects version-gated behavior. Empty uses Defaults.SdkVersion.
	SdkVersion string
	// ShellAppSdkVersion limits versioned fragments to one SDK. Empty includes every fragment.
	ShellAppSdkVersion string
	// ExpoSubspecs overrides Defaults.ExpoSubspecs.
	ExpoSubspecs []string
	// UniversalModules declares universal module pods.
	UniversalModules []reactnative.UniversalModule
	// Substitutions are caller-supplied keys. They override computed values.
	Substitutions map[string]string
	// IsServiceContext adds EX_DETACHED_SERVICE to PODFILE_DETACHED_POSTINSTALL.
	IsServiceContext bool
}

// Manifest is a rendered Podfile and the inputs that shaped it.
type Manifest struct {
	Output     string
	Features   sdkversion.Features
	Unresolved []string
}

// BuildManifest computes the Podfile for req without writing it.
func (r *Renderer) BuildManifest(req ManifestRequest) (Manifest, error) {
	templatePath := req.TemplatePath
	if templatePath == "" {
		templatePath = templates.PodfileTemplate
	}
	rawVersion := req.SdkVersion
	if rawVersion == "" {
		rawVersion = r.defaults.SdkVersion
	}
	version, err := sdkversion.Parse(rawVersion)
	if err != nil {
		return Manifest{}, fmt.Errorf(messages.RenderSdkVersionFmt, rawVersion, err)
	}
	features := r.defaults.Thresholds.Resolve(version)
	r.logger.Debug("resolved sdk features", "version", version.String(), "enabled", features.Enabled())

	template, err := r.readTemplate(templatePath)
	if err != nil {
		return Manifest{}, err
	}

	values, err := r.computeManifestValues(templatePath, req, features)
	if err != nil {
		return Manifest{}, err
	}

	result, err := substitution.Render(template, values.With(req.Substitutions), substitution.PodfileRegistry)
	if err != nil {
		return Manifest{}, err
	}
	for _, key := range result.Unresolved {
		r.logger.Warn("placeholder has no value", "key", key, "template", templatePath)
	}
	return Manifest{Output: result.Output, Features: features, Unresolved: result.Unresolved}, nil
}

// RenderManifest builds the Podfile for req and writes it to req.OutputPath.
// On any error nothing is written.
func (r *Renderer) RenderManifest(req ManifestRequest) (Manifest, error) {
	manifest, err := r.BuildManifest(req)
	if err != nil {
		return Manifest{}, err
	}
	if err := r.Write(req.OutputPath, manifest.Output); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}

func (r *Renderer) computeManifestValues(templatePath string, req ManifestRequest, features sdkversion.Features) (substitution.Map, error) {
	dir := templateDir(templatePath)
	versionedPath := firstNonEmpty(req.Substitutions[string(substitution.KeyVersionedRNPath)], r.defaults.VersionedReactNativePath)
	modulesPath := firstNonEmpty(req.Substitutions[string(substitution.KeyUniversalModulesPath)], r.defaults.UniversalModulesPath)
	subspecs := req.ExpoSubspecs
	if len(subspecs) == 0 {
		subspecs = r.defaults.ExpoSubspecs
	}
	subspecList, ok := req.Substitutions[string(substitution.KeyExpoSubspecs)]
	if !ok {
		subspecList = fragments.QuoteList(subspecs)
	}

	deps, err := podspec.LoadDependencies(r.templates, path.Join(dir, r.defaults.DependenciesFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateRead, err)
	}

	rnDependency, err := reactnative.RenderDependency(reactnative.Options{
		ReactNativePath: req.Substitutions[string(substitution.KeyReactNativePath)],
	}, features)
	if err != nil {
		return nil, err
	}

	universal, err := reactnative.RenderUniversalModules(req.UniversalModules, modulesPath)
	if err != nil {
		return nil, err
	}

	filter := fragments.NewFilter(req.ShellAppSdkVersion)
	versionedDeps, err := fragments.AggregateDependencies(r.templates, path.Join(dir, r.defaults.VersionedDependenciesDir), filter, versionedPath, subspecList)
	if err != nil {
		return nil, err
	}
	versionedPostinstalls, err := fragments.Aggregate(r.templates, path.Join(dir, r.defaults.VersionedPostinstallsDir), filter)
	if err != nil {
		return nil, err
	}

	detached := postinstall.Options{CorePodName: r.defaults.CorePodName, IsServiceContext: req.IsServiceContext}
	service := postinstall.Options{CorePodName: r.defaults.CorePodName, IsServiceContext: true}

	values := substitution.Map{}
	values.Set(substitution.KeyClientDependencies, podspec.RenderDependencies(deps, podspec.DialectPodfile))
	values.Set(substitution.KeyUnversionedRNDependency, rnDependency)
	values.Set(substitution.KeyUniversalModulesDependencies, universal)
	values.Set(substitution.KeyUniversalModulesPath, modulesPath)
	values.Set(substitution.KeyVersionedRNPath, versionedPath)
	values.Set(substitution.KeyExpoSubspecs, subspecList)
	values.Set(substitution.KeyVersionedRNDependencies, versionedDeps)
	values.Set(substitution.KeyVersionedPostinstalls, versionedPostinstalls)
	values.Set(substitution.KeyDetachedPostinstall, postinstall.RenderDetached(features, detached))
	values.Set(substitution.KeyDetachedServicePostinstall, postinstall.RenderDetached(features, service))
	values.Set(substitution.KeyTestTarget, postinstall.RenderTestTarget(req.ShellAppSdkVersion))
	r.logger.Debug("computed substitutions", "keys", values.Keys(), "shell_app_sdk_version", req.ShellAppSdkVersion)
	return values, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
