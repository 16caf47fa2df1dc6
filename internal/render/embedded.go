package render

import (
	"fmt"
	"path"

	"github.com/conn-castle/podkit/internal/podspec"
	"github.com/conn-castle/podkit/internal/substitution"
	"github.com/conn-castle/podkit/internal/templates"
)

// EmbeddedSpecRequest describes one embedded podspec render.
type EmbeddedSpecRequest struct {
	// TemplatePath is the template inside the template tree. Default "ExpoKit.podspec".
	TemplatePath string
	// OutputPath is where the result is written. Ignored by BuildEmbeddedSpec.
	OutputPath string
	// ClientVersion replaces IOS_EXPONENT_CLIENT_VERSION when set.
	ClientVersion string
	// Substitutions are caller-supplied podspec keys. They override computed values.
	Substitutions map[string]string
}

// BuildEmbeddedSpec computes the embedded podspec for req without writing it.
func (r *Renderer) BuildEmbeddedSpec(req EmbeddedSpecRequest) (Manifest, error) {
	templatePath := req.TemplatePath
	if templatePath == "" {
		templatePath = templates.PodspecTemplate
	}
	template, err := r.readTemplate(templatePath)
	if err != nil {
		return Manifest{}, err
	}
	deps, err := podspec.LoadDependencies(r.templates, path.Join(templateDir(templatePath), r.defaults.DependenciesFile))
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %w", ErrTemplateRead, err)
	}

	values := substitution.Map{}
	values.Set(substitution.KeyPodspecDependencies, podspec.Indent(podspec.RenderDependencies(deps, podspec.DialectPodspec), 2))
	if req.ClientVersion != "" {
		values.Set(substitution.KeyClientVersion, req.ClientVersion)
	}

	result, err := substitution.Render(template, values.With(req.Substitutions), substitution.PodspecRegistry)
	if err != nil {
		return Manifest{}, err
	}
	for _, key := range result.Unresolved {
		r.logger.Warn("placeholder has no value", "key", key, "template", templatePath)
	}
	return Manifest{Output: result.Output, Unresolved: result.Unresolved}, nil
}

// RenderEmbeddedSpec builds the embedded podspec for req and writes it to req.OutputPath.
func (r *Renderer) RenderEmbeddedSpec(req EmbeddedSpecRequest) (Manifest, error) {
	manifest, err := r.BuildEmbeddedSpec(req)
	if err != nil {
		return Manifest{}, err
	}
	if err := r.Write(req.OutputPath, manifest.Output); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}
