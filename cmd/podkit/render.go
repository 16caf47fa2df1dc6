package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/podkit/internal/config"
	"github.com/conn-castle/podkit/internal/logging"
	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/preview"
	"github.com/conn-castle/podkit/internal/prompt"
	"github.com/conn-castle/podkit/internal/render"
	"github.com/conn-castle/podkit/internal/templates"
	"github.com/conn-castle/podkit/internal/valuesfile"
)

// Seams for tests.
var (
	newSystem    = func() render.System { return render.RealSystem{} }
	newConfirmer = func() prompt.Confirmer { return prompt.NewHuhConfirmer() }
	dirFS        = func(dir string) fs.FS { return os.DirFS(dir) }
)

const (
	defaultPodfileOutput = "Podfile"
	defaultPodspecOutput = "ExpoKit.podspec"
)

// renderFlags are shared by the render subcommands.
type renderFlags struct {
	templatesDir string
	template     string
	output       string
	valuesFile   string
	set          map[string]string
	check        bool
	diff         bool
	yes          bool
	diffLines    int
}

func (f *renderFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.templatesDir, "templates-dir", "", messages.RenderTemplatesDirFlag)
	flags.StringVar(&f.template, "template", "", messages.RenderTemplateFlag)
	flags.StringVarP(&f.output, "output", "o", "", messages.RenderOutputFlag)
	flags.StringVar(&f.valuesFile, "values", "", messages.RenderValuesFlag)
	flags.StringToStringVar(&f.set, "set", nil, messages.RenderSetFlag)
	flags.BoolVar(&f.check, "check", false, messages.RenderCheckFlag)
	flags.BoolVar(&f.diff, "diff", false, messages.RenderDiffFlag)
	flags.BoolVarP(&f.yes, "yes", "y", false, messages.RenderYesFlag)
	flags.IntVar(&f.diffLines, "diff-lines", preview.DefaultMaxLines, messages.RenderDiffLinesFlag)
}

func newRenderCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.RenderUse,
		Short: messages.RenderShort,
	}
	cmd.AddCommand(newRenderPodfileCmd(opts), newRenderPodspecCmd(opts))
	return cmd
}

func newRenderPodfileCmd(opts *globalOptions) *cobra.Command {
	flags := &renderFlags{}
	var (
		sdkVersion         string
		shellAppSdkVersion string
		expoSubspecs       []string
		serviceContext     bool
	)
	cmd := &cobra.Command{
		Use:   messages.RenderPodfileUse,
		Short: messages.RenderPodfileShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newRenderSession(cmd, opts, flags)
			if err != nil {
				return err
			}
			cfg := session.cfg
			subs, err := mergeSubstitutions(cfg.Substitutions, cfg.Render.ValuesFile, flags)
			if err != nil {
				return err
			}
			req := render.ManifestRequest{
				TemplatePath:       firstSet(flags.template, cfg.Render.PodfileTemplate, templates.PodfileTemplate),
				SdkVersion:         strings.TrimSpace(sdkVersion),
				ShellAppSdkVersion: strings.TrimSpace(firstSet(shellAppSdkVersion, cfg.Render.ShellAppSdkVersion)),
				ExpoSubspecs:       expoSubspecs,
				UniversalModules:   cfg.UniversalModuleList(),
				Substitutions:      subs,
				IsServiceContext:   serviceContext || cfg.Render.ServiceContext,
			}
			output := firstSet(flags.output, cfg.Render.Output, defaultPodfileOutput)
			return session.run(output, func() (render.Manifest, error) {
				return session.renderer.BuildManifest(req)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&sdkVersion, "sdk-version", "", messages.RenderSdkVersionFlag)
	cmd.Flags().StringVar(&shellAppSdkVersion, "shell-app-sdk-version", "", messages.RenderShellAppSdkVersionFlag)
	cmd.Flags().StringSliceVar(&expoSubspecs, "expo-subspec", nil, messages.RenderExpoSubspecFlag)
	cmd.Flags().BoolVar(&serviceContext, "service", false, messages.RenderServiceFlag)
	return cmd
}

func newRenderPodspecCmd(opts *globalOptions) *cobra.Command {
	flags := &renderFlags{}
	var clientVersion string
	cmd := &cobra.Command{
		Use:   messages.RenderPodspecUse,
		Short: messages.RenderPodspecShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newRenderSession(cmd, opts, flags)
			if err != nil {
				return err
			}
			cfg := session.cfg
			subs, err := mergeSubstitutions(cfg.PodspecSubstitutions, "", flags)
			if err != nil {
				return err
			}
			req := render.EmbeddedSpecRequest{
				TemplatePath:  firstSet(flags.template, cfg.Render.PodspecTemplate, templates.PodspecTemplate),
				ClientVersion: firstSet(clientVersion, cfg.Render.ClientVersion),
				Substitutions: subs,
			}
			output := firstSet(flags.output, cfg.Render.PodspecOutput, defaultPodspecOutput)
			return session.run(output, func() (render.Manifest, error) {
				return session.renderer.BuildEmbeddedSpec(req)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&clientVersion, "client-version", "", messages.RenderClientVersionFlag)
	return cmd
}

// renderSession carries what one render invocation needs.
type renderSession struct {
	cfg      *config.Config
	flags    *renderFlags
	renderer *render.Renderer
	logger   *log.Logger
	stdout   io.Writer
	stderr   io.Writer
}

func newRenderSession(cmd *cobra.Command, opts *globalOptions, flags *renderFlags) (*renderSession, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), opts.verbose)

	var fsys fs.FS
	if dir := firstSet(flags.templatesDir, cfg.Render.TemplatesDir); dir != "" {
		fsys = dirFS(dir)
		logger.Debug("using templates directory", "dir", dir)
	}
	return &renderSession{
		cfg:      cfg,
		flags:    flags,
		renderer: render.New(fsys, newSystem(), cfg.RenderDefaults(), logger),
		logger:   logger,
		stdout:   cmd.OutOrStdout(),
		stderr:   cmd.ErrOrStderr(),
	}, nil
}

// run builds the manifest and then checks, previews, confirms and writes it per flags.
func (s *renderSession) run(output string, build func() (render.Manifest, error)) error {
	manifest, err := build()
	if err != nil {
		return err
	}
	current, exists, err := s.renderer.ReadCurrent(output)
	if err != nil {
		return err
	}
	changed := !exists || preview.Changed(current, manifest.Output)
	diff := preview.Unified(output, current, manifest.Output, s.flags.diffLines)
	s.logger.Debug("rendered manifest", "output", output, "bytes", len(manifest.Output), "exists", exists, "changed", changed)

	okColor := color.New(color.FgGreen)
	warnColor := color.New(color.FgYellow)

	if s.flags.check {
		if !changed {
			_, _ = okColor.Fprintf(s.stderr, messages.RenderUpToDateFmt, output)
			return nil
		}
		_, _ = fmt.Fprint(s.stdout, diff.UnifiedDiff)
		_, _ = warnColor.Fprintf(s.stderr, messages.RenderOutOfDateFmt, output)
		return &SilentExitError{Code: 1}
	}
	if !changed {
		_, _ = okColor.Fprintf(s.stderr, messages.RenderUnchangedFmt, output)
		return nil
	}
	if s.flags.diff {
		_, _ = fmt.Fprint(s.stdout, diff.UnifiedDiff)
	}
	if exists {
		confirmer := newConfirmer()
		if s.flags.yes {
			confirmer = prompt.Static(true)
		}
		ok, err := confirmer.Confirm(fmt.Sprintf(messages.RenderOverwritePromptFmt, output), diffSummary(diff))
		if errors.Is(err, prompt.ErrNotInteractive) {
			return fmt.Errorf(messages.RenderOverwriteRequiresYesFmt, output)
		}
		if err != nil {
			return err
		}
		if !ok {
			_, _ = warnColor.Fprintf(s.stderr, messages.RenderSkippedFmt, output)
			return nil
		}
	}
	if err := s.renderer.Write(output, manifest.Output); err != nil {
		return err
	}
	if len(manifest.Unresolved) > 0 {
		_, _ = warnColor.Fprintf(s.stderr, messages.RenderUnresolvedFmt, len(manifest.Unresolved), joinSorted(manifest.Unresolved))
	}
	_, _ = okColor.Fprintf(s.stderr, messages.RenderWroteFmt, output)
	return nil
}

// mergeSubstitutions layers config values, then the values file, then --set.
func mergeSubstitutions(base map[string]string, configValuesFile string, flags *renderFlags) (map[string]string, error) {
	merged := make(map[string]string, len(base)+len(flags.set))
	for k, v := range base {
		merged[k] = v
	}
	if path := firstSet(flags.valuesFile, configValuesFile); path != "" {
		values, err := valuesfile.Load(path)
		if err != nil {
			return nil, err
		}
		for k, v := range values {
			merged[k] = v
		}
	}
	for k, v := range flags.set {
		merged[k] = v
	}
	return merged, nil
}

func diffSummary(d preview.Diff) string {
	if d.UnifiedDiff == "" {
		return ""
	}
	added, removed := 0, 0
	for _, line := range strings.Split(d.UnifiedDiff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return fmt.Sprintf(messages.RenderDiffSummaryFmt, added, removed)
}

func joinSorted(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
