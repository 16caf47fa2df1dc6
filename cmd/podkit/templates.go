package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/render"
	"github.com/conn-castle/podkit/internal/templates"
)

func newTemplatesCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   messages.TemplatesUse,
		Short: messages.TemplatesShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportTemplates(newSystem(), args[0], force, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, messages.TemplatesForceFlag)
	return cmd
}

type templateFile struct {
	dest string
	data []byte
}

// exportTemplates copies the embedded template tree under dir. Files that
// already match are skipped. Files that differ are only replaced with force;
// otherwise nothing is written.
func exportTemplates(sys render.System, dir string, force bool, stderr io.Writer) error {
	var pending []templateFile
	var conflicts []string
	err := templates.Walk(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := templates.Read(path)
		if err != nil {
			return err
		}
		dest := filepath.Join(dir, filepath.FromSlash(path))
		current, err := sys.ReadFile(dest)
		switch {
		case err == nil && bytes.Equal(current, data):
			return nil
		case err == nil:
			conflicts = append(conflicts, dest)
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}
		pending = append(pending, templateFile{dest: dest, data: data})
		return nil
	})
	if err != nil {
		return err
	}
	if len(conflicts) > 0 && !force {
		return fmt.Errorf(messages.TemplatesConflictFmt, len(conflicts), strings.Join(conflicts, ", "))
	}

	okColor := color.New(color.FgGreen)
	for _, file := range pending {
		if err := sys.MkdirAll(filepath.Dir(file.dest), 0o755); err != nil {
			return err
		}
		if err := sys.WriteFileAtomic(file.dest, file.data, 0o644); err != nil {
			return err
		}
		_, _ = okColor.Fprintf(stderr, messages.RenderWroteFmt, file.dest)
	}
	return nil
}
