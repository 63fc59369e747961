package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	mdexport "github.com/logicossoftware/go-mdexport"
)

var okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

// exportSettings carries the resolved flag/config values for one run,
// keeping runExport testable without a live cobra invocation.
type exportSettings struct {
	outDir  string
	title   string
	plain   bool
	comp    mdexport.Compression
	options []mdexport.ExportOption
}

func newRootCmd() *cobra.Command {
	var (
		outDir   string
		title    string
		app      string
		creator  string
		compress string
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "mdexport <file.md> [file.md...]",
		Short: "Convert Markdown notes to Word documents",
		Long: `mdexport converts Markdown files into Word (.docx) documents.

Each input file becomes one document. Output names are derived from the
title (or the input file name) with filesystem-reserved characters
replaced, and are written to the output directory.

With --plain the Markdown is written unchanged instead, optionally
compressed with Zstandard, LZ4, or Brotli.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadConfig()
			if err != nil {
				return err
			}
			if app == "" {
				app = fileCfg.Application
			}
			if creator == "" {
				creator = fileCfg.Creator
			}
			if compress == "" {
				compress = fileCfg.Compress
			}
			comp, err := mdexport.ParseCompression(compress)
			if err != nil {
				return err
			}
			var opts []mdexport.ExportOption
			if app != "" {
				opts = append(opts, mdexport.WithApplication(app))
			}
			if creator != "" {
				opts = append(opts, mdexport.WithCreator(creator))
			}
			return runExport(cmd, args, exportSettings{
				outDir:  outDir,
				title:   title,
				plain:   plain,
				comp:    comp,
				options: opts,
			})
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&title, "title", "", "document title (default: input file name)")
	cmd.Flags().BoolVar(&plain, "plain", false, "export plain Markdown instead of docx")
	cmd.Flags().StringVar(&compress, "compress", "", "plain export compression: none, zstd, lz4, or br")
	cmd.Flags().StringVar(&app, "app", "", "application name recorded in the document")
	cmd.Flags().StringVar(&creator, "creator", "", "creator name recorded in the document")
	return cmd
}

// runExport converts each input file and writes the result into s.outDir.
func runExport(cmd *cobra.Command, files []string, s exportSettings) error {
	ext := ".docx"
	if s.plain {
		ext = mdexport.Extension(s.comp)
	}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		title := s.title
		if title == "" {
			base := filepath.Base(path)
			title = strings.TrimSuffix(base, filepath.Ext(base))
		}
		note := &mdexport.Note{
			Title:   title,
			Content: string(content),
			Created: time.Now().UTC(),
		}
		dest := filepath.Join(s.outDir, mdexport.SafeFileName(title, ext))
		if err := writeNote(dest, note, s); err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("exported"), path, "->", dest)
	}
	return nil
}

func writeNote(dest string, note *mdexport.Note, s exportSettings) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if s.plain {
		err = mdexport.ExportMarkdown(f, note, append(s.options, mdexport.WithCompression(s.comp))...)
	} else {
		err = mdexport.ExportDocx(f, note, s.options...)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Don't leave a truncated document behind.
		_ = os.Remove(dest)
	}
	return err
}
