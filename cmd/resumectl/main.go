package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"resume-builder/internal/clipboard"
	"resume-builder/internal/prompt"
	localstore "resume-builder/internal/shared/storage/object/local"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	"resume-builder/resume/service"
)

var (
	newDriver       = prompt.NewSurveyDriver
	copyToClipboard = clipboard.Copy

	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16A34A"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D97706"))
)

type options struct {
	in          string
	sample      bool
	interactive bool
	format      string
	out         string
	outDir      string
	copy        bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("resumectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "", "résumé data file (.json, .yaml, .yml)")
	fs.BoolVar(&opts.sample, "sample", false, "start from the built-in sample résumé")
	fs.BoolVar(&opts.interactive, "interactive", false, "fill in the résumé with terminal prompts")
	fs.StringVar(&opts.format, "format", "html", "output format (html, json, yaml)")
	fs.StringVar(&opts.out, "out", "", "write the document to this file")
	fs.StringVar(&opts.outDir, "out-dir", "", "write the document into this directory, named after the résumé")
	fs.BoolVar(&opts.copy, "copy", false, "copy the document to the system clipboard")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.in != "" && opts.sample {
		return opts, errors.New("-in and -sample are mutually exclusive")
	}
	if opts.out != "" && opts.outDir != "" {
		return opts, errors.New("-out and -out-dir are mutually exclusive")
	}
	opts.format = strings.ToLower(strings.TrimSpace(opts.format))
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return 2
	}

	renderer, err := render.Default().Get(opts.format)
	if err != nil {
		fmt.Fprintf(stderr, "unknown format %q (available: %s)\n", opts.format, strings.Join(render.Default().List(), ", "))
		return 2
	}

	data, err := initialData(opts)
	if err != nil {
		fmt.Fprintf(stderr, "load résumé: %v\n", err)
		return 1
	}

	session := service.NewSession(data, service.WithRenderer(renderer))

	if opts.interactive {
		if opts.out != "" {
			cancel := session.Subscribe(livePreview(opts.out))
			defer cancel()
		}
		form := &prompt.Form{Driver: newDriver(), Session: session}
		if err := form.Run(ctx); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Fprintln(stderr, warnStyle.Render("aborted"))
				return 130
			}
			fmt.Fprintf(stderr, "interactive: %v\n", err)
			return 1
		}
	}

	doc, err := session.Document(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}

	switch {
	case opts.out != "":
		if err := writeFile(opts.out, doc); err != nil {
			fmt.Fprintf(stderr, "write: %v\n", err)
			return 1
		}
		fmt.Fprintln(stderr, okStyle.Render("Wrote "+opts.out))
	case opts.outDir != "":
		name := exportName(session.Snapshot().Name, renderer.Name())
		key, _, _, err := localstore.New(opts.outDir).Save(ctx, name, bytes.NewReader(doc))
		if err != nil {
			fmt.Fprintf(stderr, "export: %v\n", err)
			return 1
		}
		fmt.Fprintln(stderr, okStyle.Render("Wrote "+filepath.Join(opts.outDir, key)))
	default:
		if _, err := stdout.Write(doc); err != nil {
			return 1
		}
	}

	if opts.copy {
		if err := copyToClipboard(string(doc)); err != nil {
			telemetry.Warn("clipboard.copy_failed", map[string]any{"error": err.Error()})
			fmt.Fprintln(stderr, warnStyle.Render(clipboard.FailureNotice))
		} else {
			fmt.Fprintln(stderr, okStyle.Render("Resume copied to clipboard"))
		}
	}
	return 0
}

func initialData(opts options) (model.ResumeData, error) {
	switch {
	case opts.sample:
		return model.Sample(), nil
	case opts.in != "":
		return model.LoadFile(opts.in)
	default:
		return model.Default(), nil
	}
}

// livePreview rewrites path on every session change so an open browser tab
// can be refreshed while prompts are still running.
func livePreview(path string) service.Listener {
	return func(doc []byte) {
		if err := writeFile(path, doc); err != nil {
			telemetry.Warn("preview.write_failed", map[string]any{"path": path, "error": err.Error()})
		}
	}
}

func writeFile(path string, doc []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, doc, 0o644)
}

// exportName keeps the download naming for html and swaps the extension for
// data exports.
func exportName(name, format string) string {
	file := render.FileName(name)
	if format == "html" {
		return file
	}
	return strings.TrimSuffix(file, ".html") + "." + format
}
