package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

var requiredMarkers = []string{
	"<!doctype html>",
	"@media print",
	`<p class="title">Summary</p>`,
	`<p class="title">Skills</p>`,
	`<p class="title">Experience</p>`,
	`<p class="title">Education</p>`,
	"</html>",
}

func main() {
	outPath := flag.String("out", "./out/sample_resume.html", "output path for generated HTML")
	flag.Parse()

	sample := model.Sample()
	doc := []byte(render.HTML(sample))

	if err := writeOutputs(*outPath, sample, doc); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedHTML(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func writeOutputs(outPath string, data model.ResumeData, doc []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		return err
	}

	payload, err := render.JSONRenderer{}.Render(context.Background(), data)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "sample_resume.json"), payload, 0o644)
}

func validateRenderedHTML(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := string(content)

	if pos := tokenIndex(text); pos != -1 {
		return fmt.Errorf("unresolved template tokens near: %s", snippetAround(text, pos, 200))
	}
	for _, marker := range requiredMarkers {
		if !strings.Contains(text, marker) {
			return fmt.Errorf("missing %q", marker)
		}
	}
	return nil
}

func tokenIndex(text string) int {
	if idx := strings.Index(text, "{{"); idx != -1 {
		return idx
	}
	if idx := strings.Index(text, "}}"); idx != -1 {
		return idx
	}
	return -1
}

func snippetAround(text string, pos, maxLen int) string {
	if pos < 0 {
		return ""
	}
	start := pos - maxLen/2
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}
