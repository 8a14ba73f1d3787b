package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"resume-builder/resume/model"
	"resume-builder/resume/service"
)

// scriptedDriver answers prompts by message from per-message queues.
type scriptedDriver struct {
	inputs   map[string][]string
	confirms map[string][]bool
	areas    map[string][]string
	infos    []string
	helps    map[string]string
}

func (d *scriptedDriver) recordHelp(message, help string) {
	if d.helps == nil {
		d.helps = map[string]string{}
	}
	d.helps[message] = help
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.recordHelp(cfg.Message, cfg.Help)
	q := d.inputs[cfg.Message]
	if len(q) == 0 {
		return "", fmt.Errorf("unexpected input prompt %q", cfg.Message)
	}
	d.inputs[cfg.Message] = q[1:]
	return q[0], nil
}

func (d *scriptedDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	d.recordHelp(cfg.Message, cfg.Help)
	q := d.confirms[cfg.Message]
	if len(q) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt %q", cfg.Message)
	}
	d.confirms[cfg.Message] = q[1:]
	return q[0], nil
}

func (d *scriptedDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	d.recordHelp(cfg.Message, cfg.Help)
	q := d.areas[cfg.Message]
	if len(q) == 0 {
		return "", fmt.Errorf("unexpected textarea prompt %q", cfg.Message)
	}
	d.areas[cfg.Message] = q[1:]
	return q[0], nil
}

func (d *scriptedDriver) Info(ctx context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestFormRunFillsSession(t *testing.T) {
	driver := &scriptedDriver{
		inputs: map[string][]string{
			"Full Name *":        {"Ada Lovelace"},
			"Headline / Title *": {"Engineer"},
			"Email":              {"ada@example.com"},
			"Phone":              {""},
			"Location":           {""},
			"Website":            {""},
			"Add skill":          {"Go", " Go ", "Math", ""},
			"Role *":             {"Analyst"},
			"Company *":          {"Babbage & Co"},
			"Start":              {"1842"},
			"End":                {"1843"},
			"School *":           {"Home", ""},
			"Degree":             {"", "BA"},
			"Period":             {"", ""},
		},
		confirms: map[string][]bool{
			"Add experience entry?": {false},
			"Add education entry?":  {true, false},
		},
		areas: map[string][]string{
			"Summary":                {"Builds engines."},
			"Details (one per line)": {"Notes\nProgram"},
			"Details":                {"Tutored", ""},
		},
	}

	session := service.NewSession(model.Default())
	notified := 0
	cancel := session.Subscribe(func([]byte) { notified++ })
	defer cancel()

	form := &Form{Driver: driver, Session: session}
	if err := form.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := model.ResumeData{
		Name:    "Ada Lovelace",
		Title:   "Engineer",
		Email:   "ada@example.com",
		Summary: "Builds engines.",
		Skills:  []string{"Go", "Math"},
		Experiences: []model.Experience{
			{Role: "Analyst", Company: "Babbage & Co", Start: "1842", End: "1843", Details: "Notes\nProgram"},
		},
		Education: []model.Education{
			{School: "Home", Details: "Tutored"},
			{Degree: "BA"},
		},
	}
	if diff := cmp.Diff(want, session.Snapshot()); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
	if notified == 0 {
		t.Fatalf("expected subscribers to be notified")
	}

	last := driver.infos[len(driver.infos)-1]
	if last != "Missing required fields: Education #2 School" {
		t.Fatalf("unexpected final notice %q", last)
	}
	if !strings.Contains(strings.Join(driver.infos, "|"), "Experience #1") {
		t.Fatalf("expected section headers, got %v", driver.infos)
	}

	wantHelps := map[string]string{
		"Full Name *":            requiredHelp,
		"Email":                  "",
		"Role *":                 requiredHelp,
		"Details (one per line)": bulletHelp,
		"Add education entry?":   "Answer no to move on to the next section.",
	}
	for message, want := range wantHelps {
		if got := driver.helps[message]; got != want {
			t.Fatalf("help for %q = %q, want %q", message, got, want)
		}
	}
}

func TestFormRunStopsOnAbort(t *testing.T) {
	driver := &scriptedDriver{inputs: map[string][]string{}}
	form := &Form{Driver: &abortingDriver{scriptedDriver: driver}, Session: service.NewSession(model.Default())}

	if err := form.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

type abortingDriver struct {
	*scriptedDriver
}

func (d *abortingDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	return "", ErrAborted
}

func TestFieldMessageMarksRequired(t *testing.T) {
	if got := fieldMessage("Role", true); got != "Role *" {
		t.Fatalf("unexpected %q", got)
	}
	if got := fieldMessage("Start", false); got != "Start" {
		t.Fatalf("unexpected %q", got)
	}
}
