package prompt

import (
	"context"
	"fmt"
	"strings"

	"resume-builder/resume/model"
	"resume-builder/resume/service"
)

type textField struct {
	label    string
	required bool
	get      func(*model.ResumeData) string
	set      func(*model.ResumeData, string)
}

var basicFields = []textField{
	{"Full Name", true, func(d *model.ResumeData) string { return d.Name }, func(d *model.ResumeData, v string) { d.Name = v }},
	{"Headline / Title", true, func(d *model.ResumeData) string { return d.Title }, func(d *model.ResumeData, v string) { d.Title = v }},
	{"Email", false, func(d *model.ResumeData) string { return d.Email }, func(d *model.ResumeData, v string) { d.Email = v }},
	{"Phone", false, func(d *model.ResumeData) string { return d.Phone }, func(d *model.ResumeData, v string) { d.Phone = v }},
	{"Location", false, func(d *model.ResumeData) string { return d.Location }, func(d *model.ResumeData, v string) { d.Location = v }},
	{"Website", false, func(d *model.ResumeData) string { return d.Website }, func(d *model.ResumeData, v string) { d.Website = v }},
}

type entryField struct {
	label     string
	required  bool
	multiline bool
	help      string
}

var experienceFields = []entryField{
	{label: "Role", required: true},
	{label: "Company", required: true},
	{label: "Start"},
	{label: "End"},
	{label: "Details (one per line)", multiline: true, help: bulletHelp},
}

var educationFields = []entryField{
	{label: "School", required: true},
	{label: "Degree"},
	{label: "Period"},
	{label: "Details", multiline: true, help: "Shown as a single paragraph."},
}

const (
	requiredHelp = "Marked * fields are required. Blank answers are reported at the end."
	bulletHelp   = "Each line becomes a bullet. \"•\" and \"-\" also split bullets."
)

// Form drives a Session through every section of the résumé. Each answer is
// applied with Session.Update so subscribers see the document change as the
// user types.
type Form struct {
	Driver  Driver
	Session *service.Session
}

// Run asks for all fields in display order and reports missing required
// fields at the end. Missing fields never stop the flow.
func (f *Form) Run(ctx context.Context) error {
	steps := []func(context.Context) error{
		f.basics,
		f.summary,
		f.skills,
		f.experiences,
		f.education,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}

	missing := model.MissingRequired(f.Session.Snapshot())
	if len(missing) == 0 {
		return f.Driver.Info(ctx, "All required fields are filled in.")
	}
	return f.Driver.Info(ctx, "Missing required fields: "+strings.Join(missing, ", "))
}

func (f *Form) basics(ctx context.Context) error {
	for _, field := range basicFields {
		current := f.Session.Snapshot()
		v, err := f.Driver.Input(ctx, InputConfig{
			Message: fieldMessage(field.label, field.required),
			Default: field.get(&current),
			Help:    fieldHelp(field.required),
		})
		if err != nil {
			return err
		}
		set := field.set
		if err := f.apply(ctx, func(d *model.ResumeData) { set(d, v) }); err != nil {
			return err
		}
	}
	return nil
}

func (f *Form) summary(ctx context.Context) error {
	v, err := f.Driver.TextArea(ctx, TextAreaConfig{
		Message: "Summary",
		Default: f.Session.Snapshot().Summary,
		Help:    "Line breaks are kept.",
	})
	if err != nil {
		return err
	}
	return f.apply(ctx, func(d *model.ResumeData) { d.Summary = v })
}

func (f *Form) skills(ctx context.Context) error {
	for {
		v, err := f.Driver.Input(ctx, InputConfig{
			Message: "Add skill",
			Help:    "Press Enter on an empty line to continue.",
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(v) == "" {
			return nil
		}
		if err := f.apply(ctx, func(d *model.ResumeData) { d.Skills = model.AddSkill(d.Skills, v) }); err != nil {
			return err
		}
	}
}

func (f *Form) experiences(ctx context.Context) error {
	return f.repeat(ctx, "Experience", experienceFields,
		func(d *model.ResumeData) int { return len(d.Experiences) },
		func(d *model.ResumeData) { d.Experiences = append(d.Experiences, model.Experience{}) },
		func(d *model.ResumeData, idx int) []*string {
			e := &d.Experiences[idx]
			return []*string{&e.Role, &e.Company, &e.Start, &e.End, &e.Details}
		},
	)
}

func (f *Form) education(ctx context.Context) error {
	return f.repeat(ctx, "Education", educationFields,
		func(d *model.ResumeData) int { return len(d.Education) },
		func(d *model.ResumeData) { d.Education = append(d.Education, model.Education{}) },
		func(d *model.ResumeData, idx int) []*string {
			e := &d.Education[idx]
			return []*string{&e.School, &e.Degree, &e.Period, &e.Details}
		},
	)
}

// repeat edits every existing entry of a section and then offers to append
// more. slots returns pointers into the record in the same order as fields.
func (f *Form) repeat(
	ctx context.Context,
	section string,
	fields []entryField,
	count func(*model.ResumeData) int,
	add func(*model.ResumeData),
	slots func(*model.ResumeData, int) []*string,
) error {
	for idx := 0; ; idx++ {
		current := f.Session.Snapshot()
		if idx >= count(&current) {
			more, err := f.Driver.Confirm(ctx, ConfirmConfig{
				Message: fmt.Sprintf("Add %s entry?", strings.ToLower(section)),
				Default: idx == 0,
				Help:    "Answer no to move on to the next section.",
			})
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
			if err := f.apply(ctx, add); err != nil {
				return err
			}
			current = f.Session.Snapshot()
		}

		if err := f.Driver.Info(ctx, fmt.Sprintf("%s #%d", section, idx+1)); err != nil {
			return err
		}
		existing := slots(&current, idx)
		for i, field := range fields {
			v, err := f.ask(ctx, field, *existing[i])
			if err != nil {
				return err
			}
			entry, slot := idx, i
			if err := f.apply(ctx, func(d *model.ResumeData) { *slots(d, entry)[slot] = v }); err != nil {
				return err
			}
		}
	}
}

func (f *Form) ask(ctx context.Context, field entryField, current string) (string, error) {
	if field.multiline {
		return f.Driver.TextArea(ctx, TextAreaConfig{Message: field.label, Default: current, Help: field.help})
	}
	return f.Driver.Input(ctx, InputConfig{
		Message: fieldMessage(field.label, field.required),
		Default: current,
		Help:    fieldHelp(field.required),
	})
}

func (f *Form) apply(ctx context.Context, fn func(*model.ResumeData)) error {
	if _, err := f.Session.Update(ctx, fn); err != nil {
		return fmt.Errorf("prompt: update session: %w", err)
	}
	return nil
}

func fieldHelp(required bool) string {
	if required {
		return requiredHelp
	}
	return ""
}

func fieldMessage(label string, required bool) string {
	if required {
		return label + " *"
	}
	return label
}
