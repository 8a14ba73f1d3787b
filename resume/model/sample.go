package model

// Sample returns the record behind the form's "Fill sample" action.
func Sample() ResumeData {
	return ResumeData{
		Name:     "Jordan Lee",
		Title:    "Frontend Engineer",
		Email:    "jordan.lee@example.com",
		Phone:    "+1 (555) 867-5309",
		Location: "Seattle, WA",
		Website:  "https://jordan.dev",
		Summary:  "Frontend engineer with a passion for delightful UX, performance, and accessible design. Comfortable across React, TypeScript, and design systems.",
		Skills:   []string{"React", "TypeScript", "Tailwind", "Vite", "Node", "GraphQL", "Jest", "Accessibility"},
		Experiences: []Experience{
			{
				Role:    "Senior Frontend Engineer",
				Company: "Acme Corp",
				Start:   "2022",
				End:     "Present",
				Details: "Led migration to Vite and modular design system.\nShipped dashboard with 20% faster load times.\nMentored 3 engineers and introduced accessibility checks.",
			},
			{
				Role:    "Frontend Engineer",
				Company: "Nimbus Labs",
				Start:   "2020",
				End:     "2022",
				Details: "Built reusable UI library in React + Tailwind.\nImplemented end-to-end tests and CI quality gates.\nCollaborated closely with design to improve UX.",
			},
		},
		Education: []Education{
			{
				School:  "State University",
				Degree:  "B.Sc. Computer Science",
				Period:  "2016 — 2020",
				Details: "Graduated with Honors. Clubs: Robotics, Coding Society.",
			},
		},
	}
}
