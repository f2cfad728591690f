package profile

import (
	"fmt"
	"time"
)

// Fixed strings baked into the page, matching the artifacts the stats job
// generates.
const (
	// FallbackBio is shown when the cached documents cannot be loaded.
	FallbackBio = "Senior Security Engineer focused on cloud security and DevSecOps."

	// NoDescription replaces an absent or empty repository description.
	NoDescription = "No description provided"

	starGlyph = "★"
)

// Page is the fully prepared view model for the profile template. Each
// Has* flag guards its section so the template can skip what the source
// documents did not provide.
type Page struct {
	Bio    string
	HasBio bool

	Skills    SkillGroups
	HasSkills bool

	Projects    []ProjectCard
	HasProjects bool

	Certifications []Certification
	HasCerts       bool

	LastUpdated    string
	HasLastUpdated bool
}

// ProjectCard is one repository card. Stars is the ready-to-render label,
// glyph included.
type ProjectCard struct {
	Name        string
	URL         string
	Description string
	Stars       string
}

// BuildPage maps the two documents into the view model. Every section is
// guarded: missing or empty source fields leave their section disabled
// rather than failing the whole page.
func BuildPage(resume *ResumeData, stats *StatsData) Page {
	var page Page

	if resume != nil {
		if resume.Personal.Bio != "" {
			page.Bio = resume.Personal.Bio
			page.HasBio = true
		}
		if len(resume.Skills) > 0 {
			page.Skills = resume.Skills
			page.HasSkills = true
		}
		if len(resume.Personal.Certifications) > 0 {
			page.Certifications = resume.Personal.Certifications
			page.HasCerts = true
		}
	}

	if stats != nil {
		for _, repo := range stats.TopRepos {
			desc := repo.Description
			if desc == "" {
				desc = NoDescription
			}
			page.Projects = append(page.Projects, ProjectCard{
				Name:        repo.Name,
				URL:         repo.URL,
				Description: desc,
				Stars:       fmt.Sprintf("%s %d", starGlyph, repo.Stars),
			})
		}
		page.HasProjects = len(page.Projects) > 0

		if formatted, ok := FormatUpdated(stats.UpdatedAt); ok {
			page.LastUpdated = formatted
			page.HasLastUpdated = true
		}
	}

	return page
}

// FallbackPage is the page rendered when loading fails: the fixed bio
// sentence and nothing else.
func FallbackPage() Page {
	return Page{Bio: FallbackBio, HasBio: true}
}

// FormatUpdated renders an RFC 3339 timestamp in the long en-US form,
// e.g. "March 5, 2024". Absent or unparseable values report false so the
// label is skipped.
func FormatUpdated(updatedAt string) (string, bool) {
	if updatedAt == "" {
		return "", false
	}
	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return "", false
	}
	return t.Format("January 2, 2006"), true
}
