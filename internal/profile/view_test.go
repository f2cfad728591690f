package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPage_AllSections(t *testing.T) {
	resume := &ResumeData{
		Personal: Personal{
			Bio: "Security engineer.",
			Certifications: []Certification{
				{Name: "OSCP", Issuer: "Offensive Security", Credential: "ABC123"},
			},
		},
		Skills: SkillGroups{{Category: "Security", Skills: []string{"DevSecOps"}}},
	}
	stats := &StatsData{
		TopRepos: []RepoRef{
			{Name: "scanner", URL: "https://example.com/scanner", Description: "Port scanner", Stars: 12},
		},
		UpdatedAt: "2024-03-05T00:00:00Z",
	}

	page := BuildPage(resume, stats)

	assert.True(t, page.HasBio)
	assert.Equal(t, "Security engineer.", page.Bio)
	assert.True(t, page.HasSkills)
	assert.True(t, page.HasCerts)
	require.True(t, page.HasProjects)
	assert.Equal(t, "★ 12", page.Projects[0].Stars)
	assert.Equal(t, "Port scanner", page.Projects[0].Description)
	assert.True(t, page.HasLastUpdated)
	assert.Equal(t, "March 5, 2024", page.LastUpdated)
}

func TestBuildPage_EmptyDescriptionGetsPlaceholder(t *testing.T) {
	stats := &StatsData{
		TopRepos: []RepoRef{
			{Name: "a", URL: "https://example.com/a", Stars: 1},
			{Name: "b", URL: "https://example.com/b", Description: "", Stars: 2},
		},
	}

	page := BuildPage(nil, stats)
	require.Len(t, page.Projects, 2)
	assert.Equal(t, NoDescription, page.Projects[0].Description)
	assert.Equal(t, NoDescription, page.Projects[1].Description)
}

func TestBuildPage_MissingSectionsSkipped(t *testing.T) {
	page := BuildPage(&ResumeData{}, &StatsData{})

	assert.False(t, page.HasBio)
	assert.False(t, page.HasSkills)
	assert.False(t, page.HasProjects)
	assert.False(t, page.HasCerts)
	assert.False(t, page.HasLastUpdated)
}

func TestFallbackPage(t *testing.T) {
	page := FallbackPage()
	assert.True(t, page.HasBio)
	assert.Equal(t, FallbackBio, page.Bio)
	assert.False(t, page.HasSkills)
	assert.False(t, page.HasProjects)
}

func TestFormatUpdated(t *testing.T) {
	formatted, ok := FormatUpdated("2024-03-05T00:00:00Z")
	require.True(t, ok)
	assert.Equal(t, "March 5, 2024", formatted)

	_, ok = FormatUpdated("")
	assert.False(t, ok)

	_, ok = FormatUpdated("yesterday-ish")
	assert.False(t, ok)
}
