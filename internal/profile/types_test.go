package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillGroups_PreservesDocumentOrder(t *testing.T) {
	doc := `{
		"Security": ["Threat Modeling", "Incident Response"],
		"Languages": ["Python", "Go"],
		"Tools": ["SIEM"]
	}`

	var groups SkillGroups
	err := json.Unmarshal([]byte(doc), &groups)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "Security", groups[0].Category)
	assert.Equal(t, []string{"Threat Modeling", "Incident Response"}, groups[0].Skills)
	assert.Equal(t, "Languages", groups[1].Category)
	assert.Equal(t, []string{"Python", "Go"}, groups[1].Skills)
	assert.Equal(t, "Tools", groups[2].Category)
}

func TestSkillGroups_RoundTripKeepsOrder(t *testing.T) {
	groups := SkillGroups{
		{Category: "Zeta", Skills: []string{"a"}},
		{Category: "Alpha", Skills: []string{"b", "c"}},
	}

	data, err := json.Marshal(groups)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":["a"],"Alpha":["b","c"]}`, string(data))

	var back SkillGroups
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, groups, back)
}

func TestSkillGroups_NullAndNonObject(t *testing.T) {
	var groups SkillGroups
	require.NoError(t, json.Unmarshal([]byte(`null`), &groups))
	assert.Nil(t, groups)

	err := json.Unmarshal([]byte(`["not", "an", "object"]`), &groups)
	assert.Error(t, err)
}

func TestResumeData_Decode(t *testing.T) {
	doc := `{
		"personal": {
			"bio": "I break things professionally.",
			"certifications": [
				{"name": "OSCP", "issuer": "Offensive Security", "credential": "ABC123"}
			]
		},
		"skills": {"Security": ["DevSecOps"]}
	}`

	var resume ResumeData
	require.NoError(t, json.Unmarshal([]byte(doc), &resume))

	assert.Equal(t, "I break things professionally.", resume.Personal.Bio)
	require.Len(t, resume.Personal.Certifications, 1)
	assert.Equal(t, "OSCP", resume.Personal.Certifications[0].Name)
	require.Len(t, resume.Skills, 1)
	assert.Equal(t, "Security", resume.Skills[0].Category)
}

func TestLanguage_PairEncoding(t *testing.T) {
	lang := Language{Name: "Go", Count: 7}

	data, err := json.Marshal(lang)
	require.NoError(t, err)
	assert.Equal(t, `["Go",7]`, string(data))

	var back Language
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, lang, back)

	var bad Language
	assert.Error(t, json.Unmarshal([]byte(`["Go"]`), &bad))
}

func TestStatsData_Decode(t *testing.T) {
	doc := `{
		"username": "kholcomb",
		"total_stars": 42,
		"top_languages": [["Python", 9], ["Go", 4]],
		"top_repos": [
			{"name": "scanner", "url": "https://github.com/kholcomb/scanner", "stars": 12}
		],
		"updated_at": "2024-03-05T00:00:00Z"
	}`

	var stats StatsData
	require.NoError(t, json.Unmarshal([]byte(doc), &stats))

	assert.Equal(t, 42, stats.TotalStars)
	require.Len(t, stats.TopLanguages, 2)
	assert.Equal(t, Language{Name: "Python", Count: 9}, stats.TopLanguages[0])
	require.Len(t, stats.TopRepos, 1)
	assert.Empty(t, stats.TopRepos[0].Description)
}
