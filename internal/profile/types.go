// Package profile loads the cached resume and GitHub stats documents and
// builds the view model for the profile page.
package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResumeData is the cached resume document maintained alongside the site.
type ResumeData struct {
	Personal Personal    `json:"personal"`
	Skills   SkillGroups `json:"skills"`
}

// Personal holds the bio and certification entries.
type Personal struct {
	Bio            string          `json:"bio"`
	Certifications []Certification `json:"certifications"`
}

// Certification is a single certification entry.
type Certification struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Credential string `json:"credential"`
}

// SkillGroup is one skill category with its entries, in document order.
type SkillGroup struct {
	Category string
	Skills   []string
}

// SkillGroups preserves the insertion order of the "skills" JSON object.
// The standard map decode would lose key order, so it walks the token
// stream instead.
type SkillGroups []SkillGroup

// UnmarshalJSON implements json.Unmarshaler.
func (g *SkillGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*g = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("skills: expected object, got %v", tok)
	}

	groups := SkillGroups{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: unexpected key token %v", keyTok)
		}

		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return fmt.Errorf("skills[%s]: %w", category, err)
		}
		groups = append(groups, SkillGroup{Category: category, Skills: skills})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*g = groups
	return nil
}

// MarshalJSON implements json.Marshaler, writing the object back in the
// same order it was decoded.
func (g SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(group.Skills)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// StatsData is the cached GitHub statistics document produced by the
// scheduled stats job. The page only consumes TopRepos and UpdatedAt; the
// aggregate fields feed the SVG artifacts.
type StatsData struct {
	Username     string     `json:"username,omitempty"`
	Name         string     `json:"name,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	Followers    int        `json:"followers"`
	Following    int        `json:"following"`
	PublicRepos  int        `json:"public_repos"`
	TotalStars   int        `json:"total_stars"`
	TopLanguages []Language `json:"top_languages,omitempty"`
	TopRepos     []RepoRef  `json:"top_repos"`
	UpdatedAt    string     `json:"updated_at"`
}

// RepoRef is one repository entry in the stats document.
type RepoRef struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
}

// Language is a (name, repo count) pair. The stats job has always written
// these as two-element arrays, so the JSON form is ["Go", 5].
type Language struct {
	Name  string
	Count int
}

// MarshalJSON implements json.Marshaler.
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{l.Name, l.Count})
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Language) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("language entry: expected [name, count], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &l.Name); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &l.Count)
}
