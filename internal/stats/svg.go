package stats

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/kholcomb/profile-site/internal/profile"
)

// Theme selects the SVG color palette.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type palette struct {
	bg      string
	text    string
	key     string
	value   string
	border  string
	comment string
}

var palettes = map[Theme]palette{
	ThemeLight: {
		bg:      "#f6f8fa",
		text:    "#24292f",
		key:     "#953800",
		value:   "#0a3069",
		border:  "#d0d7de",
		comment: "#c2cfde",
	},
	ThemeDark: {
		bg:      "#0d1117",
		text:    "#c9d1d9",
		key:     "#f0883e",
		value:   "#58a6ff",
		border:  "#30363d",
		comment: "#8b949e",
	},
}

// Profile lines that are not derived from the API.
const (
	roleLine  = "Senior Security Engineer"
	certsLine = "CCSP | CISSP"
)

var securitySkills = []string{
	"DevSecOps & Security Architecture",
	"Cloud Security (AWS, Azure)",
	"Threat Modeling & Risk Assessment",
	"Incident Response & Investigation",
	"Container Security & Orchestration",
	"Vulnerability Management",
	"Application Security",
	"Compliance & Standards Development",
}

var toolSkills = []string{
	"IAM & Identity Management",
	"SIEM & Log Analysis",
	"Security Automation & CI/CD",
	"Containers & Kubernetes",
	"Infrastructure as Code",
}

type infoLine struct {
	key     string
	value   string
	comment bool
}

// RenderSVG produces the terminal-style profile graphic for one theme.
func RenderSVG(stats *profile.StatsData, theme Theme) string {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[ThemeLight]
	}

	displayName := stats.Name
	if displayName == "" {
		displayName = stats.Username
	}

	lines := []infoLine{
		{value: stats.Username + "@github"},
		{key: strings.Repeat("-", 50), comment: true},
		{key: "Name", value: displayName},
		{key: "Role", value: roleLine},
		{key: "Certs", value: certsLine},
		{comment: true},
		{key: "Security"},
	}
	for _, s := range securitySkills {
		lines = append(lines, infoLine{value: "  • " + s})
	}
	lines = append(lines, infoLine{comment: true}, infoLine{key: "Languages"},
		infoLine{value: "  • Python | PowerShell | Bash"})
	for _, lang := range stats.TopLanguages {
		if strings.EqualFold(lang.Name, "python") {
			continue
		}
		lines = append(lines, infoLine{value: "  • " + lang.Name})
	}
	lines = append(lines, infoLine{comment: true}, infoLine{key: "Tools"})
	for _, s := range toolSkills {
		lines = append(lines, infoLine{value: "  • " + s})
	}

	var body strings.Builder
	const yStart, lineHeight = 100, 24
	for i, line := range lines {
		y := yStart + i*lineHeight
		switch {
		case line.comment:
			fmt.Fprintf(&body, "        <text x=\"50\" y=\"%d\" class=\"comment\">%s</text>\n", y, html.EscapeString(line.key))
		case line.key == "":
			fmt.Fprintf(&body, "        <text x=\"50\" y=\"%d\" class=\"value\">%s</text>\n", y, html.EscapeString(line.value))
		default:
			fmt.Fprintf(&body, "        <text x=\"50\" y=\"%d\" class=\"key\">%s:</text>\n", y, html.EscapeString(line.key))
			fmt.Fprintf(&body, "        <text x=\"250\" y=\"%d\" class=\"value\">%s</text>\n", y, html.EscapeString(line.value))
		}
	}

	return fmt.Sprintf(`<svg width="900" height="750" xmlns="http://www.w3.org/2000/svg">
    <style>
        text {
            font-family: 'Consolas', 'Monaco', 'Courier New', monospace;
            font-size: 16px;
        }
        .key { fill: %s; font-weight: 600; }
        .value { fill: %s; }
        .comment { fill: %s; }
        .header { fill: %s; font-weight: 700; font-size: 18px; }
        .footer { fill: %s; font-size: 12px; }
    </style>

    <rect width="900" height="750" fill="%s" rx="10"/>
    <rect width="880" height="730" x="10" y="10" fill="%s" stroke="%s" stroke-width="2" rx="8"/>

    <text x="50" y="60" class="header">💻 %s's GitHub Profile</text>

    <g>
%s    </g>

    <text x="50" y="720" class="footer">Last updated: %s</text>
</svg>`,
		p.key, p.value, p.comment, p.text, p.comment,
		p.bg, p.bg, p.border,
		html.EscapeString(displayName),
		body.String(),
		html.EscapeString(footerTimestamp(stats.UpdatedAt)),
	)
}

// footerTimestamp renders the long footer form the graphics have always
// used; an unparseable value falls through verbatim.
func footerTimestamp(updatedAt string) string {
	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return updatedAt
	}
	return t.Format("January 02, 2006 at 03:04 PM UTC")
}
