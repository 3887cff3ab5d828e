package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	proficientStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	abilityStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Align(lipgloss.Center).
			Width(12)
)

// Terminal renders a character card for a terminal
func Terminal(c *sheet.Character) string {
	view := NewCardView(c, "")

	var b strings.Builder

	header := nameStyle.Render(view.Name)
	if view.HasLevel {
		header += mutedStyle.Render("  Nível " + view.Level)
	}
	b.WriteString(header)
	b.WriteString("\n")

	var stats []string
	if view.HasHitPoints {
		pv := "PV " + view.HitPoints
		if view.HitDie != "" {
			pv += " (" + view.HitDie + ")"
		}
		stats = append(stats, pv)
	}
	if view.HasArmorClass {
		stats = append(stats, "CA "+view.ArmorClass)
	}
	if view.HasProficiency {
		stats = append(stats, "Prof "+view.Proficiency)
	}
	stats = append(stats, "Iniciativa "+view.Initiative)
	b.WriteString(strings.Join(stats, "  "))
	b.WriteString("\n")

	var meta []string
	for _, s := range []string{view.Race, view.Class} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	if len(view.Languages) > 0 {
		meta = append(meta, "Idiomas: "+strings.Join(view.Languages, ", "))
	}
	if len(meta) > 0 {
		b.WriteString(mutedStyle.Render(strings.Join(meta, " · ")))
		b.WriteString("\n")
	}

	if len(view.Abilities) > 0 {
		blocks := make([]string, 0, len(view.Abilities))
		for _, a := range view.Abilities {
			blocks = append(blocks, abilityStyle.Render(a.Name+"\n"+a.Value+" ("+a.Modifier+")"))
		}
		b.WriteString(headingStyle.Render("Habilidades"))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		b.WriteString("\n")
	}

	if len(view.SavingThrows) > 0 {
		b.WriteString(headingStyle.Render("Testes de Resistência"))
		b.WriteString("\n")
		for _, st := range view.SavingThrows {
			b.WriteString(marked(st.Name+": "+st.Bonus, st.Proficient))
			b.WriteString("\n")
		}
	}

	if len(view.SkillGroups) > 0 {
		b.WriteString(headingStyle.Render("Perícias"))
		b.WriteString("\n")
		for _, group := range view.SkillGroups {
			b.WriteString(mutedStyle.Render(group.Title))
			b.WriteString("\n")
			for _, skill := range group.Skills {
				b.WriteString("  " + marked(skill.Name+": "+skill.Bonus, skill.Proficient))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString(headingStyle.Render("Proficiências"))
	b.WriteString("\n")
	b.WriteString("Armas: " + view.Proficiencies.Weapons + "\n")
	b.WriteString("Armaduras: " + view.Proficiencies.Armor + "\n")
	b.WriteString("Ferramentas: " + view.Proficiencies.Tools)

	return cardStyle.Render(b.String())
}

func marked(text string, proficient bool) string {
	if proficient {
		return proficientStyle.Render("● " + text)
	}
	return "○ " + text
}
