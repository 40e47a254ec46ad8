package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"pet-shelter/internal/domain/predictions"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorOK    = lipgloss.Color("#2CD7C7")
	colorWarn  = lipgloss.Color("#F4D03F")
	colorError = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#2C4A54")

	styleBold  = lipgloss.NewStyle().Bold(true)
	styleOK    = lipgloss.NewStyle().Foreground(colorOK)
	styleWarn  = lipgloss.NewStyle().Foreground(colorWarn)
	styleError = lipgloss.NewStyle().Foreground(colorError)
	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
)

func render(s lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

func printSuccess(format string, args ...any) {
	fmt.Fprintln(os.Stderr, render(styleOK, "✓ "+fmt.Sprintf(format, args...)))
}

func printError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, render(styleError, "✗ "+fmt.Sprintf(format, args...)))
}

func renderModelResult(name string, r predictions.ModelResult) string {
	var b strings.Builder
	switch {
	case r.Error != "":
		b.WriteString(render(styleError, "✗ "+name) + ": " + r.Error)
	case !r.Trained:
		b.WriteString(render(styleWarn, "○ "+name) + ": " + r.Message)
	default:
		b.WriteString(render(styleOK, "✓ "+name) + fmt.Sprintf(": %d samples", r.Samples))
		if r.Accuracy != nil {
			b.WriteString(fmt.Sprintf(", accuracy %.1f%%", *r.Accuracy))
		}
		if r.R2Score != nil {
			b.WriteString(fmt.Sprintf(", r2 %.3f", *r.R2Score))
		}
		for _, f := range topFactors(r.FeatureImportance, 3) {
			b.WriteString("\n    " + render(styleMuted, fmt.Sprintf("%-18s %.4f", f, r.FeatureImportance[f])))
		}
	}
	return b.String()
}

// topFactors ordena por peso descendente; empates por nombre.
func topFactors(m map[string]float64, n int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func predictionsTable(items []predictions.Prediction) string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			p.Name,
			p.Species,
			strconv.Itoa(p.DaysInShelter),
			optional(p.PriorityScore, "%.1f"),
			string(p.Priority),
			optional(p.AdoptionLikelihood, "%.1f%%"),
			optional(p.TimeToAdoptionDays, "%.1f"),
			p.Error,
		})
	}

	t := table.New().
		Headers("NAME", "SPECIES", "DAYS", "SCORE", "PRIORITY", "LIKELIHOOD", "ETA DAYS", "ERROR").
		Rows(rows...)
	if noColor {
		return t.Border(lipgloss.ASCIIBorder()).String()
	}
	return t.
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleMuted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleBold.Padding(0, 1)
			}
			s := lipgloss.NewStyle().Padding(0, 1)
			if col == 4 {
				switch predictions.Level(rows[row][4]) {
				case predictions.LevelHigh:
					return s.Foreground(colorError)
				case predictions.LevelMedium:
					return s.Foreground(colorWarn)
				}
			}
			return s
		}).
		String()
}

func optional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}
