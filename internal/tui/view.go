package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/joice/internal/domain"
	"github.com/alexander-akhmetov/joice/internal/engine"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	innerWidth := max(m.width-4, 20)

	var b strings.Builder
	b.WriteString(m.renderHeader(innerWidth))
	b.WriteString("\n")

	if m.showSummary {
		b.WriteString(summaryBoxStyle.Width(m.width - 2).Render(m.summary.View()))
	} else {
		b.WriteString(stepBoxStyle.Width(m.width - 2).Render(m.renderStep(innerWidth)))
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderHeader draws the title, the step counter and the progress bar.
func (m Model) renderHeader(width int) string {
	var b strings.Builder

	counter := fmt.Sprintf("Step %d of %d", m.state.StepIndex()+1, domain.StepCount)
	done := m.state.StepIndex() + 1
	if m.showSummary {
		counter = "Order summary"
	}
	b.WriteString(padBetween(titleStyle.Render("🥗 JOICE"), labelStyle.Render(counter), width))
	b.WriteString("\n")
	b.WriteString(progressBar(done, domain.StepCount, min(width, 48)))
	b.WriteString("\n")
	b.WriteString(m.renderCrumbs())
	b.WriteString("\n")
	return b.String()
}

// renderCrumbs lists the steps, marking finished and stale ones.
func (m Model) renderCrumbs() string {
	stale := m.state.Stale(m.catalog)
	sel := m.state.Selections()

	parts := make([]string, 0, domain.StepCount)
	for i, step := range domain.Steps() {
		label := step.Label
		style := labelStyle
		switch {
		case i == m.state.StepIndex() && !m.showSummary:
			style = stepTitleStyle
		case sel.Get(step.Key) != nil:
			label = "✓ " + label
			style = doneStepStyle
		}
		part := style.Render(label)
		for _, k := range stale {
			if k == step.Key {
				part += staleStyle.Render(" ⚠")
			}
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, labelStyle.Render(" › "))
}

// renderStep draws the current step's title and its eligible items.
func (m Model) renderStep(width int) string {
	var b strings.Builder
	step := m.state.Step()

	b.WriteString(stepTitleStyle.Render(step.Title))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(step.Subtitle))
	b.WriteString("\n\n")

	items := m.eligible()
	if len(items) == 0 {
		b.WriteString(noticeStyle.Render("Nothing on the menu matches your earlier picks."))
		b.WriteString("\n")
		return b.String()
	}

	current := m.state.Current()
	for i, it := range items {
		b.WriteString(m.renderItem(it, i == m.cursor, current != nil && current.ID == it.ID, width))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderItem(it *domain.Item, focused, selected bool, width int) string {
	var b strings.Builder

	pointer := "  "
	if focused {
		pointer = cursorStyle.Render("› ")
	}
	mark := labelStyle.Render("○ ")
	name := valueStyle.Render(it.Name)
	if selected {
		mark = selectedStyle.Render("● ")
		name = selectedStyle.Render(it.Name)
	}

	price := priceStyle.Render(m.opts.Currency + it.Price.String())
	b.WriteString(padBetween(pointer+mark+name, price, width))
	b.WriteString("\n")

	details := it.Description
	if it.Nutrition != nil {
		kcal := fmt.Sprintf("%.0f kcal", it.Nutrition.Calories)
		if details == "" {
			details = kcal
		} else {
			details += " · " + kcal
		}
	}
	if details != "" {
		b.WriteString(labelStyle.Render("    " + wrapText(details, width-4, "    ", 2)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFooter shows the running total and any notice for the step.
func (m Model) renderFooter() string {
	sel := m.state.Selections()
	total := labelStyle.Render("Total: ") +
		valueStyle.Render(m.opts.Currency+engine.TotalPrice(sel).String())

	lines := []string{total}

	if m.currentStale() {
		lines = append(lines, staleStyle.Render(fmt.Sprintf(
			"⚠ %s is not offered with your %s pick",
			m.state.Current().Name, strings.ToLower(m.previousLabel()))))
	}
	if m.opts.Strict && m.state.CanAdvance() && !m.canAdvance() {
		lines = append(lines, noticeStyle.Render("Change the picks marked ⚠ to continue."))
	}
	if m.notice != "" {
		lines = append(lines, staleStyle.Render(m.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) previousLabel() string {
	if step, ok := domain.StepAt(m.state.StepIndex() - 1); ok {
		return step.Label
	}
	return ""
}
