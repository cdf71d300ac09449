package ui

import (
	"fmt"
	"strings"

	"factsviewer/internal/facts"
	"factsviewer/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the page title block shown above the facts.
func renderHeader(endpoint string, width int) string {
	title := Styles.Title.Render("🎯 Interesting Facts")
	sub := Styles.Subtitle.Render(textutil.Truncate("Fetched from "+textutil.Sanitize(endpoint), width))
	return title + "\n" + sub + "\n"
}

// renderFooter renders the total count line.
func renderFooter(n int) string {
	return Styles.Footer.Render(fmt.Sprintf("Total Facts: %d", n))
}

// renderFactsBody renders the placeholder for an empty list, or the card grid.
func renderFactsBody(list []facts.Fact, width int) string {
	if len(list) == 0 {
		return Styles.Empty.Render("No facts available")
	}
	return renderGrid(list, width)
}

// columnsFor returns how many cards fit side by side in width columns.
func columnsFor(width int) int {
	cols := (width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// renderGrid lays cards out row by row. Cards in a row share a height.
func renderGrid(list []facts.Fact, width int) string {
	outer := cardWidth
	if width < outer {
		outer = width
	}
	cols := columnsFor(width)

	rows := make([]string, 0, (len(list)+cols-1)/cols)
	for start := 0; start < len(list); start += cols {
		end := min(start+cols, len(list))

		height := 0
		for _, f := range list[start:end] {
			height = max(height, lipgloss.Height(renderCard(f, outer, 0)))
		}

		cards := make([]string, 0, end-start)
		for i, f := range list[start:end] {
			card := renderCard(f, outer, height)
			if i < end-start-1 {
				card = lipgloss.NewStyle().MarginRight(cardGap).Render(card)
			}
			cards = append(cards, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one fact in a bordered box outer columns wide. A
// non-zero height stretches the box to that many lines including borders.
func renderCard(f facts.Fact, outer, height int) string {
	// Border takes one column each side, padding another.
	inner := max(outer-4, 1)

	id := fmt.Sprintf("#%d", f.ID)
	category := textutil.Truncate(textutil.Sanitize(f.Category), inner-textutil.Width(id)-1)
	gap := max(inner-textutil.Width(id)-textutil.Width(category), 1)
	header := Styles.FactID.Render(id) + strings.Repeat(" ", gap) + Styles.Category.Render(category)

	body := Styles.FactText.Width(inner).Render(textutil.Sanitize(f.Fact))

	style := Styles.Card.Width(outer - 2)
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(header + "\n" + body)
}
