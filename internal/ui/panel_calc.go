package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gridlab/internal/calc"
	"github.com/five82/gridlab/internal/fruits"
)

// calculationComponent counts runs of the expensive calculation.
const calculationComponent = "Calculation"

type calcPanelProps struct {
	frame
	input     int
	count     int
	inputView string
}

type calcPanel struct {
	panel *component[calcPanelProps]
}

func newCalcPanel() *calcPanel {
	return &calcPanel{panel: newComponent("ExpensiveCalculator", equalComparable[calcPanelProps])}
}

func (p *calcPanel) components() []string {
	return []string{p.panel.name, calculationComponent}
}

func (p *calcPanel) view(m Model, f frame) string {
	props := calcPanelProps{frame: f, input: m.calcValue, count: m.calcCount, inputView: m.calcInput.View()}
	return p.panel.render(m.tracker, true, props, func(props calcPanelProps) string {
		t := props.theme()
		res := m.calculate(props.input, props.memoize)

		label := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
		value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Accent))
		factors := "none"
		if len(res.Factors) > 0 {
			parts := make([]string, len(res.Factors))
			for i, n := range res.Factors {
				parts[i] = strconv.Itoa(n)
			}
			factors = strings.Join(parts, ", ")
		}

		return joinBlocks(
			heading(t, "Expensive calculator"),
			label.Render(fmt.Sprintf("Count (does not affect the result): %d", props.count)),
			label.Render(fmt.Sprintf("Input number (capped at %d for Fibonacci)", calc.MaxFibonacciInput))+"\n"+props.inputView,
			label.Render(fmt.Sprintf("Fibonacci(%d): ", res.Capped))+value.Render(strconv.Itoa(res.Fibonacci))+"\n"+
				label.Render(fmt.Sprintf("Prime factors of %d: ", res.Input))+value.Render(factors),
		)
	})
}

// calculate runs the expensive work, through the memoizing calculator when
// memoize is on.
func (m Model) calculate(input int, memoize bool) calc.Result {
	if !memoize {
		m.tracker.record(calculationComponent, reasonUnmemoized)
		return calc.Result{
			Input:     input,
			Capped:    min(input, calc.MaxFibonacciInput),
			Fibonacci: calc.Fibonacci(input),
			Factors:   calc.PrimeFactors(input),
		}
	}
	before := m.calc.Recomputations()
	res := m.calc.Compute(input)
	if m.calc.Recomputations() > before {
		m.tracker.record(calculationComponent, reasonInputsChanged)
	}
	return res
}

// Searchable list tab.

type searchPanelProps struct {
	frame
	term      string
	count     int
	inputView string
}

type searchInputProps struct {
	frame
	view string
}

type fruitListProps struct {
	frame
	term string
}

type searchPanel struct {
	panel *component[searchPanelProps]
	input *component[searchInputProps]
	list  *component[fruitListProps]
}

func newSearchPanel() *searchPanel {
	return &searchPanel{
		panel: newComponent("SearchableList", equalComparable[searchPanelProps]),
		input: newComponent("SearchInput", equalComparable[searchInputProps]),
		list:  newComponent("FruitList", equalComparable[fruitListProps]),
	}
}

func (p *searchPanel) components() []string {
	return []string{p.panel.name, p.input.name, p.list.name}
}

func (p *searchPanel) view(m Model, f frame) string {
	props := searchPanelProps{
		frame:     f,
		term:      m.searchInput.Value(),
		count:     m.searchCount,
		inputView: m.searchInput.View(),
	}
	return p.panel.render(m.tracker, true, props, func(props searchPanelProps) string {
		t := props.theme()
		counter := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).
			Render(fmt.Sprintf("Counter (unrelated state): %d", props.count))
		input := p.input.render(m.tracker, props.memoize, searchInputProps{frame: props.frame, view: props.inputView}, drawSearchInput)
		list := p.list.render(m.tracker, props.memoize, fruitListProps{frame: props.frame, term: props.term}, drawFruitList)
		return joinBlocks(heading(t, "Searchable list"), counter, input, list)
	})
}

func drawSearchInput(props searchInputProps) string {
	t := props.theme()
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Width(max(min(props.width, 48)-2, 1)).
		Render(props.view)
}

func drawFruitList(props fruitListProps) string {
	t := props.theme()
	matches := fruits.Filter(fruits.All, props.term)
	if len(matches) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)).Render("No matches")
	}
	item := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	lines := make([]string, len(matches))
	for i, name := range matches {
		lines[i] = item.Render("  " + name)
	}
	return strings.Join(lines, "\n")
}
