// Package tui implements ndctl's optional interactive dashboard: a
// bubbletea Elm-style model, heavily trimmed from the teacher's
// orchestration-progress dashboard down to the one live view this
// library's demonstrator needs — stepping through a sliding window over
// an iota slice while accumulating a BigInt via repeated MulPow5.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/ndcore/bigint"
	"github.com/agbru/ndcore/internal/config"
	"github.com/agbru/ndcore/internal/ui"
	"github.com/agbru/ndcore/ndslice"
)

const (
	sourceLength = 12
	windowWidth  = 3
)

// KeyMap binds the dashboard's key handling to bubbles/key so that
// bindings are self-describing and testable independent of Update.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Fold key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the dashboard's key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l/n", "next window")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h/p", "prev window")),
		Fold: key.NewBinding(key.WithKeys("m", "enter"), key.WithHelp("m/enter", "fold into accumulator")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the root bubbletea model for ndctl's dashboard.
type Model struct {
	source      ndslice.Slice[int, ndslice.Contiguous]
	windows     ndslice.Slice[ndslice.Slice[int, ndslice.Universal], ndslice.Universal]
	keymap      KeyMap
	cursor      int
	accumulator *bigint.BigInt
	steps       uint
	overflowed  bool
	quitting    bool
}

// NewModel builds the initial dashboard state: a length-sourceLength
// iota slice and its width-windowWidth sliding windows.
func NewModel() Model {
	src := ndslice.Iota([]int{sourceLength}, 0, 1)
	win := ndslice.Windows(src, []int{windowWidth})
	return Model{
		source:      src,
		windows:     win,
		keymap:      DefaultKeyMap(),
		accumulator: bigint.New(config.Capacity256).SetUint64(1),
	}
}

// Init satisfies tea.Model; the dashboard has no initial command.
func (m Model) Init() tea.Cmd { return nil }

// Update advances the cursor over the windows or folds the current
// window's first element into the accumulator via MulPow5.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keymap.Next):
		if m.cursor < m.windows.Len()-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keymap.Prev):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keymap.Fold):
		win := m.windows.AtFlat(m.cursor)
		k := uint(win.AtFlat(0))
		if m.accumulator.MulPow5(k) {
			m.overflowed = true
		}
		m.steps++
	}
	return m, nil
}

// View renders the header, the current window, and the BigInt
// accumulator, styled through internal/ui's theme.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	fmt.Fprintln(&b, ui.Dark.Primary.Render(fmt.Sprintf("ndctl tui — window %d/%d", m.cursor+1, m.windows.Len())))
	fmt.Fprintln(&b, ui.Dark.Secondary.Render(fmt.Sprintf("source: %s", formatFlat(m.source.Universal()))))

	win := m.windows.AtFlat(m.cursor)
	fmt.Fprintln(&b, "window: "+ui.Dark.Success.Render(formatFlat(win)))

	acc := fmt.Sprintf("accumulator (%d mulPow5 steps): %s", m.steps, m.accumulator.String())
	if m.overflowed {
		acc = ui.Dark.Warning.Render(acc + " (capacity exceeded, truncated)")
	}
	fmt.Fprintln(&b, acc)

	fmt.Fprintln(&b, ui.Dark.Secondary.Render(footerHints(m.keymap)))
	return b.String()
}

func footerHints(km KeyMap) string {
	bindings := []key.Binding{km.Prev, km.Next, km.Fold, km.Quit}
	parts := make([]string, len(bindings))
	for i, binding := range bindings {
		h := binding.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return strings.Join(parts, " · ")
}

func formatFlat(s ndslice.Slice[int, ndslice.Universal]) string {
	parts := make([]string, s.Len())
	for k := 0; k < s.Len(); k++ {
		parts[k] = fmt.Sprintf("%d", s.AtFlat(k))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Run starts the dashboard program and blocks until the user quits.
func Run(ctx context.Context, version string) int {
	p := tea.NewProgram(NewModel(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Println("tui error:", err)
		return 1
	}
	return 0
}
