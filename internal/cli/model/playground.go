// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/smartkeys/internal/application/usecase"
	"github.com/bnema/smartkeys/internal/cli/styles"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/infrastructure/document"
	"github.com/bnema/smartkeys/internal/infrastructure/textinput"
	"github.com/bnema/smartkeys/internal/logging"
	"github.com/bnema/smartkeys/internal/textunit"
)

const (
	focusField = iota
	focusRegion
)

// editable is implemented by both playground surfaces.
type editable interface {
	Text() string
	CaretOffset() (int, error)
	DeleteBeforeCursor(ctx context.Context, n int) error
}

// PlaygroundConfig holds the dependencies of the playground model.
type PlaygroundConfig struct {
	Document  *document.Document
	SmartKeys *usecase.SmartKeysUseCase
	// RegionMarkup seeds the rich region.
	RegionMarkup string
}

// PlaygroundModel is the Bubble Tea model for the typing playground: one
// plain field and one rich region sharing a document with smart keys
// installed.
type PlaygroundModel struct {
	// UI components
	help help.Model
	keys styles.PlaygroundKeyMap

	// State
	focused  int
	lastRule string
	status   string
	err      error
	width    int
	height   int

	// Dependencies
	ctx       context.Context
	theme     *styles.Theme
	doc       *document.Document
	smartKeys *usecase.SmartKeysUseCase
	field     *textinput.Field
	region    *textinput.Region
}

// NewPlaygroundModel creates the playground with the field focused.
func NewPlaygroundModel(ctx context.Context, theme *styles.Theme, cfg PlaygroundConfig) (PlaygroundModel, error) {
	if cfg.Document == nil || cfg.SmartKeys == nil {
		return PlaygroundModel{}, fmt.Errorf("playground needs a document and the smart keys use case")
	}

	region, err := textinput.NewRegion(cfg.RegionMarkup)
	if err != nil {
		return PlaygroundModel{}, err
	}
	field := textinput.NewTextarea("")

	cfg.Document.Add(field)
	cfg.Document.Add(region)
	cfg.Document.Focus(field)

	return PlaygroundModel{
		help:      theme.NewHelp(),
		keys:      styles.DefaultPlaygroundKeyMap(),
		focused:   focusField,
		width:     80,
		height:    24,
		ctx:       ctx,
		theme:     theme,
		doc:       cfg.Document,
		smartKeys: cfg.SmartKeys,
		field:     field,
		region:    region,
	}, nil
}

// Init implements tea.Model.
func (m PlaygroundModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PlaygroundModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextSurface):
		m.switchFocus()

	case key.Matches(msg, m.keys.ToggleCaret):
		next := entity.CaretLegacy
		if m.smartKeys.CaretPolicy() == entity.CaretLegacy {
			next = entity.CaretAfterReplacement
		}
		m.smartKeys.SetCaretPolicy(next)
		m.status = "caret policy: " + string(next)

	case key.Matches(msg, m.keys.ToggleSmart):
		m.toggleSmartKeys()

	case key.Matches(msg, m.keys.Left):
		m.moveCaret(func(caret, _ int) int { return caret - 1 })

	case key.Matches(msg, m.keys.Right):
		m.moveCaret(func(caret, _ int) int { return caret + 1 })

	case key.Matches(msg, m.keys.Home):
		m.moveCaret(func(int, int) int { return 0 })

	case key.Matches(msg, m.keys.End):
		m.moveCaret(func(_, n int) int { return n })

	case key.Matches(msg, m.keys.Backspace):
		m.err = m.active().DeleteBeforeCursor(m.ctx, 1)

	case key.Matches(msg, m.keys.Enter):
		m.press(entity.NewKeyPress('\r', entity.ModNone))

	case key.Matches(msg, m.keys.LiteralDash):
		m.press(entity.NewKeyPress(entity.CharCodeUnitSeparator, entity.ModCtrl))

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		mods := entity.ModNone
		if msg.Alt {
			mods |= entity.ModAlt
		}
		for _, r := range msg.Runes {
			if m.press(entity.NewKeyPress(r, mods)) != nil {
				break
			}
		}
	}

	return m, nil
}

func (m *PlaygroundModel) press(p entity.KeyPress) error {
	res, err := m.doc.Press(m.ctx, p)
	if err != nil {
		m.err = err
		logging.FromContext(m.ctx).Debug().Err(err).Str("char", p.Text()).Msg("keypress failed")
		return err
	}
	if res.Prevented {
		m.lastRule = m.describeLast(p)
	}
	return nil
}

// describeLast summarizes the substitution that just fired.
func (m *PlaygroundModel) describeLast(p entity.KeyPress) string {
	text := m.active().Text()
	caret, err := m.active().CaretOffset()
	if err != nil || caret == 0 {
		return styles.DisplayChar(p.Char)
	}
	return fmt.Sprintf("%s → %s", styles.DisplayChar(p.Char), textunit.At(text, caret-1))
}

func (m *PlaygroundModel) switchFocus() {
	if m.focused == focusField {
		m.focused = focusRegion
		m.doc.Focus(m.region)
		return
	}
	m.focused = focusField
	m.doc.Focus(m.field)
}

func (m *PlaygroundModel) toggleSmartKeys() {
	if m.smartKeys.Installed() {
		m.smartKeys.Uninstall()
		m.status = "smart keys off"
		return
	}
	if err := m.smartKeys.Install(m.ctx, m.doc); err != nil {
		m.err = err
		return
	}
	m.status = "smart keys on"
}

func (m *PlaygroundModel) moveCaret(next func(caret, length int) int) {
	s := m.active()
	caret, err := s.CaretOffset()
	if err != nil {
		m.err = err
		return
	}
	n := textunit.Count(s.Text())
	to := min(max(next(caret, n), 0), n)

	switch m.focused {
	case focusField:
		m.field.SetSelectionRange(to, to)
	case focusRegion:
		m.region.SetCaret(to)
	}
}

func (m *PlaygroundModel) active() editable {
	if m.focused == focusRegion {
		return m.region
	}
	return m.field
}

// View implements tea.Model.
func (m PlaygroundModel) View() string {
	width := max(m.width-4, 20)

	fieldCaret, _ := m.field.CaretOffset()
	regionCaret, regionErr := m.region.CaretOffset()

	title := m.theme.Title.Render("smartkeys playground")
	badges := []string{m.theme.MutedBadge(string(m.smartKeys.CaretPolicy()))}
	if m.smartKeys.Installed() {
		badges = append(badges, m.theme.AccentBadge("on"))
	} else {
		badges = append(badges, m.theme.MutedBadge("off"))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(badges, " "))

	sections := []string{
		header,
		"",
		m.theme.RenderSurface(styles.SurfaceView{
			Label:   "field (" + strings.ToLower(m.field.NodeName()) + ")",
			Text:    m.field.Text(),
			Caret:   fieldCaret,
			Focused: m.focused == focusField,
			Width:   width,
		}),
		m.theme.RenderSurface(styles.SurfaceView{
			Label:   "region (contenteditable)",
			Text:    m.region.Text(),
			Caret:   regionCaret,
			Focused: m.focused == focusRegion && regionErr == nil,
			Width:   width,
		}),
		m.theme.Subtle.Render("html: ") + m.region.InnerHTML(),
		"",
	}

	var status []string
	if m.lastRule != "" {
		status = append(status, m.theme.Subtle.Render("last: ")+m.theme.Highlight.Render(m.lastRule))
	}
	if m.status != "" {
		status = append(status, m.theme.Subtle.Render(m.status))
	}
	if m.err != nil {
		status = append(status, m.theme.ErrorStyle.Render(m.err.Error()))
	}
	if len(status) > 0 {
		sections = append(sections, strings.Join(status, "  "))
	}

	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
