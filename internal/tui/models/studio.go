package models

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mqlforge/mqlforge/internal/export"
	"github.com/mqlforge/mqlforge/internal/forge"
	"github.com/mqlforge/mqlforge/internal/prompt"
	"github.com/mqlforge/mqlforge/internal/strategy"
	"github.com/mqlforge/mqlforge/internal/tui/components"
	"github.com/mqlforge/mqlforge/internal/tui/styles"
)

// ---------------------------------------------------------------------------
// Field enumeration
// ---------------------------------------------------------------------------

// studioField enumerates the focusable form fields in tab order.
type studioField int

const (
	fieldTemplate studioField = iota // 0
	fieldDescription                 // 1
	fieldSymbol                      // 2
	fieldTimeframe                   // 3
	fieldLotSize                     // 4
	fieldStopLoss                    // 5
	fieldTakeProfit                  // 6
	fieldTrailing                    // 7
)

const studioFieldCount = 8

// ---------------------------------------------------------------------------
// Tea messages
// ---------------------------------------------------------------------------

// generateDoneMsg carries one finished generation call back into Update.
// The sequence number lets the orchestrator drop results that a newer
// submission has superseded.
type generateDoneMsg struct {
	seq uint64
	raw string
	err error
}

// noticeExpireMsg clears the transient footer notice.
type noticeExpireMsg struct{}

// ---------------------------------------------------------------------------
// StudioModel
// ---------------------------------------------------------------------------

// StudioModel implements tea.Model for the `mqlforge studio` screen: the
// strategy form on the left, the generated Expert Advisor on the right.
// Submission is disabled while a generation is in flight; the orchestrator
// guarantees a late result from a superseded call is ignored.
type StudioModel struct {
	orch      *forge.Orchestrator
	outputDir string

	// Form state
	focus       studioField
	templateIdx int
	timeframeIdx int
	trailing    bool
	description textarea.Model
	symbol      textinput.Model
	lotSize     textinput.Model
	stopLoss    textinput.Model
	takeProfit  textinput.Model
	formError   string

	// Generation state
	spin   spinner.Model
	code   viewport.Model
	notice string

	// Layout
	width  int
	height int
}

// NewStudioModel creates the studio wired to the given orchestrator.
// Exports land in outputDir.
func NewStudioModel(orch *forge.Orchestrator, outputDir string) StudioModel {
	defaults := strategy.Defaults()

	desc := textarea.New()
	desc.Placeholder = "Describe your trading logic (entries, exits, sessions, patterns)..."
	desc.SetHeight(8)
	desc.CharLimit = 0
	desc.Focus()

	symbol := textinput.New()
	symbol.Placeholder = "blank = current symbol"
	symbol.SetValue(defaults.Symbol)
	symbol.CharLimit = 16

	lot := textinput.New()
	lot.SetValue(strconv.FormatFloat(defaults.LotSize, 'f', -1, 64))
	lot.CharLimit = 8

	sl := textinput.New()
	sl.SetValue(strconv.Itoa(defaults.StopLossPoints))
	sl.CharLimit = 6

	tp := textinput.New()
	tp.SetValue(strconv.Itoa(defaults.TakeProfitPoints))
	tp.CharLimit = 6

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.AccentPrimary)

	tfIdx := 0
	for i, tf := range strategy.AllTimeframes() {
		if tf == defaults.Timeframe {
			tfIdx = i
		}
	}

	m := StudioModel{
		orch:         orch,
		outputDir:    outputDir,
		focus:        fieldDescription,
		timeframeIdx: tfIdx,
		description:  desc,
		symbol:       symbol,
		lotSize:      lot,
		stopLoss:     sl,
		takeProfit:   tp,
		spin:         sp,
		width:        100,
		height:       32,
	}
	m.layout()
	return m
}

// ---------------------------------------------------------------------------
// tea.Model interface
// ---------------------------------------------------------------------------

// Init starts the cursor blink.
func (m StudioModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update processes messages and key events.
func (m StudioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width < 80 {
			m.width = 80
		}
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case generateDoneMsg:
		if !m.orch.Complete(msg.seq, msg.raw, msg.err) {
			return m, nil // superseded call; nothing to show
		}
		if m.orch.State() == forge.StateSucceeded {
			m.code.SetContent(components.HighlightANSI(m.orch.Code()))
			m.code.GotoTop()
		}
		return m, nil

	case noticeExpireMsg:
		m.notice = ""
		return m, nil

	case spinner.TickMsg:
		if m.orch.State() == forge.StateInFlight {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// ---------------------------------------------------------------------------
// Key handling
// ---------------------------------------------------------------------------

func (m StudioModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.setFocus((m.focus + 1) % studioFieldCount)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + studioFieldCount - 1) % studioFieldCount)
		return m, nil

	case "ctrl+g":
		return m.submit()

	case "ctrl+y":
		if code := m.orch.Code(); code != "" {
			if err := export.CopyToClipboard(code); err != nil {
				return m.showNotice("Copy failed")
			}
			return m.showNotice("Copied to clipboard")
		}
		return m, nil

	case "ctrl+s":
		if code := m.orch.Code(); code != "" {
			path, err := export.Save(code, m.outputDir, "")
			if err != nil {
				return m.showNotice("Save failed")
			}
			return m.showNotice("Saved " + path)
		}
		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.code, cmd = m.code.Update(msg)
		return m, cmd
	}

	// Cycling fields consume arrow/space themselves.
	switch m.focus {
	case fieldTemplate:
		if handled, next := m.cycleKey(msg, m.templateIdx, len(strategy.Templates())); handled {
			m.templateIdx = next
			m.applyTemplate()
			return m, nil
		}
	case fieldTimeframe:
		if handled, next := m.cycleKey(msg, m.timeframeIdx, len(strategy.AllTimeframes())); handled {
			m.timeframeIdx = next
			return m, nil
		}
	case fieldTrailing:
		if key := msg.String(); key == " " || key == "enter" || key == "left" || key == "right" {
			m.trailing = !m.trailing
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

// cycleKey maps left/right (and up/down) to option cycling.
func (m StudioModel) cycleKey(msg tea.KeyMsg, idx, count int) (bool, int) {
	switch msg.String() {
	case "right", "down":
		return true, (idx + 1) % count
	case "left", "up":
		return true, (idx + count - 1) % count
	}
	return false, idx
}

// applyTemplate loads the selected template text into the description.
func (m *StudioModel) applyTemplate() {
	tmpl := strategy.Templates()[m.templateIdx]
	if tmpl.Description != "" {
		m.description.SetValue(tmpl.Description)
	}
}

func (m *StudioModel) setFocus(f studioField) {
	m.description.Blur()
	m.symbol.Blur()
	m.lotSize.Blur()
	m.stopLoss.Blur()
	m.takeProfit.Blur()

	m.focus = f
	switch f {
	case fieldDescription:
		m.description.Focus()
	case fieldSymbol:
		m.symbol.Focus()
	case fieldLotSize:
		m.lotSize.Focus()
	case fieldStopLoss:
		m.stopLoss.Focus()
	case fieldTakeProfit:
		m.takeProfit.Focus()
	}
}

// updateFocused forwards a message to whichever input owns the focus.
func (m StudioModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldSymbol:
		m.symbol, cmd = m.symbol.Update(msg)
	case fieldLotSize:
		m.lotSize, cmd = m.lotSize.Update(msg)
	case fieldStopLoss:
		m.stopLoss, cmd = m.stopLoss.Update(msg)
	case fieldTakeProfit:
		m.takeProfit, cmd = m.takeProfit.Update(msg)
	}
	return m, cmd
}

// ---------------------------------------------------------------------------
// Submission
// ---------------------------------------------------------------------------

// submit validates the form and starts a generation. Resubmission while a
// call is in flight is refused here, at the boundary, so the orchestrator
// only ever tracks one live request.
func (m StudioModel) submit() (tea.Model, tea.Cmd) {
	if m.orch.State() == forge.StateInFlight {
		return m, nil
	}

	params, err := m.collectParams()
	if err != nil {
		m.formError = err.Error()
		return m, nil
	}
	m.formError = ""

	seq, req, err := m.orch.Submit(params)
	if err != nil {
		m.formError = "Strategy description is required."
		return m, nil
	}

	m.code.SetContent("")
	return m, tea.Batch(m.spin.Tick, generateCmd(m.orch.Client(), seq, req))
}

// collectParams parses the form fields into strategy parameters.
func (m StudioModel) collectParams() (strategy.Parameters, error) {
	params := strategy.Parameters{
		Description:     m.description.Value(),
		Symbol:          strings.TrimSpace(m.symbol.Value()),
		Timeframe:       strategy.AllTimeframes()[m.timeframeIdx],
		UseTrailingStop: m.trailing,
	}

	lot, err := strconv.ParseFloat(strings.TrimSpace(m.lotSize.Value()), 64)
	if err != nil || lot <= 0 {
		return params, fmt.Errorf("lot size must be a positive number")
	}
	params.LotSize = lot

	sl, err := strconv.Atoi(strings.TrimSpace(m.stopLoss.Value()))
	if err != nil || sl < 0 {
		return params, fmt.Errorf("stop loss must be a non-negative integer")
	}
	params.StopLossPoints = sl

	tp, err := strconv.Atoi(strings.TrimSpace(m.takeProfit.Value()))
	if err != nil || tp < 0 {
		return params, fmt.Errorf("take profit must be a non-negative integer")
	}
	params.TakeProfitPoints = tp

	return params, nil
}

// generateCmd runs the external call off the update loop and reports back
// with the tagged sequence number.
func generateCmd(client forge.Generator, seq uint64, req prompt.Request) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.Generate(context.Background(), req)
		return generateDoneMsg{seq: seq, raw: raw, err: err}
	}
}

func (m StudioModel) showNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return noticeExpireMsg{}
	})
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// layout recomputes child sizes from the window size.
func (m *StudioModel) layout() {
	formWidth := m.formWidth()
	codeWidth := m.width - formWidth - 6

	m.description.SetWidth(formWidth - 4)
	m.symbol.Width = formWidth - 8
	bodyHeight := m.height - 6
	if bodyHeight < 10 {
		bodyHeight = 10
	}
	m.code = viewport.New(codeWidth, bodyHeight-2)
	if m.orch.State() == forge.StateSucceeded {
		m.code.SetContent(components.HighlightANSI(m.orch.Code()))
	}
}

func (m StudioModel) formWidth() int {
	w := m.width * 2 / 5
	if w < 40 {
		w = 40
	}
	return w
}

func (m StudioModel) status() string {
	switch m.orch.State() {
	case forge.StateInFlight:
		return "generating"
	case forge.StateSucceeded:
		return "done"
	case forge.StateFailed:
		return "failed"
	default:
		return "ready"
	}
}

// View renders the full studio frame.
func (m StudioModel) View() string {
	header := components.Header{
		Model:  prompt.DefaultModel,
		Status: m.status(),
		Width:  m.width,
	}.Render()

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewForm(), m.viewCode())

	footer := components.StudioFooter(m.width, m.orch.State() != forge.StateInFlight)
	footer.Notice = m.notice

	disclaimer := styles.Dim(" AI-generated code. Always backtest on a demo account before trading real money.")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		footer.Render(),
		disclaimer,
	)
}

func (m StudioModel) viewForm() string {
	label := func(f studioField, text string) string {
		if m.focus == f {
			return styles.Title.Render("▸ " + text)
		}
		return styles.Label.Render("  " + text)
	}

	tmpl := strategy.Templates()[m.templateIdx]
	tfs := strategy.AllTimeframes()

	trailing := "[ ] off"
	if m.trailing {
		trailing = "[x] on"
	}

	rows := []string{
		styles.Title.Render("Strategy Builder"),
		styles.Subtitle.Render("Describe your trading logic and parameters."),
		"",
		label(fieldTemplate, "Template") + "   " + styles.Value.Render("◂ "+tmpl.Label+" ▸"),
		"",
		label(fieldDescription, "Strategy Logic"),
		m.description.View(),
		"",
		label(fieldSymbol, "Symbol") + "      " + m.symbol.View(),
		label(fieldTimeframe, "Timeframe") + "   " + styles.Value.Render("◂ "+tfs[m.timeframeIdx].Label()+" ▸"),
		label(fieldLotSize, "Lot Size") + "    " + m.lotSize.View(),
		label(fieldStopLoss, "Stop Loss") + "   " + m.stopLoss.View() + styles.Dim(" points"),
		label(fieldTakeProfit, "Take Profit") + " " + m.takeProfit.View() + styles.Dim(" points"),
		label(fieldTrailing, "Trailing SL") + " " + styles.Value.Render(trailing),
	}

	if m.formError != "" {
		rows = append(rows, "", styles.Red("✗ "+m.formError))
	}

	return styles.PanelFocused.Width(m.formWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m StudioModel) viewCode() string {
	codeWidth := m.width - m.formWidth() - 6

	var body string
	switch m.orch.State() {
	case forge.StateInFlight:
		body = m.spin.View() + " " + styles.Bold("Writing code...") + "\n\n" +
			styles.Dim("Analyzing strategy logic and constructing MQL5 routines.")

	case forge.StateFailed:
		body = styles.Red("✗ Generation Failed") + "\n\n" +
			styles.Subtitle.Render(m.orch.Failure())

	case forge.StateSucceeded:
		body = components.WindowTitle(export.DefaultFilename, codeWidth) + "\n" + m.code.View()

	default:
		body = components.Placeholder(codeWidth)
	}

	return styles.Panel.Width(codeWidth).Render(body)
}
