// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-augmd/internal/service"
	"github.com/MKhiriev/go-augmd/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const (
	defaultStatusTTL = 4 * time.Second
	inputCharLimit   = 9
)

// designerModel is the single page of the client: five numeric inputs, the
// live preview underneath and a one-line notification area.
//
// All preview state lives in the PreviewSynchronizer. The model only keeps
// the last state it was handed, so what is drawn is always what the
// synchronizer accepted.
type designerModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	inputs []textinput.Model
	focus  int

	state    models.SyncState
	spinner  spinner.Model
	spinning bool

	submitting bool

	status    string
	statusErr bool
	statusID  int
	statusTTL time.Duration

	showBuildInfo bool
	serverVersion string

	width int
	// copy is swapped in tests.
	copy func(string) error
}

func newDesignerModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) designerModel {
	inputs := make([]textinput.Model, len(models.Fields))
	current := services.ConfigurationStore.Current()
	for i, f := range models.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "required"
		in.CharLimit = inputCharLimit
		in.Width = 12
		if v, ok := current.Get(f); ok {
			in.SetValue(fmt.Sprint(v))
		}
		inputs[i] = in
	}
	inputs[0].Focus()

	return designerModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		inputs:    inputs,
		state:     services.PreviewSynchronizer.State(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		statusTTL: defaultStatusTTL,
		copy:      clipboard.WriteAll,
	}
}

func (m designerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m designerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if !m.services.PreviewSynchronizer.IsCurrent(msg.ticket.Epoch) {
			return m, nil
		}
		return m, m.cmdFetchPreview(msg.ticket)

	case previewFetchedMsg:
		if errors.Is(msg.outcome.Err, service.ErrStaleTicket) {
			return m, nil
		}
		if state, accepted := m.services.PreviewSynchronizer.Reconcile(msg.outcome); accepted {
			m.state = state
		}
		return m, nil

	case submittedMsg:
		m.submitting = false
		if msg.err != nil {
			return m.withStatus(submissionErrorText(msg.err), true)
		}
		return m.withStatus("Design saved to "+msg.handle.Path, false)

	case copiedMsg:
		if msg.err != nil {
			return m.withStatus("Copy failed: "+msg.err.Error(), true)
		}
		return m.withStatus("Preview copied to clipboard", false)

	case serverVersionMsg:
		if msg.err != nil {
			m.serverVersion = "unavailable (" + service.UserMessage(msg.err) + ")"
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

func (m designerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.back) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.next):
		return m.moveFocus(1), nil
	case key.Matches(msg, keys.prev):
		return m.moveFocus(-1), nil
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.copy):
		return m.copyPreview()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		if m.serverVersion == "" {
			return m, m.cmdServerVersion()
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m designerModel) moveFocus(delta int) designerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// updateFocusedInput forwards msg to the focused input and, if its text
// changed, records the edit and starts a preview for the new configuration.
func (m designerModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	after := m.inputs[m.focus].Value()
	if after == before {
		return m, cmd
	}

	cfg := m.services.ConfigurationStore.Update(models.Fields[m.focus], after)
	m, observeCmd := m.observe(cfg)
	return m, tea.Batch(cmd, observeCmd)
}

// observe hands cfg to the synchronizer. A complete configuration yields a
// fetch, delayed by the debounce if one is configured.
func (m designerModel) observe(cfg models.Configuration) (designerModel, tea.Cmd) {
	sync := m.services.PreviewSynchronizer

	ticket, ok := sync.Observe(cfg)
	m.state = sync.State()
	if !ok {
		return m, nil
	}

	var fetch tea.Cmd
	if d := sync.Debounce(); d > 0 {
		fetch = tea.Tick(d, func(time.Time) tea.Msg {
			return debounceMsg{ticket: ticket}
		})
	} else {
		fetch = m.cmdFetchPreview(ticket)
	}

	m, spin := m.startSpinner()
	return m, tea.Batch(fetch, spin)
}

func (m designerModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m.withStatus("A design is already being generated", true)
	}

	cfg := m.services.ConfigurationStore.Current()
	if !cfg.IsComplete() {
		return m.withStatus(service.MsgIncompleteSettings, true)
	}
	if !m.state.AllowsSubmission() {
		return m.withStatus("Fix the settings before generating a design", true)
	}

	m.submitting = true
	m.status = "Generating design..."
	m.statusErr = false

	m, spin := m.startSpinner()
	return m, tea.Batch(m.cmdSubmit(cfg), spin)
}

func (m designerModel) copyPreview() (tea.Model, tea.Cmd) {
	preview, ok := m.state.Preview()
	if !ok {
		return m.withStatus("There is no preview to copy yet", true)
	}

	text := preview.TSV()
	write := m.copy
	return m, func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

// withStatus shows a transient notification and schedules its removal.
func (m designerModel) withStatus(text string, isErr bool) (designerModel, tea.Cmd) {
	m.statusID++
	m.status = text
	m.statusErr = isErr

	id := m.statusID
	return m, tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m designerModel) startSpinner() (designerModel, tea.Cmd) {
	if m.spinning {
		return m, nil
	}
	m.spinning = true
	return m, m.spinner.Tick
}

func (m designerModel) busy() bool {
	return m.submitting || m.state.Status() == models.SyncPending
}

func (m designerModel) cmdFetchPreview(ticket models.PreviewTicket) tea.Cmd {
	ctx := m.ctx
	sync := m.services.PreviewSynchronizer

	return func() tea.Msg {
		return previewFetchedMsg{outcome: sync.Fetch(ctx, ticket)}
	}
}

func (m designerModel) cmdSubmit(cfg models.Configuration) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SubmissionController

	return func() tea.Msg {
		handle, err := svc.Submit(ctx, cfg)
		return submittedMsg{handle: handle, err: err}
	}
}

func (m designerModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.services.InfoService

	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func submissionErrorText(err error) string {
	var submissionErr *service.SubmissionError
	if errors.As(err, &submissionErr) {
		return "Design not saved: " + submissionErr.Message()
	}
	if errors.Is(err, service.ErrIncompleteConfiguration) {
		return service.MsgIncompleteSettings
	}
	return "Design not saved: " + service.UserMessage(err)
}

func (m designerModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	var b strings.Builder

	labelWidth := 0
	for _, f := range models.Fields {
		labelWidth = max(labelWidth, runewidth.StringWidth(f.Label()))
	}

	for i, f := range models.Fields {
		marker := "  "
		label := runewidth.FillRight(f.Label(), labelWidth)
		if i == m.focus {
			marker = "> "
			label = focusStyle.Render(label)
		}
		b.WriteString(marker)
		b.WriteString(label)
		b.WriteString("  [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Sample version"))
	b.WriteString("\n")
	b.WriteString(m.previewView())

	if m.status != "" {
		b.WriteString("\n\n")
		status := fitText(m.status, m.width-6)
		switch {
		case m.statusErr:
			b.WriteString(errorStyle.Render(status))
		case m.submitting:
			b.WriteString(m.spinner.View() + " " + status)
		default:
			b.WriteString(successStyle.Render(status))
		}
	}

	return renderPage("AugMD DESIGNER", b.String(),
		"tab/shift+tab: next/previous field  enter: generate design  c: copy preview  v: about")
}

func (m designerModel) previewView() string {
	switch m.state.Status() {
	case models.SyncPending:
		return m.spinner.View() + " Generating preview..."
	case models.SyncPreview:
		preview, _ := m.state.Preview()
		if preview.IsEmpty() {
			return helpStyle.Render("The design service returned an empty sample.")
		}
		return renderPreviewTable(preview)
	case models.SyncRejected:
		msg, _ := m.state.Message()
		return errorStyle.Render(msg)
	default:
		return helpStyle.Render("Fill in every setting to see a sample version.")
	}
}
