package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type bootDoneMsg struct {
	err error
}

type bootSpinnerModel struct {
	spinner spinner.Model
	label   string
	boot    tea.Cmd
	err     error
	done    bool
}

func newBootSpinnerModel(label string, boot tea.Cmd) bootSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("46"))),
	)

	return bootSpinnerModel{
		spinner: s,
		label:   label,
		boot:    boot,
	}
}

func (m bootSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.boot)
}

func (m bootSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case bootDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m bootSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runBootSpinner shows a spinner while the startup chain runs and returns
// the chain's error.
func runBootSpinner(ctx context.Context, output io.Writer, boot func(context.Context) error) error {
	bootCmd := func() tea.Msg {
		return bootDoneMsg{err: boot(ctx)}
	}

	p := tea.NewProgram(
		newBootSpinnerModel("Warming up the deck...", bootCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(bootSpinnerModel); ok {
		return m.err
	}
	return nil
}
