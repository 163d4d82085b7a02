package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/havenwood/vectorchess/internal/bot"
	"github.com/havenwood/vectorchess/internal/config"
	"github.com/havenwood/vectorchess/internal/engine"
	"github.com/havenwood/vectorchess/internal/util"
)

// model is the Bubble Tea application model. Moves are entered as plain
// algebraic square pairs ("e2e4"), with an optional trailing promotion
// letter ("e7e8q") - there is no mouse or cursor-based square picking, in
// keeping with this being a minimal presenter rather than a full GUI.
type model struct {
	board    engine.Board
	zobrist  *engine.ZobristTable
	display  config.DisplayConfig
	botSide  *engine.Color // nil if both sides are human
	opponent bot.Engine

	input  textinput.Model
	status string
	errMsg string
}

func newModel(board engine.Board, zobrist *engine.ZobristTable, display config.DisplayConfig, opponent bot.Engine, botSide engine.Color, hasBotSide bool) model {
	ti := textinput.New()
	ti.Placeholder = "e2e4"
	ti.Focus()
	ti.CharLimit = 5
	ti.Width = 10

	m := model{
		board:    board,
		zobrist:  zobrist,
		display:  display,
		opponent: opponent,
		input:    ti,
		status:   "Enter a move (e.g. e2e4), or \"fen\" to copy the position, \"quit\" to exit.",
	}
	if hasBotSide {
		m.botSide = &botSide
	}
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleSubmit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.input.SetValue("")
	m.errMsg = ""

	switch text {
	case "quit":
		return m, tea.Quit
	case "fen":
		if err := util.CopyFENToClipboard(m.board.FEN()); err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = "Copied FEN to clipboard."
		}
		return m, nil
	}

	move, err := m.parseMove(text)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.board.ExecuteMove(move, m.zobrist)
	m.status = fmt.Sprintf("Played %s.", text)

	if m.isBotTurn() {
		botMove, err := m.opponent.SelectMove(context.Background(), &m.board)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.board.ExecuteMove(botMove, m.zobrist)
		m.status = fmt.Sprintf("%s: %s", m.opponent.Name(), algebraicMove(botMove))
	}

	return m, nil
}

func (m model) isBotTurn() bool {
	return m.opponent != nil && m.botSide != nil && *m.botSide == m.board.NextPlayer
}

func (m model) View() string {
	// While the input names an occupied square ("e2" so far of "e2e4"),
	// highlight it and the squares its piece can move to.
	var selected *engine.Vector
	var destinations []engine.Move
	if sq, err := parseSquare(m.input.Value()); err == nil && !m.board.PieceAt(sq).IsEmpty() {
		selected = &sq
		destinations = m.board.GeneratePieceMoves(sq)
	}

	view := renderBoard(&m.board, m.display, selected, destinations)
	view += "\n" + m.input.View() + "\n"
	if m.errMsg != "" {
		view += "error: " + m.errMsg + "\n"
	} else if m.status != "" {
		view += m.status + "\n"
	}
	return view
}
