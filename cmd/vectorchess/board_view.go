package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/havenwood/vectorchess/internal/config"
	"github.com/havenwood/vectorchess/internal/engine"
)

var (
	whiteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#3C3C00"))
	destStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#005500"))
)

// renderBoard draws b from White's perspective (rank 8 at top, rank 1 at
// bottom), highlighting selected and destination squares for the piece
// currently being moved.
func renderBoard(b *engine.Board, display config.DisplayConfig, selected *engine.Vector, destinations []engine.Move) string {
	var out strings.Builder

	for y := 0; y < engine.BoardSizeY; y++ {
		if display.ShowCoordinates {
			fmt.Fprintf(&out, "%d ", 8-y)
		}
		for x := 0; x < engine.BoardSizeX; x++ {
			if x > 0 {
				out.WriteString(" ")
			}
			coord := engine.Vector{X: x, Y: y}
			out.WriteString(renderSquare(b, coord, display, selected, destinations))
		}
		out.WriteString("\n")
	}

	if display.ShowCoordinates {
		out.WriteString("  ")
		for x := 0; x < engine.BoardSizeX; x++ {
			fmt.Fprintf(&out, "%c ", 'a'+x)
		}
		out.WriteString("\n")
	}

	return out.String()
}

func renderSquare(b *engine.Board, coord engine.Vector, display config.DisplayConfig, selected *engine.Vector, destinations []engine.Move) string {
	symbol := pieceSymbol(b, coord, display)

	isDest := false
	for _, m := range destinations {
		if m.Dst == coord {
			isDest = true
			break
		}
	}

	switch {
	case selected != nil && *selected == coord:
		return selectedStyle.Render(symbol)
	case isDest:
		return destStyle.Render(symbol)
	default:
		return symbol
	}
}

func pieceSymbol(b *engine.Board, coord engine.Vector, display config.DisplayConfig) string {
	p := b.PieceAt(coord)
	if p.IsEmpty() {
		return "."
	}

	symbol := p.String()
	if !display.UseUnicode {
		symbol = asciiLetter(p)
	}
	if !display.UseColors {
		return symbol
	}
	if p.Color() == engine.White {
		return whiteStyle.Render(symbol)
	}
	return blackStyle.Render(symbol)
}

var asciiLetters = map[engine.PieceType]byte{
	engine.Pawn:   'P',
	engine.Knight: 'N',
	engine.Bishop: 'B',
	engine.Rook:   'R',
	engine.Queen:  'Q',
	engine.King:   'K',
}

func asciiLetter(p engine.Piece) string {
	letter := asciiLetters[p.Type()]
	if p.Color() == engine.Black {
		letter = letter + ('a' - 'A')
	}
	return string(letter)
}
