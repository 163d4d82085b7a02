// Command vectorchess is a minimal terminal presenter over the engine and
// bot packages: it loads or starts a position, lets a human enter moves as
// algebraic square pairs, and optionally calls a negamax bot for the other
// side.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/havenwood/vectorchess/internal/bot"
	"github.com/havenwood/vectorchess/internal/config"
	"github.com/havenwood/vectorchess/internal/engine"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	fen := flag.String("fen", "", "Start from this reduced FEN position instead of the initial one")
	resume := flag.Bool("resume", false, "Resume the saved game at ~/.vectorchess/savegame.fen")
	difficulty := flag.String("difficulty", "", "Bot difficulty for the side not played: easy, medium, or hard")
	botColor := flag.String("bot-color", "black", "Which side the bot plays: white or black")
	flag.Parse()

	if *showVersion {
		fmt.Println("vectorchess (development build)")
		return
	}

	cfg := config.LoadConfig()
	if termenv.ColorProfile() == termenv.Ascii {
		// The terminal can't render colors no matter what the config asks for.
		cfg.Display.UseColors = false
	}
	zobrist := engine.NewZobristTable()

	board, err := loadStartingPosition(*fen, *resume, zobrist)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opponent, side, hasSide, err := buildOpponent(*difficulty, *botColor, cfg, zobrist)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := newModel(board, zobrist, cfg.Display, opponent, side, hasSide)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if fm, ok := finalModel.(model); ok {
		if err := config.SaveGame(&fm.board); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save game: %v\n", err)
		}
	}
}

func loadStartingPosition(fen string, resume bool, zobrist *engine.ZobristTable) (engine.Board, error) {
	switch {
	case fen != "":
		return engine.ParseFEN(fen, zobrist)
	case resume && config.SaveGameExists():
		return config.LoadGame(zobrist)
	default:
		return engine.NewBoard(), nil
	}
}

func buildOpponent(difficulty, botColorFlag string, cfg config.Config, zobrist *engine.ZobristTable) (bot.Engine, engine.Color, bool, error) {
	if difficulty == "" {
		difficulty = cfg.Engine.Difficulty
	}
	if difficulty == "" || difficulty == "none" {
		return nil, engine.White, false, nil
	}

	var side engine.Color
	switch botColorFlag {
	case "white":
		side = engine.White
	case "black":
		side = engine.Black
	default:
		return nil, engine.White, false, fmt.Errorf("invalid -bot-color %q (expected white or black)", botColorFlag)
	}

	var opponent bot.Engine
	switch difficulty {
	case "easy":
		opponent = bot.NewRandomEngine()
	case "medium":
		eng, err := bot.NewNegamaxEngine(bot.Medium, zobrist, bot.WithWorkers(cfg.Engine.Workers))
		if err != nil {
			return nil, side, false, err
		}
		opponent = eng
	case "hard":
		eng, err := bot.NewNegamaxEngine(bot.Hard, zobrist, bot.WithWorkers(cfg.Engine.Workers))
		if err != nil {
			return nil, side, false, err
		}
		opponent = eng
	default:
		return nil, side, false, fmt.Errorf("invalid -difficulty %q (expected easy, medium, or hard)", difficulty)
	}

	return opponent, side, true, nil
}
