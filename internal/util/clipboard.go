// Package util holds small presenter-facing helpers that don't belong in
// internal/engine, internal/bot, or internal/config.
package util

import (
	"fmt"

	"golang.design/x/clipboard"
)

// CopyFENToClipboard copies a position's FEN string to the system clipboard,
// for the presenter's "copy position" command. Safe to call repeatedly -
// clipboard.Init is idempotent.
//
// May fail in headless environments (no X11/Wayland display, no Cocoa
// framework, no Windows clipboard API reachable).
func CopyFENToClipboard(fen string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("util: failed to initialize clipboard: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(fen))
	return nil
}
