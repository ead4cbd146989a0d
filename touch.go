package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// handleTouchEvents treats a finger lifted from the screen as a click at
// its last position.
func (g *KartGUI) handleTouchEvents() {
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)

	// Initialize touch tracking maps if needed
	if g.lastTouchX == nil {
		g.lastTouchX = make(map[ebiten.TouchID]int)
		g.lastTouchY = make(map[ebiten.TouchID]int)
	}

	// Track every active touch
	for _, id := range touches {
		x, y := ebiten.TouchPosition(id)
		g.lastTouchX[id] = x
		g.lastTouchY[id] = y
		if len(touches) == 1 {
			g.screen.Hover(x, y)
		}
	}

	// Ended touches are taps
	for id, x := range g.lastTouchX {
		if !containsTouchID(touches, id) {
			g.activateAt(x, g.lastTouchY[id])
			delete(g.lastTouchX, id)
			delete(g.lastTouchY, id)
		}
	}
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
