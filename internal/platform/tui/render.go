package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nlisovsky/gridsnake/internal/core"
	"github.com/nlisovsky/gridsnake/internal/game"
)

const hudHeight = 2 // HUD line plus separator

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to keep the ANSI output
// small.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawSnapshot draws one frame of the game into the screen buffer: HUD,
// board border, snake, apple, and the overlay when the board is at rest.
func drawSnapshot(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	hud := fmt.Sprintf(" gridsnake · score %d · level %d", snap.Score, snap.Level)
	dst.DrawText(0, 0, hud, core.ColorYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	// Board occupies N+2 columns/rows including its border.
	boardW := snap.GridSize + 2
	boardH := snap.GridSize + 2
	if dst.Width() < boardW || dst.Height() < hudHeight+boardH {
		drawOverlay(dst, "Window too small", fmt.Sprintf("need %dx%d, resize to continue", boardW, hudHeight+boardH))
		return
	}

	offX := (dst.Width() - boardW) / 2
	offY := hudHeight + (dst.Height()-hudHeight-boardH)/2
	dst.DrawBox(offX, offY, boardW, boardH, core.ColorGray)

	// Grid cell (1..N, 1..N) maps just inside the border.
	if snap.HasApple {
		dst.SetColored(offX+snap.Apple.X, offY+snap.Apple.Y, '*', core.ColorRed)
	}
	for i, c := range snap.Cells {
		if i == 0 {
			dst.SetColored(offX+c.X, offY+c.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColored(offX+c.X, offY+c.Y, 'o', core.ColorGreen)
		}
	}

	if snap.ShowOverlay {
		drawOverlay(dst, snap.OverlayTitle, snap.OverlayHint)
	}
}

// drawOverlay draws a centered message box over whatever is on screen.
func drawOverlay(dst *core.Screen, title, hint string) {
	maxLen := len([]rune(title))
	if n := len([]rune(hint)); n > maxLen {
		maxLen = n
	}

	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, hint, core.ColorGray)
}
