// Package cli implements a command-line rendering of boards and their groups.
package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/goGroups/internal/groups"
	. "github.com/janpfeifer/goGroups/internal/state"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// UI prints boards and groups to a writer, typically os.Stdout.
type UI struct {
	w     io.Writer
	color bool
}

// New creates a UI that writes to w. If color is true, ANSI colors are used.
func New(w io.Writer, color bool) *UI {
	return &UI{w: w, color: color}
}

// terminalWidth returns the width of the terminal the UI writes to, or 0 if it is not a terminal.
func (ui *UI) terminalWidth() int {
	f, ok := ui.w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((ui.terminalWidth()-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.w)
			continue
		}
		_, _ = fmt.Fprintf(ui.w, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// columnLabel returns the letter used for column x, following the board letters. Columns beyond
// the board letters use their number.
func columnLabel(x int) string {
	if x < len(BoardLetters) {
		return BoardLetters[x : x+1]
	}
	return strconv.Itoa(x + 1)
}

// printBoard prints a board of the given size, with columns labeled on top and rows numbered on
// the left, top row first. cell returns the text of each point, cellWidth wide.
//
// Cells are widened if needed so there is at least one space between the column labels.
func (ui *UI) printBoard(size Size, cellWidth int, cell func(p Point) string) {
	width := max(cellWidth, len(columnLabel(size.Width-1))+1)
	cellPadding := strings.Repeat(" ", width-cellWidth)
	var sb strings.Builder
	sb.WriteString("    ")
	for x := range size.Width {
		label := columnLabel(x)
		sb.WriteString(strings.Repeat(" ", width-len(label)))
		sb.WriteString(label)
	}
	sb.WriteString("\n\n")
	for y := size.Height - 1; y >= 0; y-- {
		_, _ = fmt.Fprintf(&sb, " %2d ", y+1)
		for x := range size.Width {
			sb.WriteString(cellPadding)
			sb.WriteString(cell(Point{x, y}))
		}
		sb.WriteString("\n")
	}
	_, _ = fmt.Fprintln(ui.w)
	_, _ = fmt.Fprint(ui.w, sb.String())
	_, _ = fmt.Fprintln(ui.w)
}

// colorStart returns the ANSI sequence to start printing a stone of the given color.
func (ui *UI) colorStart(c Color) string {
	if !ui.color {
		return ""
	}
	switch c {
	case Black:
		return "\033[97;40;1m"
	case White:
		return "\033[30;47;1m"
	}
	return "\033[90m"
}

func (ui *UI) colorEnd() string {
	if !ui.color {
		return ""
	}
	return "\033[39;49;0m"
}

func (ui *UI) stoneCell(c Color) string {
	return " " + ui.colorStart(c) + string(ColorChars[c]) + ui.colorEnd()
}

// PrintGrid prints the colors of the grid.
func (ui *UI) PrintGrid(grid *Grid) {
	ui.printBoard(grid.Size(), 2, func(p Point) string {
		return ui.stoneCell(grid.ColorAt(p))
	})
}

// PrintDeadGroups prints a board with only the stones of dead groups.
func (ui *UI) PrintDeadGroups(r *groups.Result) {
	ui.printBoard(r.Size(), 2, func(p Point) string {
		g := r.GroupAt(p)
		if g == nil || g.IsAlive() {
			return ui.stoneCell(Empty)
		}
		return ui.stoneCell(g.Color)
	})
}

// PrintLiberties prints, for each stone, the number of liberties of its group. Empty points
// are printed as '.', and stones of dead groups as '*'.
func (ui *UI) PrintLiberties(r *groups.Result) {
	maxLiberties := 0
	for _, g := range r.Groups {
		maxLiberties = max(maxLiberties, len(g.Liberties))
	}
	cellWidth := max(len(strconv.Itoa(maxLiberties))+1, 2)
	ui.printBoard(r.Size(), cellWidth, func(p Point) string {
		g := r.GroupAt(p)
		var text string
		switch {
		case g == nil:
			text = "."
		case g.IsDead():
			text = "*"
		default:
			text = strconv.Itoa(len(g.Liberties))
		}
		text = strings.Repeat(" ", cellWidth-len(text)) + text
		if g == nil {
			return text
		}
		return ui.colorStart(g.Color) + text + ui.colorEnd()
	})
}

// PrintGroups prints one line per group, largest groups first.
func (ui *UI) PrintGroups(r *groups.Result) {
	for ii, g := range r.BySize() {
		status := "alive"
		if g.IsDead() {
			status = "dead"
		}
		stones := make([]string, 0, g.Len())
		for _, p := range g.SortedPoints() {
			stones = append(stones, Stone{Point: p, Color: g.Color}.String())
		}
		_, _ = fmt.Fprintf(ui.w, "%4d. %s%s%s %-5s %2d stones, %2d liberties: [%s]\n",
			ii+1, ui.colorStart(g.Color), g.Color, ui.colorEnd(), status,
			g.Len(), len(g.Liberties), strings.Join(stones, " "))
	}
}

// PrintSummary prints a box with the number of alive and dead groups per color.
func (ui *UI) PrintSummary(r *groups.Result) {
	var lines []string
	lines = append(lines, fmt.Sprintf("%s board: %d groups", r.Size(), r.Len()))
	for _, c := range Stones {
		var alive, dead, stones int
		for _, g := range r.ByColor(c) {
			if g.IsDead() {
				dead++
			} else {
				alive++
			}
			stones += g.Len()
		}
		lines = append(lines, fmt.Sprintf("%-5s: %3d stones, %3d alive, %3d dead", c, stones, alive, dead))
	}
	style := lipgloss.NewStyle().Padding(1, 2)
	if ui.color {
		style = style.
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0"))
	} else {
		style = style.Border(lipgloss.NormalBorder())
	}
	ui.printCentered(style.Render(strings.Join(lines, "\n")))
}
