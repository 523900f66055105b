package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelikov/searchlab/bfs"
	"github.com/abelikov/searchlab/dfs"
)

// Styles for the per-iteration trace. The trace is the whole point of
// the exercise, so each column gets its own color to keep the replay
// readable on a terminal.
var (
	stepStyle    = lipgloss.NewStyle().Faint(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	stackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue: the frontier
	visitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow: discovered
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green: the walk
	notFoundTint = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
)

// renderIDs formats a vertex list the way the exercise sheet does.
func renderIDs(ids []string) string {
	return "[" + strings.Join(ids, " ") + "]"
}

// renderDFSStep renders one DFS iteration: frontier, visited set, walk.
func renderDFSStep(n int, s dfs.Step) string {
	return fmt.Sprintf("%s  stack=%s  visited=%s  path=%s",
		stepStyle.Render(fmt.Sprintf("step %2d", n)),
		stackStyle.Render(renderIDs(s.Stack)),
		visitedStyle.Render(renderIDs(s.Visited)),
		pathStyle.Render(renderIDs(s.Path)),
	)
}

// renderBFSStep renders one BFS iteration: frontier queue, visited set,
// dequeue order.
func renderBFSStep(n int, s bfs.Step) string {
	return fmt.Sprintf("%s  queue=%s  visited=%s  order=%s",
		stepStyle.Render(fmt.Sprintf("step %2d", n)),
		stackStyle.Render(renderIDs(s.Queue)),
		visitedStyle.Render(renderIDs(s.Visited)),
		pathStyle.Render(renderIDs(s.Order)),
	)
}

// renderWalk renders a final labeled vertex sequence.
func renderWalk(label string, ids []string) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(label+":"), pathStyle.Render(renderIDs(ids)))
}

// renderNotFound renders the failure line of the exercise.
func renderNotFound(dest string) string {
	return notFoundTint.Render(fmt.Sprintf("Not found: no route to %s.", dest))
}

// renderScore renders the vacuum-world result line.
func renderScore(score int64) string {
	return fmt.Sprintf("%s %s", labelStyle.Render("Agent score:"), pathStyle.Render(fmt.Sprint(score)))
}
