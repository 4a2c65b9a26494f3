package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (d *demo) section(title string) {
	if d.styled {
		fmt.Println()
		fmt.Println(titleStyle.Render(title))
		return
	}
	fmt.Printf("\n== %s ==\n", title)
}
