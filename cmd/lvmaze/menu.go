package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const (
	menu      = "\nEnter choice (1 - solve, 2 - longest path, 3 - quit)... \n"
	goodbye   = "Goodbye!\n"
	menuLines = 3 // blank line, prompt, typed answer
)

const (
	choiceSolve = iota + 1
	choiceLongest
	choiceQuit
)

// solver is the part of *maze.Maze the menu drives.
type solver interface {
	Solve() ([]int, error)
	LongestPath() ([]int, error)
}

// screen is the part of *render.Terminal the menu writes to.
type screen interface {
	Print(s string)
	EraseMenu(n int)
}

// serveMenu prompts until the user quits or in is exhausted. Unknown input
// re-prompts. The menu is erased after every answer so the maze stays in
// place.
func serveMenu(m solver, scr screen, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		scr.Print(menu)
		if !scanner.Scan() {
			return scanner.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil {
			switch choice {
			case choiceSolve:
				_, err = m.Solve()
			case choiceLongest:
				_, err = m.LongestPath()
			case choiceQuit:
				scr.Print(goodbye)
				return nil
			}
			if err != nil {
				return err
			}
		}

		scr.EraseMenu(menuLines)
	}
}
