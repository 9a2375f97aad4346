// Command exactcover solves a generic exact-cover instance read from
// standard input: one subset per line, elements separated by whitespace.
// A line's own text is used as the row's label when a solution is printed.
//
// It is a thin ambient-stack demo around the exactcover package, not a
// concrete puzzle front-end; encoding Sudoku, N-queens, or polyomino
// tiling as subsets is left to callers of the library.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/exactcover"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter one subset per line, elements separated by spaces.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	subsets, err := readSubsets(os.Stdin)
	if err != nil {
		color.HiRed("error reading standard input: %v", err)
		os.Exit(1)
	}

	m, err := exactcover.Build(subsets)
	if err != nil {
		color.HiRed("error building matrix: %v", err)
		os.Exit(1)
	}
	color.HiBlack("Matrix built: %d subsets, %d columns.", len(subsets), m.ColumnCount())

	it, err := exactcover.Coverings(subsets, exactcover.WithOptions[string](&exactcover.Options{EnableDebugging: true}))
	if err != nil {
		color.HiRed("error starting search: %v", err)
		os.Exit(1)
	}
	defer it.Close()

	found := 0
	for tags, ok := it.Next(); ok; tags, ok = it.Next() {
		found++
		color.HiWhite("\nSolution %d:", found)
		for _, tag := range tags {
			fmt.Printf("  %v\n", tag)
		}
	}

	if err := it.Err(); err != nil {
		color.HiRed("search stopped early: %v", err)
		os.Exit(1)
	}

	if found == 0 {
		color.HiYellow("\nNo exact cover exists.")
	}

	printStats(it.Stats())
}

// readSubsets parses one exactcover.Subset per non-blank input line. Each
// row's label is the line's own trimmed text, so a solution can be printed
// back in terms of the caller's original input.
func readSubsets(f *os.File) ([]exactcover.Subset[string], error) {
	var subsets []exactcover.Subset[string]

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		elements := strings.Fields(line)
		subsets = append(subsets, exactcover.NewLabeledSubset(line, elements...))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return subsets, nil
}

func printStats(stats exactcover.Stats) {
	fmt.Printf("\n%s\n", color.HiCyanString("Search Statistics"))
	fmt.Printf("  Columns:        %s\n", color.HiYellowString("%d", stats.InitialColumns))
	fmt.Printf("  Rows:           %s\n", color.HiYellowString("%d", stats.InitialRows))
	fmt.Printf("  Steps Taken:    %s\n", color.HiGreenString("%d", stats.StepsTaken))
	fmt.Printf("  Backtracks:     %s\n", color.HiRedString("%d", stats.BacktrackCount))
	fmt.Printf("  Solutions:      %s\n", color.HiGreenString("%d", stats.SolutionsFound))
	fmt.Printf("  Time Elapsed:   %s\n", color.HiBlueString("%v", stats.TimeElapsed))
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
