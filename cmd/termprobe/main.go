// Command termprobe reports what each terminal width source sees, for
// diagnosing a menu that draws off-center.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/microjournal/mjmenu/internal/termsize"
)

func main() {
	term := os.Getenv("TERM")
	if term == "" {
		term = "(unset)"
	}
	fmt.Printf("TERM:            %s\n", term)
	fmt.Printf("stdin terminal:  %v\n", isTerminal(os.Stdin))
	fmt.Printf("stdout terminal: %v\n", isTerminal(os.Stdout))
	fmt.Println()

	results := termsize.New().Report()
	widths := make(map[int]bool)
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-15s failed: %v\n", r.Source+":", r.Err)
			continue
		}
		fmt.Printf("%-15s %d columns\n", r.Source+":", r.Width)
		widths[r.Width] = true
	}
	fmt.Println()

	switch len(widths) {
	case 0:
		fmt.Printf("No source reported a width; the menu will use %d columns.\n", termsize.DefaultWidth)
	case 1:
		fmt.Println("All working sources agree.")
	default:
		fmt.Println("Sources disagree; the menu uses the first one that works.")
	}
	fmt.Printf("Menu width:      %d\n", termsize.New().Width())
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
