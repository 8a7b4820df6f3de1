package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the terminal renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintf(os.Stderr, "markdown rendering failed: %v\n", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
