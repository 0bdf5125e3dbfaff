package main

import (
	"fmt"
	"os/exec"
	"slices"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// shellMeta are argument fragments refused before anything is executed
var shellMeta = []string{"\n", "\r", "\x00", "|", "`", "$(", "&&", "||", ">", "<"}

func printColored(color, symbol, format string, a ...any) {
	fmt.Printf(color+symbol+" "+format+colorReset+"\n", a...)
}

func PrintInfo(format string, a ...any)    { printColored(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...any) { printColored(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...any) { printColored(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...any)   { printColored(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Printf("\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// PrintCounts prints a name/count table sorted by descending count, then name
func PrintCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	width := 0
	for name := range counts {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.SortFunc(names, func(a, b string) int {
		if d := counts[b] - counts[a]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	fmt.Println(title)
	for _, name := range names {
		fmt.Printf("  %-*s %6d\n", width, name, counts[name])
	}
}

// checkHostile rejects arguments that could split or redirect a command
// line if they ever reach a shell
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		for _, p := range shellMeta {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return "", err
	}
	// #nosec G204 - arguments checked above
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
