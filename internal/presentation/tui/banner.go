package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Marquee.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Warm marquee-light ramp (amber to red)
	s1 := termenv.String("  __  __").Foreground(p.Color("#fde68a"))
	s2 := termenv.String(" |  \\/  | __ _ _ __ __ _ _   _  ___  ___").Foreground(p.Color("#fcd34d"))
	s3 := termenv.String(" | |\\/| |/ _` | '__/ _` | | | |/ _ \\/ _ \\").Foreground(p.Color("#fbbf24"))
	s4 := termenv.String(" | |  | | (_| | | | (_| | |_| |  __/  __/").Foreground(p.Color("#f59e0b"))
	s5 := termenv.String(" |_|  |_|\\__,_|_|  \\__, |\\__,_|\\___|\\___|").Foreground(p.Color("#ea580c"))
	s6 := termenv.String("                      |_|").Foreground(p.Color("#dc2626"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}

// Welcome returns the session intro shown under the banner: what the shell
// is, plus enough example queries to get going.
func Welcome() string {
	lines := []string{
		"Ask about movies in plain English.",
		"",
		"Example queries:",
		"  - what movies were made in 2020",
		"  - what movies were made between 2010 and 2015",
		"  - who directed inception",
		"  - what movies were directed by christopher nolan",
		"  - who acted in the dark knight",
		"  - when was interstellar made",
		"  - in what movies did leonardo dicaprio appear",
		"  - limit 5 (set result limit)",
		"  - bye (to exit)",
	}
	return strings.Join(lines, "\n")
}
