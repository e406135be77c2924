package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the contagion ASCII banner with a blue-to-red
// gradient echoing the susceptible/infected palette.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`                 _              _             `, "#3737c8"},
		{`  ___ ___  _ __ | |_ __ _  __ _(_) ___  _ __  `, "#6d5fd0"},
		{` / __/ _ \| '_ \| __/ _' |/ _' | |/ _ \| '_ \ `, "#a287d8"},
		{`| (_| (_) | | | | || (_| | (_| | | (_) | | | |`, "#c86f9a"},
		{` \___\___/|_| |_|\__\__,_|\__, |_|\___/|_| |_|`, "#c83737"},
		{`                          |___/               `, "#c83737"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Printf("  v%s\n\n", version)
}
