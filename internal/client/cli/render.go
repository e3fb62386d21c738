package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/sachink160/multitool-client/internal/client/quota"
	"github.com/sachink160/multitool-client/internal/client/resource"
)

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

const maxCellWidth = 60

func printError(w io.Writer, err error) {
	errColor.Fprintf(w, "Error: %v\n", err)
}

func printSuccess(w io.Writer, format string, args ...any) {
	okColor.Fprintf(w, format+"\n", args...)
}

func printWarn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, format+"\n", args...)
}

func printHeading(w io.Writer, title string) {
	fmt.Fprintln(w, headingStyle.Render(title))
}

// printTable renders rows under headers, or a placeholder for an empty list.
func printTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, dimStyle.Render("(none)"))
		return
	}
	for _, r := range rows {
		for i := range r {
			r[i] = truncate(r[i], maxCellWidth)
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

// field is one label/value line of a detail view.
type field struct {
	label string
	value string
}

func printFields(w io.Writer, fields ...field) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}
	for _, f := range fields {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, f.label))
		fmt.Fprintf(w, "%s  %s\n", label, f.value)
	}
}

// printSectionErrors warns about every section that failed to load.
func printSectionErrors(w io.Writer, errs resource.SectionErrors) {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		printWarn(w, "Could not load %s: %v", name, errs[name])
	}
}

func quotaLine(g quota.Gate) string {
	if !g.Known {
		return "unknown"
	}
	line := fmt.Sprintf("%d / %d used", g.Used, g.Max)
	if !g.Allowed() {
		line += " (limit reached)"
	}
	return line
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
