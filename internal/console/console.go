// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console renders styled terminal output and collects operator input
// for the interactive pipelines. All prompting goes through a Console so
// tests can drive the flows with a scripted reader.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console reads operator input line by line and writes styled output.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Console bound to stdin and stdout.
func New() *Console {
	return NewWith(os.Stdin, os.Stdout)
}

// NewWith returns a Console over the given reader and writer.
func NewWith(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Clear clears the terminal screen.
func (c *Console) Clear() {
	fmt.Fprint(c.out, "\033[2J\033[H")
}

// Header prints a full-width section banner.
func (c *Console) Header(title string) {
	rule := strings.Repeat("═", headerWidth)
	fmt.Fprintln(c.out, headerStyle.Render(rule))
	fmt.Fprintln(c.out, headerStyle.Render(title))
	fmt.Fprintln(c.out, headerStyle.Render(rule))
}

// SubHeader prints a short section divider.
func (c *Console) SubHeader(title string) {
	fmt.Fprintln(c.out, subHeaderStyle.Render("── "+title+" ──"))
}

// Println writes a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted plain text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Success writes a green line.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, successStyle.Render("✔ "+msg))
}

// Info writes a muted line.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, mutedStyle.Render(msg))
}

// Warn writes a yellow line.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, warnStyle.Render("⚠ "+msg))
}

// Error writes a red line.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, errorStyle.Render("✘ "+msg))
}

// Card prints a bordered card with a title and label/value fields. Fields
// are rendered in order as pairs, so len(fields) should be even.
func (c *Console) Card(title string, fields ...string) {
	var sb strings.Builder
	sb.WriteString(cardTitleStyle.Render(title))
	for i := 0; i+1 < len(fields); i += 2 {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(fields[i] + ": "))
		sb.WriteString(fields[i+1])
	}
	fmt.Fprintln(c.out, cardStyle.Render(sb.String()))
}

// Table prints a padded column table with a header row.
func (c *Console) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(labelStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			sb.WriteString(mutedStyle.Render(" │ "))
		}
	}
	sb.WriteString("\n")
	total := 0
	for _, w := range widths {
		total += w + 3
	}
	sb.WriteString(mutedStyle.Render(strings.Repeat("─", total)))
	for _, row := range rows {
		sb.WriteString("\n")
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			sb.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				sb.WriteString(mutedStyle.Render(" │ "))
			}
		}
	}
	fmt.Fprintln(c.out, sb.String())
}

func pad(s string, width int) string {
	if d := width - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// Input prompts for one line and returns it trimmed.
func (c *Console) Input(msg string) (string, error) {
	fmt.Fprint(c.out, promptStyle.Render(msg+": "))
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. An empty answer takes the default, and an
// unrecognized answer re-prompts.
func (c *Console) Confirm(msg string, def bool) (bool, error) {
	hint := "(Y/n)"
	if !def {
		hint = "(y/N)"
	}
	for {
		answer, err := c.Input(msg + " " + hint)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Warn("Please answer y or n.")
	}
}

// Select prompts with a numbered list and returns the index of the chosen
// option. Invalid answers re-prompt.
func (c *Console) Select(msg string, options []string) (int, error) {
	fmt.Fprintln(c.out, promptStyle.Render(msg))
	for i, opt := range options {
		fmt.Fprintf(c.out, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%d)", i+1)), opt)
	}
	for {
		answer, err := c.Input("Choice")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		c.Warn(fmt.Sprintf("Enter a number between 1 and %d.", len(options)))
	}
}

// MultiSelect prompts with a numbered list and returns the indexes of the
// chosen options, in ascending order. Answers are comma separated numbers.
// Fewer than minimum selections re-prompts.
func (c *Console) MultiSelect(msg string, options []string, minimum int) ([]int, error) {
	fmt.Fprintln(c.out, promptStyle.Render(msg))
	for i, opt := range options {
		fmt.Fprintf(c.out, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%d)", i+1)), opt)
	}
	for {
		answer, err := c.Input("Choices (comma separated)")
		if err != nil {
			return nil, err
		}
		picked, ok := parseSelection(answer, len(options))
		if !ok {
			c.Warn(fmt.Sprintf("Enter numbers between 1 and %d, separated by commas.", len(options)))
			continue
		}
		if len(picked) < minimum {
			c.Warn(fmt.Sprintf("Select at least %d options.", minimum))
			continue
		}
		return picked, nil
	}
}

// parseSelection parses a comma separated list of 1-based choices into
// sorted unique 0-based indexes.
func parseSelection(answer string, count int) ([]int, bool) {
	var picked []int
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > count {
			return nil, false
		}
		if !slices.Contains(picked, n-1) {
			picked = append(picked, n-1)
		}
	}
	sort.Ints(picked)
	return picked, true
}
