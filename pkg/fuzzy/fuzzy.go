// Package fuzzy implements the interactive picker behind commands that
// accept an optional repository argument: an fzf-backed selector with a
// plain numbered stdin prompt as the fallback when fzf cannot run.
package fuzzy

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Option is one selectable row. Value is what Select returns. The rendered
// row leads with the full_name metadata when present, so repository pickers
// display owner/name while selection still yields the bare repository name.
type Option struct {
	Value       string
	Description string
	Metadata    map[string]string
}

// label returns the leading display column of the row.
func (o Option) label() string {
	if full := o.Metadata["full_name"]; full != "" {
		return full
	}
	return o.Value
}

// fallbackSelect reads a selection from stdin when fzf cannot take over the
// terminal: a number picks the row, any other input narrows the list by
// substring, and a filter that leaves a single row selects it.
func fallbackSelect(prompt string, options []Option) (string, error) {
	reader := bufio.NewReader(os.Stdin)
	visible := options

	for {
		fmt.Println(prompt)
		for i, option := range visible {
			row := option.label()
			if option.Description != "" {
				row += " - " + option.Description
			}
			fmt.Printf("%d. %s\n", i+1, row)
		}
		fmt.Printf("Select (1-%d) or type to filter: ", len(visible))

		input, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read selection: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			visible = options
			continue
		}

		if index, err := strconv.Atoi(input); err == nil {
			if index < 1 || index > len(visible) {
				fmt.Printf("Selection %d is out of range\n\n", index)
				continue
			}
			return visible[index-1].Value, nil
		}

		matched := filterOptions(visible, input)
		switch len(matched) {
		case 0:
			fmt.Printf("No options match %q\n\n", input)
			visible = options
		case 1:
			return matched[0].Value, nil
		default:
			visible = matched
		}
	}
}

// filterOptions keeps the options whose label or description contains the
// filter, case-insensitively.
func filterOptions(options []Option, filter string) []Option {
	filter = strings.ToLower(filter)

	var matched []Option
	for _, option := range options {
		if strings.Contains(strings.ToLower(option.label()), filter) ||
			strings.Contains(strings.ToLower(option.Description), filter) {
			matched = append(matched, option)
		}
	}
	return matched
}
