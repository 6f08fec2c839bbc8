package fuzzy

import (
	"fmt"
	"io"
	"os"
	"strings"

	fzf "github.com/junegunn/fzf/src"
)

// displaySeparator splits the row label from its description in the fzf
// list, and is used again to recover the label after selection.
const displaySeparator = "  │  "

// Runner abstracts the fzf entry point so tests can script the interactive
// run.
type Runner interface {
	Run(opts *fzf.Options) (int, error)
}

type libraryRunner struct{}

func (libraryRunner) Run(opts *fzf.Options) (int, error) {
	return fzf.Run(opts)
}

// Finder selects one option interactively through the embedded fzf library.
// When fzf itself cannot run, selection degrades to the stdin prompt.
type Finder struct {
	prompt  string
	options []Option
	runner  Runner
}

// New creates a finder with the given prompt.
func New(prompt string) *Finder {
	return &Finder{prompt: prompt, runner: libraryRunner{}}
}

// NewWithRunner creates a finder with a custom fzf runner.
func NewWithRunner(prompt string, runner Runner) *Finder {
	return &Finder{prompt: prompt, runner: runner}
}

// SetOptions replaces the selectable options. The finder keeps its own copy.
func (f *Finder) SetOptions(options []Option) error {
	if options == nil {
		return fmt.Errorf("options cannot be nil")
	}

	f.options = make([]Option, len(options))
	copy(f.options, options)
	return nil
}

// Select runs fzf over the options and returns the Value of the chosen row.
// A selection that matches no option is an error.
func (f *Finder) Select() (string, error) {
	if len(f.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	list, err := f.writeOptionList()
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(list.Name())
	}()
	defer func() {
		_ = list.Close()
	}()

	opts, err := fzf.ParseOptions(true, []string{
		"--prompt=" + f.prompt + " ",
		"--height=10",
		"--no-multi",
		"--cycle",
		"--clear",
		"--no-mouse",
		"--tiebreak=begin",
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse fzf options: %w", err)
	}

	// fzf reads its candidates from stdin and prints the chosen line to
	// stdout, so both are swapped out for the duration of the run
	readResult, writeResult, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("failed to create pipe: %w", err)
	}
	defer func() {
		_ = readResult.Close()
	}()

	stdin, stdout := os.Stdin, os.Stdout
	os.Stdin = list
	os.Stdout = writeResult

	exitCode, runErr := f.runner.Run(opts)

	_ = writeResult.Close()
	os.Stdin = stdin
	os.Stdout = stdout

	if runErr != nil {
		// the terminal is restored at this point, so the plain prompt
		// talks to the real stdin
		return fallbackSelect(f.prompt, f.options)
	}
	if exitCode != fzf.ExitOk {
		return "", fmt.Errorf("selection cancelled")
	}

	chosen, err := io.ReadAll(readResult)
	if err != nil {
		return "", fmt.Errorf("failed to read fzf result: %w", err)
	}

	line := strings.TrimSpace(string(chosen))
	if line == "" {
		return "", fmt.Errorf("no selection made")
	}

	label := line
	if i := strings.Index(line, displaySeparator); i >= 0 {
		label = strings.TrimSpace(line[:i])
	}

	for _, option := range f.options {
		if option.label() == label {
			return option.Value, nil
		}
	}
	return "", fmt.Errorf("selection %q does not match any option", label)
}

// writeOptionList writes one display row per option to a temp file and
// reopens it for reading, ready to become fzf's stdin.
func (f *Finder) writeOptionList() (*os.File, error) {
	tmp, err := os.CreateTemp("", "folio-picker-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create option list: %w", err)
	}

	for _, option := range f.options {
		row := option.label()
		if option.Description != "" {
			row += displaySeparator + option.Description
		}
		if _, err := fmt.Fprintln(tmp, row); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
			return nil, fmt.Errorf("failed to write option list: %w", err)
		}
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to flush option list: %w", err)
	}

	list, err := os.Open(tmp.Name())
	if err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to reopen option list: %w", err)
	}
	return list, nil
}
