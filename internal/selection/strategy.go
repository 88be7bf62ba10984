package selection

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/0xAxiom/AppFactory/internal/types"
)

// AutoSelectEnv enables automatic selection when set to "1"
const AutoSelectEnv = "APPFACTORY_AUTO_SELECT"

// Strategy decides which ranked idea is selected and whether an existing
// selection may be overwritten.
type Strategy interface {
	// Choose returns the 1-based rank of the selected idea
	Choose(ranked *types.RankedIdeas) (int, error)
	ConfirmOverwrite(path string) (bool, error)
	// Interactive reports whether the strategy talks to a user
	Interactive() bool
	Method() string
}

// ResolveOptions holds the inputs used to pick a strategy at startup
type ResolveOptions struct {
	AutoSelect bool
	In         *os.File
	Out        io.Writer
	Logger     *zap.Logger
	// Getenv defaults to os.Getenv
	Getenv func(string) string
}

// Resolve picks the automatic strategy when the flag is set, the environment
// toggle is on, or the input is not a terminal. Otherwise the user is prompted.
func Resolve(opts ResolveOptions) Strategy {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.AutoSelect || getenv(AutoSelectEnv) == "1" || !IsTerminal(opts.In) {
		return &AutoStrategy{Logger: logger}
	}
	return NewPromptStrategy(opts.In, opts.Out)
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// AutoStrategy always picks the top-ranked idea without asking
type AutoStrategy struct {
	Logger *zap.Logger
}

// Choose returns rank 1.
func (a *AutoStrategy) Choose(ranked *types.RankedIdeas) (int, error) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return 0, &Error{Message: "no ranked ideas to select from"}
	}
	a.logger().Info("auto-selecting top-ranked idea (#1)")
	return 1, nil
}

// ConfirmOverwrite always allows the overwrite.
func (a *AutoStrategy) ConfirmOverwrite(path string) (bool, error) {
	a.logger().Info("overwriting existing selection file (auto-mode)", zap.String("path", path))
	return true, nil
}

// Interactive is false.
func (a *AutoStrategy) Interactive() bool { return false }

// Method names the selection method for the selection document.
func (a *AutoStrategy) Method() string { return types.SelectionMethodAuto }

func (a *AutoStrategy) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// PromptStrategy asks the user on a line-oriented console
type PromptStrategy struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptStrategy creates a prompt strategy reading answers from in.
func NewPromptStrategy(in io.Reader, out io.Writer) *PromptStrategy {
	return &PromptStrategy{in: bufio.NewReader(in), out: out}
}

// Choose prompts until a valid rank is entered. An empty answer selects rank 1.
//
//nolint:errcheck // writing prompts to the console
func (p *PromptStrategy) Choose(ranked *types.RankedIdeas) (int, error) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return 0, &Error{Message: "no ranked ideas to select from"}
	}
	count := len(ranked.Ranked)

	for {
		fmt.Fprint(p.out, "\nSelect [1]: ")
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return 1, nil
		}

		choice, convErr := strconv.Atoi(answer)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a valid number")
			continue
		}
		if choice < 1 || choice > count {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d\n", count)
			continue
		}
		return choice, nil
	}
}

// ConfirmOverwrite asks before replacing an existing selection. Anything
// other than y or yes declines.
//
//nolint:errcheck // writing prompts to the console
func (p *PromptStrategy) ConfirmOverwrite(path string) (bool, error) {
	fmt.Fprintf(p.out, "\nSelection file %s already exists. Overwrite? [y/N]: ", path)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Interactive is true.
func (p *PromptStrategy) Interactive() bool { return true }

// Method names the selection method for the selection document.
func (p *PromptStrategy) Method() string { return types.SelectionMethodInteractive }

// readLine returns the next trimmed line. A closed input cancels the selection.
func (p *PromptStrategy) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) != "" {
				return strings.TrimSpace(line), nil
			}
			return "", ErrSelectionCancelled
		}
		return "", &Error{Message: "failed to read selection", Cause: err}
	}
	return strings.TrimSpace(line), nil
}
