package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

// runForm is swapped in tests.
var runForm = func(f *huh.Form) error { return f.Run() }

// PromptDestination asks for the directory to write the summary into and,
// when a summary already exists there, whether to replace it. It returns
// ErrCanceled if the user keeps the existing file.
func PromptDestination(defaultDir string) (string, error) {
	dir := defaultDir
	form := newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Save summary to directory").
				Description("The file is named weave-evaluations-summary.md").
				Value(&dir).
				Placeholder(defaultDir),
		),
	)
	if err := runForm(form); err != nil {
		return "", err
	}

	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultDir
	}

	if _, err := os.Stat(SummaryPath(dir)); err == nil {
		replace := false
		confirm := newForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("%s already exists. Replace it?", SummaryPath(dir))).
					Value(&replace).
					Affirmative("Replace").
					Negative("Keep existing"),
			),
		)
		if err := runForm(confirm); err != nil {
			return "", err
		}
		if !replace {
			return "", ErrCanceled
		}
	}

	return dir, nil
}
