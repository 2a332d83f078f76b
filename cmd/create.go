package cmd

/*
Copyright © 2025 coyksdev
*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/coyksdev/create-rn-app/internal/config"
	"github.com/coyksdev/create-rn-app/internal/generator"
	"github.com/coyksdev/create-rn-app/internal/ui"
)

// progress is what create drives; Stop restores the terminal.
type progress interface {
	generator.Reporter
	Stop()
}

// swapped in tests
var (
	newRunner   = func() generator.Runner { return generator.ExecRunner{} }
	newProgress = func(out io.Writer) progress {
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return ui.NewSpinnerReporter(out)
		}
		return ui.NewLineReporter(out)
	}
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new React Native project",
	Long: `Prompts for a generator (Expo or React Native CLI) and a project name,
then scaffolds the project and installs the starter dependencies.

Pass --generator and --name to skip the prompts.`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	sel, err := presetSelection()
	if err != nil {
		return err
	}

	if sel.Generator == 0 || sel.ProjectName == "" {
		p := tea.NewProgram(ui.NewWizardModel(sel))
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		wm := finalModel.(ui.WizardModel)
		res := wm.Result()
		if !res.Confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		sel = res.Selection
	}

	out := cmd.OutOrStdout()
	rep := newProgress(out)
	dir, err := generator.Generate(cmd.Context(), generator.Options{
		Config:   cfg,
		Runner:   newRunner(),
		Reporter: rep,
		BaseDir:  outputDir,
	}, sel)
	rep.Stop()
	if err != nil {
		log.WithError(err).Debug("create failed")
		return errReported
	}

	printNextSteps(out, sel.Generator, dir)
	return nil
}

// presetSelection collects what the flags already answer.
func presetSelection() (generator.Selection, error) {
	var sel generator.Selection
	if flagGenerator != "" {
		g, err := generator.ParseGenerator(flagGenerator)
		if err != nil {
			return sel, err
		}
		sel.Generator = g
	}
	if flagName != "" {
		if err := generator.ValidateName(flagName); err != nil {
			return sel, err
		}
		sel.ProjectName = strings.TrimSpace(flagName)
	}
	return sel, nil
}

func printNextSteps(out io.Writer, g generator.Generator, dir string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "🚀 Next steps:")
	fmt.Fprintf(out, "  1. cd %s\n", dir)
	if g == generator.Expo {
		fmt.Fprintln(out, "  2. npx expo start")
	} else {
		fmt.Fprintln(out, "  2. npx react-native run-android   # or run-ios")
	}
	fmt.Fprintln(out)
}
