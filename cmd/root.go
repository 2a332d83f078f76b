package cmd

/*
Copyright © 2025 coyksdev
*/

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	outputDir string

	flagName      string
	flagGenerator string
)

// errReported marks failures the progress reporter already printed.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "create-rn-app",
	Short: "Scaffold a React Native app with Expo or the React Native CLI",
	Long: `Generates a new mobile project with create-expo-app or the React Native
CLI, adds native-base, react-native-svg, react-native-safe-area-context and
@tanstack/react-query, and replaces App.tsx with a starter screen.

Run it inside the directory where you want your new project folder to be
created.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
	RunE: runCreate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "directory to create the project in (default: current directory)")
	rootCmd.PersistentFlags().StringVarP(&flagGenerator, "generator", "g", "", "generator: expo or react-native-cli")
	rootCmd.PersistentFlags().StringVarP(&flagName, "name", "n", "", "project name")
}

func setupLogging(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("create-rn-app %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
