package generator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"

	"github.com/coyksdev/create-rn-app/internal/config"
)

// Generator is the external tool that lays out the project directory.
type Generator int

const (
	Expo Generator = iota + 1
	ReactNativeCLI
)

var (
	ErrEmptyName        = errors.New("project name is empty")
	ErrUnknownGenerator = errors.New("unknown generator")
)

// Generators lists the choices in the order they are offered.
func Generators() []Generator {
	return []Generator{Expo, ReactNativeCLI}
}

func (g Generator) String() string {
	switch g {
	case Expo:
		return "Expo"
	case ReactNativeCLI:
		return "React Native CLI"
	default:
		return fmt.Sprintf("Generator(%d)", int(g))
	}
}

// Slug is the flag value for g.
func (g Generator) Slug() string {
	switch g {
	case Expo:
		return "expo"
	case ReactNativeCLI:
		return "react-native-cli"
	default:
		return ""
	}
}

// ParseGenerator accepts either the flag value or the display label.
func ParseGenerator(s string) (Generator, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, g := range Generators() {
		if v == g.Slug() || v == strings.ToLower(g.String()) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want expo or react-native-cli)", ErrUnknownGenerator, s)
}

// ValidateName rejects names that are empty after trimming.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// NormalizeName replaces every hyphen and whitespace character with an
// underscore. Runs are not collapsed.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || isSeparatorSpace(r) {
			return '_'
		}
		return r
	}, name)
}

// isSeparatorSpace matches the whitespace set of a JavaScript \s class:
// U+FEFF counts, U+0085 does not.
func isSeparatorSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// Selection is what the prompt stage hands to Generate.
type Selection struct {
	Generator   Generator
	ProjectName string
}

// DirName is the directory the generator creates. Only the React Native CLI
// path is normalized; Expo receives the name as typed.
func (s Selection) DirName() string {
	if s.Generator == ReactNativeCLI {
		return NormalizeName(s.ProjectName)
	}
	return s.ProjectName
}

// Validate checks both fields of s.
func (s Selection) Validate() error {
	if s.Generator != Expo && s.Generator != ReactNativeCLI {
		return fmt.Errorf("%w: %d", ErrUnknownGenerator, int(s.Generator))
	}
	return ValidateName(s.ProjectName)
}

// ScaffoldCommand builds the generator invocation for s.
func ScaffoldCommand(cfg config.Config, s Selection) Command {
	switch s.Generator {
	case Expo:
		return Command{
			Name: "npx",
			Args: []string{"create-expo-app@latest", s.DirName(), "--template", cfg.ExpoTemplate},
		}
	default:
		return Command{
			Name: "npx",
			Args: []string{"react-native@latest", "init", s.DirName()},
		}
	}
}

// Reporter receives the status transitions of a run.
type Reporter interface {
	Start(msg string)
	Info(msg string)
	Succeed(msg string)
	Fail(msg string)
}

const (
	msgGenerating = "Generating project..."
	msgInstalling = "Installing dependencies..."
)

// Options carries the collaborators of Generate.
type Options struct {
	Config   config.Config
	Runner   Runner
	Reporter Reporter
	// BaseDir is where the generator is run; the project lands in
	// BaseDir/<dir name>. Empty means the current working directory.
	BaseDir string
}

// Generate is the main entry point called from cmd/create.go. It returns the
// project directory. A failed scaffold halts the run before installation.
func Generate(ctx context.Context, opts Options, s Selection) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	rep := opts.Reporter
	name := s.DirName()
	dir := filepath.Join(opts.BaseDir, name)

	rep.Start(msgGenerating)

	// 1) Scaffold with the chosen generator.
	cmd := ScaffoldCommand(opts.Config, s)
	cmd.Dir = opts.BaseDir
	log.WithFields(log.Fields{"generator": s.Generator.Slug(), "name": name}).Debug("scaffolding project")
	if _, err := opts.Runner.Run(ctx, cmd); err != nil {
		rep.Fail(err.Error())
		return "", fmt.Errorf("scaffold: %w", err)
	}

	// 2) Dependencies and entry file.
	rep.Info(msgInstalling)
	if err := Install(ctx, opts.Runner, opts.Config, dir); err != nil {
		rep.Fail(err.Error())
		return dir, fmt.Errorf("install: %w", err)
	}

	rep.Succeed(fmt.Sprintf("Project \"%s\" generated successfully!", name))
	return dir, nil
}
