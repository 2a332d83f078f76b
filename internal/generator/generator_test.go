package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coyksdev/create-rn-app/internal/config"
)

type fakeRunner struct {
	calls []Command
	// fail makes the call with this command name return an error.
	fail string
	// mkdir creates the project directory when the generator runs.
	mkdir bool
}

func (f *fakeRunner) Run(_ context.Context, c Command) (string, error) {
	f.calls = append(f.calls, c)
	if f.fail != "" && c.Name == f.fail {
		return "", &CommandError{Cmd: c.String(), Stderr: "boom", Err: errors.New("exit status 1")}
	}
	if f.mkdir && c.Name == "npx" {
		dir := filepath.Join(c.Dir, c.Args[len(c.Args)-1])
		if c.Args[0] == "create-expo-app@latest" {
			dir = filepath.Join(c.Dir, c.Args[1])
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	return "ok", nil
}

type event struct {
	kind string
	msg  string
}

type recordingReporter struct {
	events []event
}

func (r *recordingReporter) Start(msg string)   { r.events = append(r.events, event{"start", msg}) }
func (r *recordingReporter) Info(msg string)    { r.events = append(r.events, event{"info", msg}) }
func (r *recordingReporter) Succeed(msg string) { r.events = append(r.events, event{"succeed", msg}) }
func (r *recordingReporter) Fail(msg string)    { r.events = append(r.events, event{"fail", msg}) }

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"my-app 1", "my_app_1"},
		{"Demo App", "Demo_App"},
		{"a--b", "a__b"},
		{"a \tb", "a__b"},
		{"plain", "plain"},
		{"a\uFEFFb", "a_b"},
		{"a\u00a0b", "a_b"},
		{"a\u0085b", "a\u0085b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), tt.in)
	}
}

func TestSelection_DirName(t *testing.T) {
	assert.Equal(t, "my-app 1", Selection{Generator: Expo, ProjectName: "my-app 1"}.DirName())
	assert.Equal(t, "my_app_1", Selection{Generator: ReactNativeCLI, ProjectName: "my-app 1"}.DirName())
}

func TestParseGenerator(t *testing.T) {
	for _, in := range []string{"expo", "Expo", " EXPO "} {
		g, err := ParseGenerator(in)
		require.NoError(t, err)
		assert.Equal(t, Expo, g)
	}
	for _, in := range []string{"react-native-cli", "React Native CLI"} {
		g, err := ParseGenerator(in)
		require.NoError(t, err)
		assert.Equal(t, ReactNativeCLI, g)
	}
	_, err := ParseGenerator("flutter")
	assert.ErrorIs(t, err, ErrUnknownGenerator)
}

func TestValidateName(t *testing.T) {
	assert.ErrorIs(t, ValidateName(""), ErrEmptyName)
	assert.ErrorIs(t, ValidateName("   "), ErrEmptyName)
	assert.NoError(t, ValidateName("demo"))
}

func TestScaffoldCommand(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t,
		"npx create-expo-app@latest demo --template expo-template-blank-typescript",
		ScaffoldCommand(cfg, Selection{Generator: Expo, ProjectName: "demo"}).String())
	assert.Equal(t,
		"npx react-native@latest init Demo_App",
		ScaffoldCommand(cfg, Selection{Generator: ReactNativeCLI, ProjectName: "Demo App"}).String())
}

const installLine = "yarn add native-base react-native-svg react-native-safe-area-context @tanstack/react-query --exact"

func TestGenerate_Expo(t *testing.T) {
	base := t.TempDir()
	r := &fakeRunner{mkdir: true}
	rep := &recordingReporter{}

	dir, err := Generate(context.Background(), Options{
		Config: config.Default(), Runner: r, Reporter: rep, BaseDir: base,
	}, Selection{Generator: Expo, ProjectName: "demo"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "demo"), dir)

	require.Len(t, r.calls, 2)
	assert.Equal(t, "npx create-expo-app@latest demo --template expo-template-blank-typescript", r.calls[0].String())
	assert.Equal(t, base, r.calls[0].Dir)
	assert.Equal(t, installLine, r.calls[1].String())
	assert.Equal(t, dir, r.calls[1].Dir)

	got, err := os.ReadFile(filepath.Join(dir, "App.tsx"))
	require.NoError(t, err)
	assert.Equal(t, config.AppTemplate, string(got))

	assert.Equal(t, []event{
		{"start", "Generating project..."},
		{"info", "Installing dependencies..."},
		{"succeed", `Project "demo" generated successfully!`},
	}, rep.events)
}

func TestGenerate_ReactNativeCLI(t *testing.T) {
	base := t.TempDir()
	r := &fakeRunner{mkdir: true}
	rep := &recordingReporter{}

	dir, err := Generate(context.Background(), Options{
		Config: config.Default(), Runner: r, Reporter: rep, BaseDir: base,
	}, Selection{Generator: ReactNativeCLI, ProjectName: "Demo App"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "Demo_App"), dir)

	require.Len(t, r.calls, 2)
	assert.Equal(t, "npx react-native@latest init Demo_App", r.calls[0].String())
	assert.Equal(t, installLine, r.calls[1].String())
	assert.Equal(t, dir, r.calls[1].Dir)
	assert.FileExists(t, filepath.Join(dir, "App.tsx"))
	assert.Equal(t, event{"succeed", `Project "Demo_App" generated successfully!`}, rep.events[len(rep.events)-1])
}

func TestGenerate_ScaffoldFailureHalts(t *testing.T) {
	base := t.TempDir()
	r := &fakeRunner{fail: "npx"}
	rep := &recordingReporter{}

	_, err := Generate(context.Background(), Options{
		Config: config.Default(), Runner: r, Reporter: rep, BaseDir: base,
	}, Selection{Generator: Expo, ProjectName: "demo"})
	require.Error(t, err)

	var cerr *CommandError
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, r.calls, 1, "install must not run after a failed scaffold")
	assert.NoFileExists(t, filepath.Join(base, "demo", "App.tsx"))

	require.Len(t, rep.events, 2)
	assert.Equal(t, "fail", rep.events[1].kind)
	assert.Contains(t, rep.events[1].msg, "boom")
}

func TestGenerate_InstallFailure(t *testing.T) {
	base := t.TempDir()
	r := &fakeRunner{mkdir: true, fail: "yarn"}
	rep := &recordingReporter{}

	_, err := Generate(context.Background(), Options{
		Config: config.Default(), Runner: r, Reporter: rep, BaseDir: base,
	}, Selection{Generator: Expo, ProjectName: "demo"})
	require.Error(t, err)
	assert.Equal(t, "fail", rep.events[len(rep.events)-1].kind)
	assert.NoFileExists(t, filepath.Join(base, "demo", "App.tsx"))
}

func TestGenerate_MissingProjectDir(t *testing.T) {
	// Generator reports success but leaves no directory behind.
	r := &fakeRunner{}
	rep := &recordingReporter{}

	_, err := Generate(context.Background(), Options{
		Config: config.Default(), Runner: r, Reporter: rep, BaseDir: t.TempDir(),
	}, Selection{Generator: Expo, ProjectName: "demo"})
	assert.ErrorIs(t, err, ErrNoProjectDir)
	assert.Len(t, r.calls, 1)
	assert.Equal(t, "fail", rep.events[len(rep.events)-1].kind)
}

func TestGenerate_InvalidSelection(t *testing.T) {
	rep := &recordingReporter{}
	_, err := Generate(context.Background(), Options{
		Config: config.Default(), Runner: &fakeRunner{}, Reporter: rep,
	}, Selection{Generator: Expo, ProjectName: ""})
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Empty(t, rep.events)
}
