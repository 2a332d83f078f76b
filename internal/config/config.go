// Package config holds the static values used when scaffolding a project and
// loads overrides for them from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix = "CREATE_RN_APP"
	fileType  = "yaml"
)

const (
	KeyPackageManager = "package_manager"
	KeyDependencies   = "dependencies"
	KeyExact          = "exact"
	KeyEntryFile      = "entry_file"
	KeyExpoTemplate   = "expo_template"
)

// AppTemplate is written over the generated project's entry file.
const AppTemplate = `import React from 'react';
import {NativeBaseProvider, Center} from 'native-base';
import {QueryClient, QueryClientProvider} from '@tanstack/react-query';

const queryClient = new QueryClient();

export default function App() {
  return (
    <NativeBaseProvider>
      <QueryClientProvider client={queryClient}>
        <Center flex={1}>Hello world</Center>
      </QueryClientProvider>
    </NativeBaseProvider>
  );
}
`

// Config is the record of fixed strings the generator works from.
type Config struct {
	PackageManager string
	Dependencies   []string
	Exact          bool
	EntryFile      string
	ExpoTemplate   string
	Template       string
}

// Default returns the configuration every run starts from.
func Default() Config {
	return Config{
		PackageManager: "yarn",
		Dependencies: []string{
			"native-base",
			"react-native-svg",
			"react-native-safe-area-context",
			"@tanstack/react-query",
		},
		Exact:        true,
		EntryFile:    "App.tsx",
		ExpoTemplate: "expo-template-blank-typescript",
		Template:     AppTemplate,
	}
}

// Load reads overrides from path (when non-empty) and from CREATE_RN_APP_*
// environment variables on top of Default.
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(KeyPackageManager, def.PackageManager)
	v.SetDefault(KeyDependencies, def.Dependencies)
	v.SetDefault(KeyExact, def.Exact)
	v.SetDefault(KeyEntryFile, def.EntryFile)
	v.SetDefault(KeyExpoTemplate, def.ExpoTemplate)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := Config{
		PackageManager: strings.ToLower(strings.TrimSpace(v.GetString(KeyPackageManager))),
		Dependencies:   v.GetStringSlice(KeyDependencies),
		Exact:          v.GetBool(KeyExact),
		EntryFile:      v.GetString(KeyEntryFile),
		ExpoTemplate:   v.GetString(KeyExpoTemplate),
		Template:       def.Template,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unusable value in c.
func (c Config) Validate() error {
	if _, ok := packageManagers[c.PackageManager]; !ok {
		return fmt.Errorf("unsupported package manager %q", c.PackageManager)
	}
	if len(c.Dependencies) == 0 {
		return errors.New("no dependencies configured")
	}
	if strings.TrimSpace(c.EntryFile) == "" {
		return errors.New("entry file name is empty")
	}
	if strings.ContainsAny(c.EntryFile, `/\`) {
		return fmt.Errorf("entry file %q must be a bare file name", c.EntryFile)
	}
	if strings.TrimSpace(c.ExpoTemplate) == "" {
		return errors.New("expo template is empty")
	}
	return nil
}

type pmSpec struct {
	add   []string
	exact string
}

var packageManagers = map[string]pmSpec{
	"yarn": {add: []string{"add"}, exact: "--exact"},
	"npm":  {add: []string{"install"}, exact: "--save-exact"},
	"pnpm": {add: []string{"add"}, exact: "--save-exact"},
	"bun":  {add: []string{"add"}, exact: "--exact"},
}

// InstallArgs returns the package manager binary and the arguments that add
// the configured dependencies.
func (c Config) InstallArgs() (string, []string) {
	pm := packageManagers[c.PackageManager]
	args := append([]string{}, pm.add...)
	args = append(args, c.Dependencies...)
	if c.Exact {
		args = append(args, pm.exact)
	}
	return c.PackageManager, args
}
