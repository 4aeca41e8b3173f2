package completion

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Generator renders a completion script for one shell
type Generator interface {
	Generate(programName string, data CompletionData) string
}

var ErrUnsupportedShell = errors.New("unsupported shell")

var generators = map[string]Generator{
	"bash":       &BashGenerator{},
	"zsh":        &ZshGenerator{},
	"fish":       &FishGenerator{},
	"powershell": &PowerShellGenerator{},
}

// GetGenerator returns the generator for shell. Shell names are case-insensitive.
func GetGenerator(shell string) (Generator, error) {
	g, ok := generators[strings.ToLower(shell)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}

	return g, nil
}

// Generate renders the completion script of programName for shell. Only the base name of
// programName is used.
func Generate(shell, programName string, data CompletionData) (string, error) {
	g, err := GetGenerator(shell)
	if err != nil {
		return "", err
	}

	return g.Generate(filepath.Base(programName), data), nil
}

// SupportedShells returns the names accepted by GetGenerator, sorted
func SupportedShells() []string {
	shells := make([]string, 0, len(generators))
	for s := range generators {
		shells = append(shells, s)
	}
	sort.Strings(shells)

	return shells
}
