package completion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func getTestCompletionData() CompletionData {
	return CompletionData{
		Flags: []FlagData{
			{Long: "input", Short: "i", Description: "Input file", TakesValue: true, ValueHint: HintString},
			{Long: "count", Short: "c", Description: "Number of items", TakesValue: true, ValueHint: HintInteger},
			{Long: "ratio", TakesValue: true, ValueHint: HintNumber},
			{Long: "verbose", Short: "v", Description: "Verbose output"},
			{Long: "help", Short: "h", Description: "Show this help message"},
		},
		Positionals: []PositionalData{
			{Name: "source", Description: "Source file", Required: true, ValueHint: HintString},
			{Name: "target", Description: "Target file", ValueHint: HintString},
		},
	}
}

func TestBashCompletion(t *testing.T) {
	result := (&BashGenerator{}).Generate("testapp", getTestCompletionData())

	expectations := []string{
		"function __testapp_completion",
		`"--input" "-i" "--count" "-c" "--ratio" "--verbose" "-v" "--help" "-h"`,
		"--input|-i)",
		`COMPREPLY=( $(compgen -f -- "$cur") )`,
		"--count|-c)",
		"--ratio)",
		"complete -F __testapp_completion testapp",
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
	assert.NotContains(t, result, "--verbose|-v)", "flags take no value")
}

func TestBashCompletion_ProgramNameWithDash(t *testing.T) {
	result := (&BashGenerator{}).Generate("my-tool", CompletionData{})
	assert.Contains(t, result, "function __my_tool_completion")
	assert.Contains(t, result, "complete -F __my_tool_completion my-tool")
}

func TestZshCompletion(t *testing.T) {
	result := (&ZshGenerator{}).Generate("testapp", getTestCompletionData())

	expectations := []string{
		"#compdef testapp",
		`'(-i --input)'{-i,--input}'[Input file]:string:_files' \`,
		`'(-v --verbose)'{-v,--verbose}'[Verbose output]' \`,
		`'--ratio[number]:number: ' \`,
		`'1:source:_files' \`,
		`'2::target:_files' \`,
		`__testapp_completion "$@"`,
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
}

func TestFishCompletion(t *testing.T) {
	result := (&FishGenerator{}).Generate("testapp", getTestCompletionData())
	lines := strings.Split(strings.TrimSpace(result), "\n")

	assert.Equal(t, []string{
		"complete -c testapp -l input -s i -r -d 'Input file'",
		"complete -c testapp -f -l count -s c -r -d 'Number of items'",
		"complete -c testapp -f -l ratio -r -d 'number'",
		"complete -c testapp -f -l verbose -s v -d 'Verbose output'",
		"complete -c testapp -f -l help -s h -d 'Show this help message'",
	}, lines)
}

func TestPowerShellCompletion(t *testing.T) {
	result := (&PowerShellGenerator{}).Generate("testapp", getTestCompletionData())

	expectations := []string{
		"Register-ArgumentCompleter -Native -CommandName 'testapp'",
		"::new('--input', 'input', [System.Management.Automation.CompletionResultType]::ParameterName, 'Input file')",
		"::new('-i', 'i', [System.Management.Automation.CompletionResultType]::ParameterName, 'Input file')",
		"::new('--ratio', 'ratio', [System.Management.Automation.CompletionResultType]::ParameterName, 'number')",
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
}

func TestEscaping(t *testing.T) {
	data := CompletionData{
		Flags: []FlagData{{Long: "name", Description: "User's [real] name: \"quoted\" $HOME"}},
	}

	tests := []struct {
		shell    string
		expected string
	}{
		{"zsh", `'--name[User'\''s \[real\] name\: "quoted" $HOME]' \`},
		{"fish", `-d 'User\'s [real] name: "quoted" $HOME'`},
		{"powershell", `'User''s [real] name: "quoted" $HOME'`},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			script, err := Generate(tt.shell, "app", data)
			assert.NoError(t, err)
			assert.Contains(t, script, tt.expected)
		})
	}
}

func TestEscapeBash(t *testing.T) {
	assert.Equal(t, `say \"hi\" to \$USER`, escapeBash(`say "hi" to $USER`))
	assert.Equal(t, "\\`cmd\\`", escapeBash("`cmd`"))
}

func TestFunctionName(t *testing.T) {
	assert.Equal(t, "my_tool", functionName("my-tool"))
	assert.Equal(t, "app_v2", functionName("app.v2"))
	assert.Equal(t, "plain", functionName("plain"))
}
