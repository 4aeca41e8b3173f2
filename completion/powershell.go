// completion/powershell.go
package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $flags = @(`, escapePowerShell(programName)))

	for _, flag := range data.Flags {
		desc := escapePowerShell(flag.describe())
		script.WriteString(fmt.Sprintf(`
        [System.Management.Automation.CompletionResult]::new('--%[1]s', '%[1]s', [System.Management.Automation.CompletionResultType]::ParameterName, '%[2]s')`,
			escapePowerShell(flag.Long), desc))
		if flag.Short != "" {
			script.WriteString(fmt.Sprintf(`
        [System.Management.Automation.CompletionResult]::new('-%[1]s', '%[1]s', [System.Management.Automation.CompletionResultType]::ParameterName, '%[2]s')`,
				escapePowerShell(flag.Short), desc))
		}
	}

	script.WriteString(`
    )

    # Handle flags
    if ($wordToComplete.StartsWith('-')) {
        $flags | Where-Object { $_.CompletionText -like "$wordToComplete*" }
    }
}
`)

	return script.String()
}
