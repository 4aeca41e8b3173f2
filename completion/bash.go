// completion/bash.go
package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Handle option values
    case "${prev}" in`, fn))

	for _, flag := range data.Flags {
		if !flag.TakesValue {
			continue
		}
		action := "COMPREPLY=()"
		if flag.completesFiles() {
			action = `COMPREPLY=( $(compgen -f -- "$cur") )`
		}
		script.WriteString(fmt.Sprintf(`
        %s)
            %s
            return
            ;;`, bashPattern(flag), action))
	}

	script.WriteString(`
    esac

    # If we're completing an option
    if [[ "$cur" == -* ]]; then
        local flags=(`)

	words := make([]string, 0, len(data.Flags)*2)
	for _, flag := range data.Flags {
		words = append(words, `"--`+escapeBash(flag.Long)+`"`)
		if flag.Short != "" {
			words = append(words, `"-`+escapeBash(flag.Short)+`"`)
		}
	}
	script.WriteString(strings.Join(words, " "))

	script.WriteString(`)
        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi`)

	if len(data.Positionals) > 0 {
		script.WriteString(`

    # Positional arguments
    COMPREPLY=( $(compgen -f -- "$cur") )`)
	}

	script.WriteString(fmt.Sprintf(`
}

complete -F __%s_completion %s
`, fn, programName))

	return script.String()
}

func bashPattern(flag FlagData) string {
	if flag.Short != "" {
		return "--" + flag.Long + "|-" + flag.Short
	}

	return "--" + flag.Long
}
