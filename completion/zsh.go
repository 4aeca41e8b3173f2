// completion/zsh.go
package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %s

__%s_completion() {
    _arguments \`, programName, fn))

	for _, flag := range data.Flags {
		desc := escapeZsh(flag.describe())
		var spec string
		if flag.Short != "" {
			spec = fmt.Sprintf(`'(-%[1]s --%[2]s)'{-%[1]s,--%[2]s}'[%[3]s]`, flag.Short, flag.Long, desc)
		} else {
			spec = fmt.Sprintf(`'--%s[%s]`, flag.Long, desc)
		}
		if flag.TakesValue {
			spec += ":" + flag.ValueHint + ":" + zshAction(flag.ValueHint)
		}
		script.WriteString(fmt.Sprintf(`
        %s' \`, spec))
	}

	for i, pos := range data.Positionals {
		sep := ":"
		if !pos.Required {
			sep = "::"
		}
		script.WriteString(fmt.Sprintf(`
        '%d%s%s:%s' \`, i+1, sep, escapeZsh(pos.Name), zshAction(pos.ValueHint)))
	}

	script.WriteString(fmt.Sprintf(`
        && return 0
}

__%s_completion "$@"
`, fn))

	return script.String()
}

func zshAction(hint string) string {
	if hint == HintString {
		return "_files"
	}

	return " "
}
