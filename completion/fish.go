package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		// Start with base command, add -f unless the value may be a path
		cmd := fmt.Sprintf("complete -c %s", programName)
		if !flag.completesFiles() {
			cmd = fmt.Sprintf("%s -f", cmd)
		}

		cmd = fmt.Sprintf("%s -l %s", cmd, flag.Long)
		if flag.Short != "" {
			cmd = fmt.Sprintf("%s -s %s", cmd, flag.Short)
		}
		if flag.TakesValue {
			cmd = fmt.Sprintf("%s -r", cmd)
		}
		cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(flag.describe()))
		script.WriteString(cmd + "\n")
	}

	return script.String()
}
