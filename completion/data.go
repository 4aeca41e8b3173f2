// completion/data.go
package completion

// Value hints understood by the generators. They match the placeholders the parser
// derives from an argument's kind.
const (
	HintString    = "string"
	HintInteger   = "integer"
	HintNumber    = "number"
	HintTimestamp = "timestamp"
)

// FlagData describes one named argument
type FlagData struct {
	Long        string // Long name without the "--" prefix
	Short       string // Short name without the "-" prefix, may be empty
	Description string
	TakesValue  bool   // False for boolean flags
	ValueHint   string // One of the Hint constants when TakesValue is set
}

// PositionalData describes one positional argument
type PositionalData struct {
	Name        string
	Description string
	Required    bool
	ValueHint   string
}

// CompletionData is used to store the completion data for all declared arguments, in declaration order
type CompletionData struct {
	Flags       []FlagData
	Positionals []PositionalData
}

// describe returns the description of f, falling back to its value hint
func (f FlagData) describe() string {
	if f.Description != "" {
		return f.Description
	}

	return f.ValueHint
}

// completesFiles is true when the value of f is free text, which shells usually complete as paths
func (f FlagData) completesFiles() bool {
	return f.TakesValue && f.ValueHint == HintString
}
