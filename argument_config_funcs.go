package argsparser

// WithShortName sets the short form of an argument, matched as -s. A short name longer than
// one character can only be given as a separate token (-name), never in a group.
// Positional arguments have no short form.
func WithShortName(short string) ConfigureArgumentFunc {
	return func(decl *Declaration, err *error) {
		decl.Short = short
	}
}

// WithDescription sets the description shown in help output
func WithDescription(description string) ConfigureArgumentFunc {
	return func(decl *Declaration, err *error) {
		decl.Description = description
	}
}

// SetRequired marks the argument as required. Required flags are accepted but the requirement is
// ignored and reported by Parser.Warnings.
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(decl *Declaration, err *error) {
		decl.Required = required
	}
}
