package parse

// State represents the current state of the argument cursor
type State interface {
	CurrentArg() string   // Get the current argument
	Peek() (string, bool) // Peek at the next argument
	Advance() bool        // Advance to the next argument
	Next() (string, bool) // Consume the next argument
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State instance with the given argument list. The cursor starts
// before the first argument; call Advance to move onto it.
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() (string, bool) {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1], true
	}

	return "", false
}

// Next advances past the next argument and returns it. Unlike Advance it is meant for
// consuming an option value, so the returned argument is never classified.
func (s *DefaultState) Next() (string, bool) {
	next, ok := s.Peek()
	if ok {
		s.pos++
	}

	return next, ok
}
