package lexer

import "github.com/corey/lexis/internal/domain/profile"

// stateStack holds the nested lexer modes. The top determines which rule
// set applies. Popping the last state is a no-op; malformed profiles must
// not strand the lexer without a state.
type stateStack struct {
	names []string
}

func newStateStack(initial string) *stateStack {
	return &stateStack{names: []string{initial}}
}

func (s *stateStack) current() string {
	return s.names[len(s.names)-1]
}

func (s *stateStack) push(name string) {
	s.names = append(s.names, name)
}

func (s *stateStack) pop() {
	if len(s.names) > 1 {
		s.names = s.names[:len(s.names)-1]
	}
}

func (s *stateStack) switchTo(name string) {
	s.names[len(s.names)-1] = name
}

// applyTransition applies exactly one of push, pop, or switchTo from the
// rule, in that priority order.
func (s *stateStack) applyTransition(r *profile.Rule) {
	switch {
	case r.Push != "":
		s.push(r.Push)
	case r.Pop:
		s.pop()
	case r.SwitchTo != "":
		s.switchTo(r.SwitchTo)
	}
}
