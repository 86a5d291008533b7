// Package mode resolves the declared dark-mode strategy.
package mode

import (
	"fmt"
)

// Strategy is the mechanism that activates the dark appearance variant.
type Strategy int

const (
	// None disables the dark variant.
	None Strategy = iota
	// MediaQuery follows the color scheme reported by the operating system.
	MediaQuery
	// Selector activates the variant when an ancestor element carries a state.
	Selector
)

// DefaultSelector is the ancestor selector used by the Selector strategy.
const DefaultSelector = ".dark"

// UnknownStrategyError is returned for an unrecognized darkMode value.
type UnknownStrategyError struct {
	Value string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown dark mode strategy %q (expected \"media\", \"class\" or \"selector\")", e.Value)
}

// Resolve maps the authored darkMode value to a Strategy. A nil value means
// the field was absent. "class" is the older name of "selector".
func Resolve(raw *string) (Strategy, error) {
	if raw == nil {
		return None, nil
	}
	switch *raw {
	case "media":
		return MediaQuery, nil
	case "class", "selector":
		return Selector, nil
	}
	return None, &UnknownStrategyError{Value: *raw}
}

func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case MediaQuery:
		return "media"
	case Selector:
		return "selector"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// MarshalText encodes the canonical strategy name.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Condition returns the CSS hook a stylesheet emitter wraps dark variants in.
// None has no hook.
func (s Strategy) Condition() string {
	switch s {
	case MediaQuery:
		return "@media (prefers-color-scheme: dark)"
	case Selector:
		return DefaultSelector
	}
	return ""
}
