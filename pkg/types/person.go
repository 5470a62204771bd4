package types

// Person is implemented by the people tracked by the system.
// Each variant carries its own identity fields and renders its own
// one-line summary; Display is the only behavior shared across them.
type Person interface {
	Display() string
}
