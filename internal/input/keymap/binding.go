package keymap

// Binding is one chord-to-command mapping. Chord uses the spec format
// from the key package ("primary+z", "alt+left"). An empty Platform
// means the binding is portable; otherwise it applies only on the
// named platform and takes precedence over portable bindings there.
type Binding struct {
	Chord    string
	Command  string
	Platform Platform
}

// Result is the outcome of resolving one key event.
type Result struct {
	// Command is the bound command name when Kind is ResolvedCommand.
	Command string

	// Rune is the literal character when Kind is ResolvedLiteral.
	Rune rune

	Kind ResultKind
}

// ResultKind classifies a resolution outcome.
type ResultKind uint8

const (
	// ResolvedUnhandled means no binding matched and the event
	// produces no printable character. Not an error.
	ResolvedUnhandled ResultKind = iota

	// ResolvedCommand means a binding matched.
	ResolvedCommand

	// ResolvedLiteral means no binding matched but the event is a
	// printable character to insert.
	ResolvedLiteral
)

// Unhandled reports whether the event matched nothing.
func (r Result) Unhandled() bool {
	return r.Kind == ResolvedUnhandled
}
