package diagfmt

// PrettyOpts controls the human-readable diagnostic format.
type PrettyOpts struct {
	// Color enables ANSI styling.
	Color bool
	// Context is the number of source lines printed around the primary
	// position.
	Context int
}
