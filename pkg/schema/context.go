package schema

// Context is the read-only view passed to custom validators.
type Context struct {
	// Path of the value being checked, dot-joined from the root. Empty at
	// the root.
	Path string

	// Root is the top-level input value.
	Root any

	// Parent is the object or array holding the value, nil at the root.
	Parent any

	Options Options
}
