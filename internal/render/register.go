package render

func init() {
	// The first registered renderer is the default format.
	Register(Highlight{})
	Register(Caret{})
	Register(Patch{})
	Register(JSON{})
}
