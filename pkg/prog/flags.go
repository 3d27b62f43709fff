package prog

import "flag"

// FlagSet wraps a [flag.FlagSet] and provides flags shared by more than one
// subprogram. Each shared flag is registered the first time its accessor is
// called, and the same pointer is returned on subsequent calls.
type FlagSet struct {
	*flag.FlagSet
	json    *bool
	lenient *bool
}

// JSON returns a pointer to the value of the -json flag.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output from -buildinfo, -version or -c in JSON")
		fs.json = &json
	}
	return fs.json
}

// Lenient returns a pointer to the value of the -lenient flag.
func (fs *FlagSet) Lenient() *bool {
	if fs.lenient == nil {
		var lenient bool
		fs.BoolVar(&lenient, "lenient", false,
			"tolerate unbalanced parentheses instead of reporting an error")
		fs.lenient = &lenient
	}
	return fs.lenient
}
