package shaders

import _ "embed"

// WashSource is a two-stop radial gradient filling the destination rect.
//
//go:embed wash.kage
var WashSource []byte
