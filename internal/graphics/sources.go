package graphics

import _ "embed"

// GLSL sources are embedded so the binary has no asset directory to lose.

//go:embed shaders/topo.vert
var TopoVertSource string

//go:embed shaders/topo.frag
var TopoFragSource string

//go:embed shaders/font.vert
var FontVertSource string

//go:embed shaders/font.frag
var FontFragSource string
