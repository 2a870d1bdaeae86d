package buffers

import (
	"github.com/blackjack3d/meshkit/mesh"
	"github.com/blackjack3d/meshkit/vecmath"
)

// white is the default debug line/arrow color when no DebugMark is set.
var white = vecmath.Vec3{1, 1, 1}

// unpackRGB unpacks c's 0xRRGGBBAA packing into a 0..1 Vec3, dropping
// alpha.
func unpackRGB(c mesh.DebugColor) vecmath.Vec3 {
	rgb, _ := unpackRGBA(c)
	return rgb
}

// unpackRGBA unpacks c's 0xRRGGBBAA packing into a 0..1 Vec3 plus a
// separate 0..1 alpha.
func unpackRGBA(c mesh.DebugColor) (vecmath.Vec3, float32) {
	r := float32((c>>24)&0xFF) / 255
	g := float32((c>>16)&0xFF) / 255
	b := float32((c>>8)&0xFF) / 255
	a := float32(c&0xFF) / 255
	return vecmath.Vec3{r, g, b}, a
}
