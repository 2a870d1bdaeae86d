package objio_test

import (
	"bytes"
	"fmt"

	"github.com/blackjack3d/meshkit/objio"
	"github.com/blackjack3d/meshkit/ops"
	"github.com/blackjack3d/meshkit/vecmath"
)

// ExampleWrite writes a unit box to Wavefront OBJ text and reads it
// back, reporting the round-tripped face count.
func ExampleWrite() {
	m, err := ops.Box(vecmath.Vec3{0, 0, 0}, vecmath.Vec3{1, 1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var buf bytes.Buffer
	if err := objio.Write(&buf, m); err != nil {
		fmt.Println("error:", err)
		return
	}

	got, err := objio.Read(&buf)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r := got.ReadConnectivity()
	defer r.Release()
	fmt.Println(len(r.Conn().FaceIDs()))

	// Output:
	// 6
}
