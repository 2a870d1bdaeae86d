package channel_test

import (
	"fmt"

	"github.com/blackjack3d/meshkit/channel"
)

// ExampleGroup demonstrates writing a value into a float32 channel
// keyed by int, releasing the write lease, then reading it back.
func ExampleGroup() {
	g := channel.NewGroup[int, float32]()
	id := g.Ensure("weight", 1)

	w, err := g.Write(id)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	w.Set(0, 5)
	w.Release()

	r, err := g.Read(id)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Release()
	fmt.Println(r.Get(0))

	// Output:
	// 5
}
