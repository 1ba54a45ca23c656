package tetris_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// ExampleEngine drops two O pieces and steps gravity once.
func ExampleEngine() {
	engine, err := tetris.NewEngine(tetris.DefaultConfig(), &tetris.Factory{
		Kinds: tetris.NewSequenceRandomizer(tetris.KindO),
	})
	if err != nil {
		panic(err)
	}
	engine.OnLock(func(p tetris.Piece) {
		fmt.Printf("locked %s at x=%d y=%d\n", p.Kind, p.X, p.Y)
	})

	engine.Start()
	engine.Tick(0)
	engine.HardDrop()
	engine.MoveHorizontal(-1)
	engine.HardDrop()

	engine.Tick(800 * time.Millisecond)
	cur, _ := engine.Current()
	fmt.Println("current y:", cur.Y)
	fmt.Println("filled:", engine.Board().Filled())

	// Output:
	// locked O at x=4 y=18
	// locked O at x=3 y=16
	// current y: 1
	// filled: 8
}
