package main

import (
	"github.com/chippy-vm/chippy/cmd"
	"github.com/faiface/pixel/pixelgl"
)

func main() {
	// pixelgl needs access to the main thread, so the whole CLI runs
	// inside it.
	pixelgl.Run(cmd.Execute)
}
