package main

import "github.com/mouse-blink/fretmap/cmd"

func main() {
	cmd.Execute()
}
