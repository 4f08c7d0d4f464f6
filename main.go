package main

import "github.com/mouse-blink/tsexpand/cmd"

func main() {
	cmd.Execute()
}
