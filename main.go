package main

import "github.com/nwave-fx/fxpipe/cmd"

func main() {
	cmd.Execute()
}
