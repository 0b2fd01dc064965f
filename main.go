package main

import "github.com/pinwin/pinwin/cmd"

func main() {
	cmd.Execute()
}
