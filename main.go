package main

import "github.com/chriserin/worldgen/cmd"

func main() {
	cmd.Execute()
}
