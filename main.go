package main

import "ship-registry/cmd"

func main() {
	cmd.Execute()
}
