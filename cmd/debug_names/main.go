package main

import (
	"bufio"
	"fmt"
	"os"

	"ship-registry/feature/fleet/decode"
	"ship-registry/feature/fleet/names"
)

// Prints the base name and stage of every display name given as argument,
// or read line by line from stdin when there are none.
func main() {
	input := os.Args[1:]
	if len(input) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			input = append(input, scanner.Text())
		}
	}

	failed := 0
	for _, raw := range input {
		name := decode.Name(raw)
		if name == "" {
			continue
		}
		stage, err := names.Stage(name)
		if err != nil {
			failed++
			fmt.Printf("%s\t%s\t⚠️  %v\n", name, names.BaseName(name), err)
			continue
		}
		fmt.Printf("%s\t%s\t%d\n", name, names.BaseName(name), stage)
	}

	if failed > 0 {
		fmt.Printf("\n%d names with an unrecognized stage suffix\n", failed)
		os.Exit(1)
	}
}
