package main

import "github.com/presencekit/gridlock/cmd/gridlock/internal"

func main() {
	internal.Execute()
}
