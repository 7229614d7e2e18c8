package main

import "github.com/jsphweid/chordex/cmd"

func main() {
	cmd.Execute()
}
