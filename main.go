package main

import "github.com/eyesofbug/VoyageIQ/cmd"

func main() {
	cmd.Execute()
}
