package main

import "github.com/quantww/secscan-cli/cmd"

func main() {
	cmd.Execute()
}
