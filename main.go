package main

import "github.com/riftscope/go-lol-replay/cmd"

func main() {
	cmd.Execute()
}
