package main

import "github.com/ivlev/maya2harmony/cmd/maya2harmony/cmd"

func main() {
	cmd.Execute()
}
