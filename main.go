package main

import "github.com/knakagawa/docmd/cmd"

func main() {
	cmd.Execute()
}
