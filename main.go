package main

import "github.com/wh3lua/cmd"

func main() {
	cmd.Execute()
}
