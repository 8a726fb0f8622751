package main

import "github.com/blocklaunch/blocklaunch/internal/cli"

func main() {
	cli.Execute()
}
