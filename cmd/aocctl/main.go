package main

import "go.advent.dev/aoc2022/cmd/aocctl/aocctlcmd"

func main() {
	aocctlcmd.Execute()
}
