package main

import "fentc/cmd"

func main() {
	cmd.Execute()
}
