package main

import "verdex/cmd"

func main() {
	cmd.Execute()
}
