package main

import "armory/cmd"

func main() {
	cmd.Execute()
}
