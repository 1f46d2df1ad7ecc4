package main

import "commerce-linker/cmd"

func main() {
	cmd.Execute()
}
