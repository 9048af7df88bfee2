package main

import "schedbench/cmd"

func main() {
	cmd.Execute()
}
