package main

import "lintnav/cmd"

func main() {
	cmd.Execute()
}
