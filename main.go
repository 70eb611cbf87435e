package main

import "promptvault/cmd"

func main() {
	cmd.Execute()
}
