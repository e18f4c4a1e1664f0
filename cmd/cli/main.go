package main

import "vpsup/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
