package main

import "github.com/22kromerky/agdash/cmd"

func main() {
	cmd.Execute()
}
