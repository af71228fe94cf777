package main

import "github.com/gaurav-prasanna/wp2zola/cmd"

func main() {
	cmd.Execute()
}
