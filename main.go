package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/HosnaJabbari/derna/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
