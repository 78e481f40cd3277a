package main

import "github.com/deploymenttheory/go-apfsck/cmd"

func main() {
	cmd.Execute()
}
