package main

import "github.com/Alijeyrad/optima_web/cmd"

func main() {
	cmd.Execute()
}
