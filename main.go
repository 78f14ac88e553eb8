package main

import "github.com/alexiusacademia/mechcalc/cmd"

func main() {
	cmd.Execute()
}
