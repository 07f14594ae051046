package main

import "github.com/nanambeah/MedPrep-Ghana/internal/cli"

func main() {
	cli.Execute()
}
