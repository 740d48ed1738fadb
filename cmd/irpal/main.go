package main

import "github.com/akita-international-university/ir-color-guide/internal/cli"

func main() {
	cli.Execute()
}
