package main

import "github.com/aalvaropc/toolbelt/internal/cli"

func main() {
	cli.Execute()
}
