package main

import "github.com/youruser/outfitapp/internal/cli"

func main() {
	cli.Execute()
}
