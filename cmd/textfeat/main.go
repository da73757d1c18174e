package main

import "textfeat/internal/cli"

func main() {
	cli.Execute()
}
