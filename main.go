package main

import "github.com/papapumpkin/astrostay/cmd"

func main() {
	cmd.Execute()
}
