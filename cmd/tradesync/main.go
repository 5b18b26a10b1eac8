package main

import "github.com/ananidze/tradesync/cmd/tradesync/cmd"

func main() {
	cmd.Execute()
}
