package main

import "github.com/bascanada/firebase-logs-mcp/cmd"

func main() {
	cmd.Execute()
}
