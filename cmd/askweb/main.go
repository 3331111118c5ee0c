// Command askweb is a terminal client for the askweb chat service.
package main

import "github.com/diogo/askweb/internal/commands"

func main() {
	commands.Execute()
}
