// Package main is the entry point for the day-zero application
package main

import (
	"day-zero/cmd"
)

func main() {
	cmd.Execute()
}
