// Package main is the entry point for the dreamsort CLI.
package main

import "dreamsort.dev/pkg/dreamsort/cmd"

func main() {
	cmd.Execute()
}
