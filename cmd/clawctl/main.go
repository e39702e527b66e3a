// Package main is the entry point for the clawctl CLI.
package main

import "github.com/openclaw/clawctl/internal/cli"

func main() {
	cli.Execute()
}
