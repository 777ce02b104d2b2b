// Package main is the single-binary entrypoint for Study Quest.
package main

import "github.com/foxjwjw99-rgb/winnie-study-quest/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
