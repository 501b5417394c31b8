package main

import "github.com/forPelevin/clipmine/internal/cli"

func main() { cli.Main() }
