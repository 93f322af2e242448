package main

import "github.com/cyberempirex/installguard/cmd/installguard"

func main() { installguard.Execute() }
