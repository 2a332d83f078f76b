package main

/*
Copyright © 2025 coyksdev
*/

import "github.com/coyksdev/create-rn-app/cmd"

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cmd.SetVersionInfo(version, commit)
	cmd.Execute()
}
