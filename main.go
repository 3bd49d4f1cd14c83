// Copyright © 2026 The linefold authors

package main

import "github.com/linefold/linefold/cmd"

func main() {
	cmd.Execute()
}
