package main

import (
	"fmt"
	"os"

	"github.com/crucial707/codepad/cmd/cli/auth"
	"github.com/crucial707/codepad/cmd/cli/projects"
	"github.com/crucial707/codepad/cmd/cli/root"
)

func main() {
	rootCmd := root.GetRoot()
	auth.InitAuth(rootCmd)
	projects.InitProjects(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
