package main

import (
	"os"

	"github.com/adebayo-ak/carechat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
