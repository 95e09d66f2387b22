package main

import (
	"os"

	"github.com/cryptofernet/fernet-go/cmd/fernet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
