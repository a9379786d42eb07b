package main

import (
	"fmt"
	"os"

	"github.com/scopescript-go/scopescript/cmd/scopescript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
