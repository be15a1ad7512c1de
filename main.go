package main

import (
	"fmt"
	"os"
	"walletview/cmd"
)

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
