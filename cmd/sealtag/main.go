package main

import (
	"fmt"
	"os"

	_ "github.com/wansing/sealtag/countdown"
	_ "github.com/wansing/sealtag/details"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
