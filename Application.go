package main

import (
	"fmt"
	"os"

	"ContribPong/logger"
)

func main() {
	logger.Log.Init()
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		logger.Log.Fatal(err.Error())
	}
}
