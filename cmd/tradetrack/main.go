package main

import (
	"os"

	"github.com/how0531/TradeTrack-1-sub000/cmd/tradetrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
