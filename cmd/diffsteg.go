package main

import (
	"diffsteg/internal/cli"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	profilers := &cli.Profilers{}

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	go func() {
		<-c
		if err := profilers.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing profiles: %v\n", err)
		}
		os.Exit(0)
	}()

	if err := cli.RootCommand(profilers).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = profilers.Stop()
		os.Exit(1)
	}
}
