// Command navctl reads the company site and administers its content from
// the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zaqqye/navodaya_web/internal/cmd/navctl"
)

func main() {
	_ = godotenv.Load()

	cfg, err := navctl.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		if errors.Is(err, navctl.ErrUsage) {
			flag.CommandLine.Usage()
		}
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[NAVCTL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := navctl.Run(ctx, cfg, os.Stdout, log.New(os.Stderr, "[NAVCTL] ", log.LstdFlags)); err != nil {
		if errors.Is(err, navctl.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			flag.CommandLine.Usage()
			os.Exit(2)
		}
		log.Fatalf("%s: %v", cfg.Command, err)
	}
}
