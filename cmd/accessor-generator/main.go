// Package main provides the CLI entrypoint for accessor-generator.
//
// accessor-generator reads accessor directives from struct doc comments,
// struct tags and an optional YAML file, and writes getter, setter,
// mutator and clear methods next to the record:
//
//	accessor-generator gen --pkg ./store --type Pet
//	accessor-generator plan --pkg ./store --type Pet --format text
//	accessor-generator check --pkg ./store
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"accessor-generator/internal/cli"
)

var version = "dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("accessor-generator: ")

	_ = godotenv.Load()

	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	runner := cli.NewRunner(os.Stdout, log.Default())
	err = runner.Run(ctx, cfg)
	stop()

	if err != nil {
		log.Fatal(err)
	}
}
