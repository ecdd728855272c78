package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/catcurious/catcurious/internal/admincli"
	"github.com/catcurious/catcurious/internal/buildinfo"
	"github.com/catcurious/catcurious/internal/server/config"
)

// command returns the first argument that is not a flag or a flag value.
func command(args []string) string {
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			if !strings.Contains(args[i], "=") {
				i++
			}
			continue
		}
		return args[i]
	}
	return ""
}

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := admincli.NewApp(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx, command(os.Args[1:])); err != nil {
		log.Fatalf("%v", err)
	}
}
