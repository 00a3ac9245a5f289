package main

import (
	"context"
	"log"
	"os"

	"github.com/sam-ezra/todo/internal/buildinfo"
	"github.com/sam-ezra/todo/internal/client/cli"
	"github.com/sam-ezra/todo/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
