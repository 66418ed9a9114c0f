package main

import (
	"context"
	"log"
	"os"

	"github.com/akozlovs/bizkeeper/internal/buildinfo"
	"github.com/akozlovs/bizkeeper/internal/client/cli"
	"github.com/akozlovs/bizkeeper/internal/client/config"
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
