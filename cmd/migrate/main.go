package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/titanlift/internal/config"
	"github.com/2beens/titanlift/internal/db"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	timeout := flag.Duration("timeout", 2*time.Minute, "migration timeout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: migrate [flags] up | down | status | version | redo | reset\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	dbParams := db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("TITANLIFT_DB_PASSWORD"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	command := flag.Arg(0)
	log.Printf("running migrations [%s] against %s:%s/%s", command, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName)
	if err := db.Migrate(ctx, dbParams.ConnString(), command, flag.Args()[1:]...); err != nil {
		log.Fatalf("migrate %s: %s", command, err)
	}
	log.Println("done")
}
