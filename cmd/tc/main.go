package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"trackcycle/internal/api"
	"trackcycle/internal/cli"
	"trackcycle/internal/config"
)

func main() {
	factory := NewRepositoryFactory(GetEnvironment())
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(api.NewBusinessAPI(repo, cfg), cfg)
	root := cli.NewRootCommand(app)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
