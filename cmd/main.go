package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flow-launcher/helloworld-go/internal/interfaces/cli"
	"github.com/flow-launcher/helloworld-go/internal/interfaces/di"
)

func main() {
	container, err := di.NewContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize plugin: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer container.Shutdown(ctx)

	cli.Execute(ctx, container.GetCLIContainer())
}
