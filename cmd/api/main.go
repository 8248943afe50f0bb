package main

import (
	"context"
	"log"

	"github.com/OleksandIadvigun/drugstore/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("drugstore api exited: %v", err)
	}
}
