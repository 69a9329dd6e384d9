package main

import (
	"context"
	"log"

	"github.com/microcommerce/shipping-service/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("shipping API failed: %v", err)
	}
}
