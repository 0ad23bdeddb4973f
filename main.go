package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"rocketfood/configs"
	"rocketfood/middlewares"
	"rocketfood/pkg/rabbitmq"
	"rocketfood/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.Open(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedStatuses(db); err != nil {
		log.Fatalf("seed statuses failed: %v", err)
	}

	// Event publisher, optional
	var events *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		events, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("connect rabbitmq failed: %v", err)
		}
		defer events.Close()
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, events)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
