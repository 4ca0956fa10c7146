package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devsquadbr/crm-template/internal/config"
	dbpkg "github.com/devsquadbr/crm-template/internal/db"
	infraRepo "github.com/devsquadbr/crm-template/internal/infra/repository"
	"github.com/devsquadbr/crm-template/internal/mailer"
	"github.com/devsquadbr/crm-template/internal/mailqueue"
	"github.com/devsquadbr/crm-template/internal/middleware"
	"github.com/devsquadbr/crm-template/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	queue, err := mailqueue.NewRedisQueue(cfg.RedisURL, cfg.MailQueue)
	if err != nil {
		log.Fatalf("failed to connect mail queue: %v", err)
	}
	defer queue.Close()

	var provider mailer.Provider
	switch cfg.MailProvider {
	case "smtp2go":
		provider = mailer.NewSMTP2GOProvider()
	default:
		provider = mailer.NewSendGridProvider()
	}

	sender := mailer.NewSettingsSender(infraRepo.NewSettingsGormStore(db), provider)
	worker := mailqueue.NewWorker(queue, sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := worker.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("mail worker stopped: %v", err)
		}
	}()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, queue)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
