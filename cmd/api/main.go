package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/ahmed-advisor/advisor-backend/config"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/chat"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/flow"
	advisorhttp "github.com/ahmed-advisor/advisor-backend/internal/advisor/http"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/planner"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/projects/repository"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/provider"
	"github.com/ahmed-advisor/advisor-backend/internal/advisor/speech"
	"github.com/ahmed-advisor/advisor-backend/internal/bootstrap"
)

const serviceName = "advisor-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	store := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := store.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: redis not reachable at startup: %v", err)
	}

	gemini, err := provider.NewGemini(ctx, cfg.Gemini)
	if err != nil {
		log.Fatalf("init provider: %v", err)
	}
	if cfg.Gemini.APIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, plan/chat/speech requests will fail")
	}

	projectRepo := repository.New(store, cfg.Redis.ProjectsKey)
	planSvc := planner.NewService(gemini)
	chatSvc := chat.NewService(gemini)
	synth := speech.NewSynthesizer(gemini)

	sessions := flow.NewStore()
	flowSvc := flow.NewService(sessions, planSvc, projectRepo)

	sweeper := flow.NewSweeper(sessions, cfg.App.SessionTTL)
	sweeper.Start()
	defer sweeper.Stop()

	handler := advisorhttp.New(flowSvc, chatSvc, synth, projectRepo)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Config:      cfg,
		Store:       store,
		Advisor:     handler,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
