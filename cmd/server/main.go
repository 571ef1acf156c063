package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"snakes-ladders-backend/internal/board"
	"snakes-ladders-backend/internal/config"
	"snakes-ladders-backend/internal/engine"
	"snakes-ladders-backend/internal/httpapi"
	"snakes-ladders-backend/internal/question"
	"snakes-ladders-backend/internal/session"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	eng := engine.New(board.Generate(), question.DefaultBank())
	sess := session.New(ctx, eng, logger, session.DefaultAnimStep)

	// Build the router *with* the session injected
	handler := httpapi.SetupRoutes(sess, logger)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
