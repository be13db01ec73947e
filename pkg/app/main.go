package app

import (
	"github.com/gorilla/sessions"

	"github.com/baustelle-app/lager/pkg/config"
	"github.com/baustelle-app/lager/pkg/database"
	"github.com/baustelle-app/lager/pkg/events"
	"github.com/baustelle-app/lager/pkg/kvstore"
	"github.com/baustelle-app/lager/pkg/logger"
	"github.com/baustelle-app/lager/pkg/workflows"
)

// Application holds shared infrastructure for every bounded context. It is
// built once in cmd/api or cmd/worker and passed to each context's
// service container and route registration.
//
// app.Logger is trace-aware; inside request or message handling use the
// context methods so trace_id, span_id and request_id are attached:
//
//	app.Logger.InfoContext(ctx, "transaction recorded", "transaction_id", id)
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *kvstore.RedisClient
	TemporalClient *workflows.TemporalClient // nil unless TEMPORAL_ENABLED
	SessionStore   sessions.Store            // nil in the worker process
}
