// Package server provides the HTTP server for the tutorials-service.
//
// The server uses the Gin web framework and supports two modes of operation:
// development (gin debug mode) and production (gin release mode).
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  RequestID (X-Request-Id propagation)                   │  │
//	│  │  Logger (request/response logging)                      │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /actuator/health              Router (/api)                  │
//	│  ┌──────────────────┐  ┌─────────────────────────────────┐    │
//	│  │ Liveness status  │  │ Handlers (registered via        │    │
//	│  │ UP / DOWN        │  │ callback), optional JWT auth    │    │
//	│  └──────────────────┘  └─────────────────────────────────┘    │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Lifecycle
//
// Creation:
//
//	srv, err := server.NewServer(cfg, db.PingContext, func(router *gin.RouterGroup) {
//	    handlers.RegisterRoutes(router, handler)
//	})
//
// The registerHandlerFn callback receives a RouterGroup prefixed with /api.
// The HealthFunc backs /actuator/health: a nil error renders
// {"status":"UP"}, anything else renders 503 {"status":"DOWN"}.
//
// Starting:
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
// Stopping:
//
//	srv.Stop(ctx)
//
// Performs graceful shutdown, waiting for in-flight requests to complete.
//
// # Middleware
//
// Logger Middleware (middlewares.Logger):
//   - Logs request start: method, path, query, IP, user-agent, request id
//   - Logs request end: all above + status code, latency
//   - Errors logged separately if present
//   - Uses zap structured logging with "http" logger name
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
//
// Auth Middleware (middlewares.Auth, only when auth.enabled):
//   - Validates HMAC-signed bearer tokens on every /api route
//   - Rejects missing or invalid tokens with 401
package server
