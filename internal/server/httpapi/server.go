// Package httpapi serves the GraphQL endpoint, the GraphiQL console and the
// operational endpoints over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/staffql/internal/logging"
	"github.com/dmitrijs2005/staffql/internal/server/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBodyBytes caps request bodies; photos travel inline as data URIs.
const MaxBodyBytes = 10 << 20

const (
	serviceName     = "Employee Management API"
	shutdownTimeout = 5 * time.Second
)

// Authenticator resolves a bearer token to the caller, or nil.
// It is implemented by services.AccountService.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) *auth.Identity
}

type HTTPServer struct {
	address  string
	logger   logging.Logger
	schema   *graphql.Schema
	gatherer prometheus.Gatherer
	authn    Authenticator
}

// NewHTTPServer builds the server. A nil gatherer disables /metrics and a
// nil authenticator leaves every request anonymous.
func NewHTTPServer(a string, l logging.Logger, schema *graphql.Schema, g prometheus.Gatherer, authn Authenticator) *HTTPServer {
	return &HTTPServer{
		address:  a,
		logger:   l.With("module", "http_server"),
		schema:   schema,
		gatherer: g,
		authn:    authn,
	}
}

// Router returns the gin engine with all routes and middleware attached.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(bodyLimit(MaxBodyBytes))
	r.Use(bearerIdentity(s.authn))
	r.Use(requestLogger(s.logger))

	r.GET("/", graphiql)
	r.GET("/health", health)
	r.POST("/graphql", gin.WrapH(&relay.Handler{Schema: s.schema}))

	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
}
