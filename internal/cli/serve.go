package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/sbcohen2000/raggedblocks/pkg/httpapi"
	"github.com/sbcohen2000/raggedblocks/pkg/store"
)

// serveCommand creates the serve command, starting the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noCache   bool
		mongoURI  string
		mongoDB   string
		mongoColl string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API, exposing POST /v1/layout, POST /v1/render,
GET /v1/history, and GET /healthz.

Without --mongo-uri, history is a no-op: /v1/history always returns an
empty list and rendered SVGs are not persisted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache, mongoURI, mongoDB, mongoColl)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection URI for the history store (disabled if empty)")
	cmd.Flags().StringVar(&mongoDB, "mongo-database", "raggedblocks", "MongoDB database name for the history store")
	cmd.Flags().StringVar(&mongoColl, "mongo-collection", "renders", "MongoDB collection name for the history store")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool, mongoURI, mongoDB, mongoColl string) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var st store.Store = store.NewNullStore()
	if mongoURI != "" {
		ms, err := store.NewMongoStore(ctx, mongoURI, mongoDB, mongoColl)
		if err != nil {
			return fmt.Errorf("connect to history store: %w", err)
		}
		defer ms.Close(ctx)
		st = ms
	}

	srv := httpapi.NewServer(runner, st)
	c.Logger.Infof("Listening on %s", addr)

	httpSrv := &http.Server{Addr: addr, Handler: srv}
	go func() {
		<-ctx.Done()
		_ = httpSrv.Close()
	}()

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
