package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbcohen2000/raggedblocks/pkg/store"
)

const historyTimestampLayout = "2006-01-02T15:04:05Z07:00"

// historyCommand creates the history command, listing recently rendered
// layouts from the history store.
func (c *CLI) historyCommand() *cobra.Command {
	var (
		limit     int
		mongoURI  string
		mongoDB   string
		mongoColl string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently rendered layouts",
		Long: `List recently rendered layouts from the history store.

Without --mongo-uri, the history store is a no-op and this command
always prints an empty list, matching the API's GET /v1/history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHistory(cmd.Context(), limit, mongoURI, mongoDB, mongoColl)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of records to list")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection URI for the history store")
	cmd.Flags().StringVar(&mongoDB, "mongo-database", "raggedblocks", "MongoDB database name for the history store")
	cmd.Flags().StringVar(&mongoColl, "mongo-collection", "renders", "MongoDB collection name for the history store")

	return cmd
}

func (c *CLI) runHistory(ctx context.Context, limit int, mongoURI, mongoDB, mongoColl string) error {
	var st store.Store = store.NewNullStore()
	if mongoURI != "" {
		ms, err := store.NewMongoStore(ctx, mongoURI, mongoDB, mongoColl)
		if err != nil {
			return fmt.Errorf("connect to history store: %w", err)
		}
		defer ms.Close(ctx)
		st = ms
	}

	records, err := st.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(records) == 0 {
		printInfo("No history recorded")
		return nil
	}

	for _, rec := range records {
		printKeyValue(rec.Timestamp.Format(historyTimestampLayout), fmt.Sprintf("%s  %s  %s", rec.ID, rec.Algorithm, rec.InputHash))
	}
	return nil
}
