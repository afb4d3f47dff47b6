// Command viewer lists the stored messages of one session.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"chat-screener/domain"
	"chat-screener/internal"
	"chat-screener/repositories"
	"chat-screener/services"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

var (
	limit  int
	offset int
	sender string
)

var rootCmd = &cobra.Command{
	Use:   "viewer <session_id>",
	Short: "List the stored messages of a session",
	Long: `Read one page of a session from the configured store and print it as a table.

The store is selected with the same environment as the server
(STORAGE_DRIVER, DATABASE_URL, BADGER_FILEPATH). A badger store must not be
held open by a running server.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runViewer,
}

func init() {
	rootCmd.Flags().IntVarP(&limit, "limit", "l", services.DefaultLimit, "maximum number of messages")
	rootCmd.Flags().IntVarP(&offset, "offset", "o", 0, "number of messages to skip")
	rootCmd.Flags().StringVarP(&sender, "sender", "s", "", "only messages from this sender (user or system)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runViewer(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	repo, err := repositories.Open(config.Storage(), log)
	if err != nil {
		return fmt.Errorf("storage failed to open: %w", err)
	}
	defer repo.Close()

	query := domain.SessionQuery{SessionID: args[0], Limit: limit, Offset: offset}
	if sender != "" {
		s := domain.Sender(sender)
		query.Sender = &s
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	messages, err := services.NewMessageRetrievalService(log, repo).FindBySession(ctx, query)
	if err != nil {
		return err
	}
	renderMessages(cmd.OutOrStdout(), query.SessionID, messages)
	return nil
}
