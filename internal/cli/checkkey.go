package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/spf13/cobra"
)

// check-key verifies the configured credential by listing models, without
// spending completion tokens.
func newCheckKeyCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check-key",
		Short: "Verify the configured completion API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			key := strings.TrimSpace(cfg.OpenAIAPIKey)
			if key == "" {
				return fmt.Errorf("OPENAI_API_KEY is not set")
			}
			logger.Info("checking api key", "key_len", len(key))

			opts := []option.RequestOption{option.WithAPIKey(key)}
			if base := strings.TrimSpace(cfg.LLMBaseURL); base != "" {
				opts = append(opts, option.WithBaseURL(base))
			}
			client := openai.NewClient(opts...)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			page, err := client.Models.List(ctx)
			if err != nil {
				return fmt.Errorf("key check failed: %w", err)
			}

			cmd.Printf("key OK, %d models visible\n", len(page.Data))
			return nil
		},
	}
}
