package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Thep1rince/oclaria-chatbot/internal/app"
	"github.com/Thep1rince/oclaria-chatbot/internal/config"
)

const version = "0.1.0"

func NewRoot(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "oclaria-chatbot",
		Short: "Oclaria chatbot is a sales-assistant backend for oclaria.com",
	}

	root.AddCommand(newServeCommand(logger))
	root.AddCommand(newChatCommand())
	root.AddCommand(newCheckKeyCommand(logger))
	root.AddCommand(newVersionCommand())

	return root
}

func newServeCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the chat HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			runtime := app.New(cfg, logger)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return runtime.Run(ctx)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}
}

// loadConfig reads .env first (if present) so the original deployment's
// dotenv files keep working, then builds the config from the environment.
func loadConfig() config.Config {
	_ = godotenv.Load()
	return config.FromEnv()
}
