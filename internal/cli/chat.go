package cli

import (
	"bufio"
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Thep1rince/oclaria-chatbot/internal/apiclient"
	"github.com/Thep1rince/oclaria-chatbot/internal/llm"
)

// clientHistoryLimit bounds the rolling history the CLI keeps; the server
// trims further before forwarding to the model.
const clientHistoryLimit = 8

func newChatCommand() *cobra.Command {
	var timeoutSec int

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to a running chatbot server",
		Long:  "Send one message, or start an interactive session when no message is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			client := apiclient.New(cfg.APIURL, boundedTimeout(timeoutSec))

			if text := strings.TrimSpace(strings.Join(args, " ")); text != "" {
				ctx, cancel := context.WithTimeout(cmd.Context(), boundedTimeout(timeoutSec))
				defer cancel()
				reply, err := client.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: text}})
				if err != nil {
					return err
				}
				cmd.Println(reply.Content)
				return nil
			}

			return runInteractive(cmd, client, boundedTimeout(timeoutSec))
		},
	}

	cmd.Flags().IntVar(&timeoutSec, "timeout", 60, "per-request timeout in seconds")
	return cmd
}

func runInteractive(cmd *cobra.Command, client *apiclient.Client, timeout time.Duration) error {
	cmd.Println("Connected. Type a message, or /quit to leave.")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	history := []llm.Message{}

	for {
		cmd.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "/quit" || text == "/exit" {
			return nil
		}

		history = append(history, llm.Message{Role: llm.RoleUser, Content: text})
		if len(history) > clientHistoryLimit {
			history = history[len(history)-clientHistoryLimit:]
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		reply, err := client.Chat(ctx, history)
		cancel()
		if err != nil {
			cmd.PrintErrln("error:", err)
			continue
		}

		cmd.Println(reply.Content)
		history = append(history, reply)
	}
}

func boundedTimeout(seconds int) time.Duration {
	if seconds < 1 {
		seconds = 60
	}
	if seconds > 600 {
		seconds = 600
	}
	return time.Duration(seconds) * time.Second
}
