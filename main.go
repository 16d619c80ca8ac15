package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nigeshu/YoutubeSangam/analytics"
	"github.com/nigeshu/YoutubeSangam/client"
	"github.com/nigeshu/YoutubeSangam/config"
	"github.com/nigeshu/YoutubeSangam/server"
	"github.com/nigeshu/YoutubeSangam/store"
	"github.com/nigeshu/YoutubeSangam/youtube"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sangam",
		Short: "YouTube channel analytics dashboard",
	}
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newAnalyzeCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analytics HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			setupLogging(cfg.LogLevel)

			ctx := cmd.Context()

			channels, err := client.NewYouTubeDataClient(cfg.YouTubeAPIKey)
			if err != nil {
				return err
			}
			if err := channels.Connect(ctx); err != nil {
				return err
			}
			defer channels.Disconnect(context.Background())

			var games client.GameSearchClient
			if cfg.RawgAPIKey != "" {
				rawg, err := client.NewRawgClient(cfg.RawgAPIKey)
				if err != nil {
					return err
				}
				games = rawg
			} else {
				log.Warn().Msg("RAWG API key not set, game search disabled")
			}

			var documents store.DocumentStore
			switch cfg.StoreBackend {
			case "dapr":
				documents, err = store.NewDaprDocumentStore(cfg.DaprStateStore)
				if err != nil {
					return fmt.Errorf("failed to create Dapr document store: %w", err)
				}
			default:
				documents = store.NewMemoryDocumentStore()
				log.Info().Msg("Using in-memory document store")
			}
			defer documents.Close()

			cache := server.NewSnapshotCache(cfg.RedisURL)

			srv := server.New(cfg, channels, games, documents, cache)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				sig := <-stop
				log.Info().Str("signal", sig.String()).Msg("Shutting down")
				if err := srv.Shutdown(); err != nil {
					log.Error().Err(err).Msg("Shutdown failed")
				}
			}()

			return srv.Listen()
		},
	}
}

func newAnalyzeCommand() *cobra.Command {
	var channelURL string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fetch one channel and print its statistics as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.YouTubeAPIKey == "" {
				return fmt.Errorf("youtube_api_key is required")
			}

			setupLogging(cfg.LogLevel)

			identifier, err := youtube.ResolveChannelIdentifier(channelURL)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			channels, err := client.NewYouTubeDataClient(cfg.YouTubeAPIKey)
			if err != nil {
				return err
			}
			if err := channels.Connect(ctx); err != nil {
				return err
			}
			defer channels.Disconnect(context.Background())

			snapshot, err := channels.FetchChannelData(ctx, identifier)
			if err != nil {
				return err
			}

			report := struct {
				Channel any `json:"channel"`
				Stats   any `json:"stats"`
			}{
				Channel: snapshot.Channel,
				Stats:   analytics.Compute(snapshot.Videos),
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		},
	}

	cmd.Flags().StringVar(&channelURL, "url", "", "Channel URL or handle to analyze")
	cmd.MarkFlagRequired("url")

	return cmd
}
