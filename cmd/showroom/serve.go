package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/johnadams78/capstoneproject/internal/config"
	"github.com/johnadams78/capstoneproject/internal/notify"
	"github.com/johnadams78/capstoneproject/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the showroom web server",
		Long:  "Serves the inventory page, the inventory API, and the inquiry intake endpoint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "showroom.yaml", "path to showroom config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	if port <= 0 {
		port = cfg.Server.Port
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	// The digest loop runs alongside the server and stops with it.
	if notifier != nil && cfg.Notify.DigestCron != "" {
		go func() {
			if err := notify.RunDigest(ctx, gormDB, notifier, cfg.Dealer.Name, cfg.Notify.DigestCron); err != nil && err != context.Canceled {
				fmt.Fprintf(cmd.OutOrStdout(), "digest loop stopped: %v\n", err)
			}
		}()
	}

	return web.Start(ctx, web.StartOpts{
		DB:       gormDB,
		Dealer:   cfg.Dealer,
		Notifier: notifier,
		Port:     port,
		Out:      cmd.OutOrStdout(),
	})
}

// buildNotifier assembles the configured notification channels. Returns nil
// when none are configured.
func buildNotifier(cfg *config.Config) (notify.Notifier, error) {
	var channels notify.Multi

	if cfg.SlackEnabled() {
		s, err := notify.NewSlack(notify.SlackOpts{
			Token:     cfg.Notify.Slack.Token,
			ChannelID: cfg.Notify.Slack.Channel,
		})
		if err != nil {
			return nil, err
		}
		channels = append(channels, s)
	}

	if cfg.DiscordEnabled() {
		d, err := notify.NewDiscord(notify.DiscordOpts{
			WebhookID:    cfg.Notify.Discord.WebhookID,
			WebhookToken: cfg.Notify.Discord.WebhookToken,
		})
		if err != nil {
			return nil, err
		}
		channels = append(channels, d)
	}

	if len(channels) == 0 {
		return nil, nil
	}
	return channels, nil
}
