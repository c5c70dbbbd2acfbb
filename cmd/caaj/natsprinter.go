package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/common/logger"
	"github.com/fystack/caaj-indexer/pkg/infra"
	"github.com/spf13/cobra"
)

func newNatsPrinterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nats-printer",
		Short: "Print journal events published on NATS JetStream",
		RunE:  runNatsPrinter,
	}
	cmd.Flags().String("nats-url", "", "NATS server URL, overrides nats.url")
	cmd.Flags().String("subject", "", "subject filter (<subject_prefix>.> when empty)")
	cmd.Flags().String("consumer", "caaj-printer", "durable consumer name")
	return cmd
}

func runNatsPrinter(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, func(c *config.Config) {
		c.NATS.Enabled = true
		if v, _ := cmd.Flags().GetString("nats-url"); v != "" {
			c.NATS.URL = v
		}
		if c.NATS.URL == "" {
			c.NATS.URL = "nats://127.0.0.1:4222"
		}
		if c.NATS.Stream == "" {
			c.NATS.Stream = "caaj"
		}
		if c.NATS.SubjectPrefix == "" {
			c.NATS.SubjectPrefix = "caaj"
		}
	})
	if err != nil {
		return err
	}

	subject, _ := cmd.Flags().GetString("subject")
	if subject == "" {
		subject = cfg.NATS.SubjectPrefix + ".>"
	}
	consumer, _ := cmd.Flags().GetString("consumer")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	nc, err := infra.ConnectNATS(ctx, cfg.NATS, cfg.Environment)
	if err != nil {
		return fmt.Errorf("connect nats: %w", err)
	}
	defer nc.Close()

	manager, err := infra.NewNATsMessageQueueManager(ctx, cfg.NATS.Stream, []string{cfg.NATS.SubjectPrefix + ".>"}, nc)
	if err != nil {
		return err
	}
	queue, err := manager.NewMessageQueue(ctx, consumer, subject)
	if err != nil {
		return err
	}
	defer queue.Close()

	logger.Info("Subscribed", "stream", cfg.NATS.Stream, "subject", subject, "consumer", consumer)
	err = queue.Dequeue(ctx, func(subject string, message []byte) error {
		fmt.Printf("[%s] %s\n", subject, string(message))
		return nil
	})
	if err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
