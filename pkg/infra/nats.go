package infra

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/common/constant"
	"github.com/fystack/caaj-indexer/pkg/common/logger"
	"github.com/fystack/caaj-indexer/pkg/retry"
	"github.com/nats-io/nats.go"
)

// ConnectNATS dials NATS, retrying the initial connection
// natsConfig.ConnectAttempts times, natsConfig.ConnectRetryWait apart.
// Zero values fall back to retry.DefaultMaxAttempts and retry.DefaultInterval.
func ConnectNATS(ctx context.Context, natsConfig config.NatsConfig, environment string) (*nats.Conn, error) {
	attempts := natsConfig.ConnectAttempts
	if attempts <= 0 {
		attempts = retry.DefaultMaxAttempts
	}
	wait := natsConfig.ConnectRetryWait
	if wait <= 0 {
		wait = retry.DefaultInterval
	}

	var nc *nats.Conn
	err := retry.Constant(ctx, func() error {
		conn, err := GetNATSConnection(natsConfig, environment)
		if err != nil {
			logger.Warn("NATS connect failed", "url", natsConfig.URL, "err", err)
			return err
		}
		nc = conn
		return nil
	}, wait, attempts)
	if err != nil {
		return nil, err
	}
	return nc, nil
}

// GetNATSConnection dials NATS. Production requires mutual TLS; other
// environments connect in plain text and default to nats.DefaultURL.
func GetNATSConnection(natsConfig config.NatsConfig, environment string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("caaj-indexer"),
		nats.MaxReconnects(-1), // retry forever
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("Disconnected from NATS", "err", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
		nats.ErrorHandler(NatsErrHandler),
	}

	natsURL := natsConfig.URL
	if environment != constant.EnvProduction {
		if natsURL == "" {
			natsURL = nats.DefaultURL
		}
		if natsConfig.Username != "" {
			opts = append(opts, nats.UserInfo(natsConfig.Username, natsConfig.Password))
		}
		return nats.Connect(natsURL, opts...)
	}

	clientCert := natsConfig.TLS.ClientCert
	clientKey := natsConfig.TLS.ClientKey
	caCert := natsConfig.TLS.CACert

	if clientCert == "" {
		clientCert = filepath.Join(".", "certs", "client-cert.pem")
	}
	if clientKey == "" {
		clientKey = filepath.Join(".", "certs", "client-key.pem")
	}
	if caCert == "" {
		caCert = filepath.Join(".", "certs", "rootCA.pem")
	}

	opts = append(opts,
		nats.ClientCert(clientCert, clientKey),
		nats.RootCAs(caCert),
		nats.UserInfo(natsConfig.Username, natsConfig.Password),
	)
	return nats.Connect(natsURL, opts...)
}

func NatsErrHandler(nc *nats.Conn, sub *nats.Subscription, natsErr error) {
	logger.Error("NATS error", "err", natsErr)
	if natsErr == nats.ErrSlowConsumer && sub != nil {
		pendingMsgs, _, err := sub.Pending()
		if err != nil {
			logger.Error("Error getting pending messages", "err", err)
			return
		}
		logger.Error("Falling behind with pending messages on subject", "pending", pendingMsgs, "subject", sub.Subject)
	}
}
