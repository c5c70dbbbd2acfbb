package infra

import (
	"context"
	"testing"
	"time"

	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/common/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectNATS_GivesUpAfterAttempts(t *testing.T) {
	cfg := config.NatsConfig{
		URL:              "nats://127.0.0.1:1",
		ConnectAttempts:  2,
		ConnectRetryWait: 10 * time.Millisecond,
	}

	nc, err := ConnectNATS(context.Background(), cfg, constant.EnvDevelopment)
	require.Error(t, err)
	assert.Nil(t, nc)
	assert.Contains(t, err.Error(), "failed after 2 attempts")
}

func TestConnectNATS_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := config.NatsConfig{
		URL:              "nats://127.0.0.1:1",
		ConnectAttempts:  5,
		ConnectRetryWait: time.Hour,
	}

	_, err := ConnectNATS(ctx, cfg, constant.EnvDevelopment)
	assert.ErrorIs(t, err, context.Canceled)
}
