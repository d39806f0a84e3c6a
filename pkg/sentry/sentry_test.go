package sentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-news/config"
)

func TestInitWithoutDSN(t *testing.T) {
	flush, err := Init(config.SentryConfig{})
	require.NoError(t, err)
	assert.NotPanics(t, flush)
}

func TestInitBadDSN(t *testing.T) {
	_, err := Init(config.SentryConfig{DSN: "not a dsn"})
	assert.Error(t, err)
}
