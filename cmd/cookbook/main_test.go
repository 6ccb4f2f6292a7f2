package main

import (
	nethttp "net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsFatalServeError(t *testing.T) {
	assert.False(t, isFatalServeError(nil))

	// Graceful shutdown surfaces ErrServerClosed, wrapped by the delivery.
	assert.False(t, isFatalServeError(nethttp.ErrServerClosed))
	assert.False(t, isFatalServeError(errors.Wrap(nethttp.ErrServerClosed, "failed to serve http")))

	assert.True(t, isFatalServeError(errors.New("listen tcp :5000: address already in use")))
}
