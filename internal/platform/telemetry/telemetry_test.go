package telemetry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown := Setup(context.Background(), "officeflow-test", "", false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
