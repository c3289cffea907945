package server

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/staffql/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUploader_DisabledIsNilInterface(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()

	u, err := newUploader(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, u == nil, "expected untyped nil uploader")
}

func TestNewApp_DBError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })

	openDB = func(context.Context, string) (*sql.DB, error) {
		return nil, errors.New("connection refused")
	}

	c := &config.Config{}
	c.LoadDefaults()
	c.SecretKey = "k"

	app, err := NewApp(context.Background(), c, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "db init error")
}
