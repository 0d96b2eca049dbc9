package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"folio/internal/client/admin"

	"github.com/pkg/errors"
)

const remoteTimeout = 5 * time.Minute

var lookupEnv = os.Getenv

type remote struct {
	client *admin.Client
}

// runRemote logs in against the API, runs call and always revokes the session afterwards.
func runRemote(ctx context.Context, baseURL string, call func(context.Context, *remote) (any, error)) error {
	password, err := readPassword(os.Stdin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	r := &remote{client: admin.New(baseURL, admin.Options{Logger: logger})}

	if err := r.client.Login(ctx, password); err != nil {
		return errors.Wrap(err, "login failed")
	}
	defer func() {
		if err := r.client.Logout(context.Background()); err != nil {
			logger.Warn("Failed to revoke session", slog.Any("error", err))
		}
	}()

	out, err := call(ctx, r)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return errors.Wrap(encoder.Encode(out), "failed to print result")
}
