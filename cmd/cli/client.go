package main

import (
	"context"
	"fmt"
	"io"

	"pr-notes/config"
	"pr-notes/internal/note"
	"pr-notes/internal/note/repository"
	"pr-notes/internal/note/repository/notestore"
	"pr-notes/internal/note/usecase"
	"pr-notes/pkg/log"
)

// client is the session a single command runs in.
type client struct {
	uc  note.UseCase
	sid string
	l   log.Logger
}

// openClient loads the configuration, applies the flag overrides and opens a session.
// The session fails to open when the token is rejected by the profile endpoint.
func openClient(ctx context.Context) (*client, error) {
	var opts []config.Option
	if storeURL != "" {
		opts = append(opts, config.WithOverride("note_store.url", storeURL))
	}
	if token != "" {
		opts = append(opts, config.WithOverride("note_store.access_token", token))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})

	storeCfg := notestore.Config{
		BaseURL:         cfg.NoteStore.URL,
		AccessToken:     cfg.NoteStore.AccessToken,
		Timeout:         cfg.NoteStore.Timeout,
		RateLimitPerSec: cfg.NoteStore.RateLimitPerSec,
		RateBurst:       cfg.NoteStore.RateBurst,
	}
	newRepo := func(accessToken string) repository.Repository {
		c := storeCfg
		if accessToken != "" {
			c.AccessToken = accessToken
		}
		return notestore.New(notestore.NewClient(c), l)
	}

	uc := usecase.New(l, newRepo, usecase.Config{
		MaxSessions:     1,
		SessionTTL:      cfg.Session.TTL,
		DefaultPageSize: cfg.Collection.DefaultPageSize,
	})

	sess, err := uc.OpenSession(ctx, note.OpenSessionInput{AccessToken: storeCfg.AccessToken})
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	l.Debugf(ctx, "cli.openClient: session %s opened for %s", sess.ID, sess.Identity.Email)

	return &client{uc: uc, sid: sess.ID, l: l}, nil
}

// close prints the pending notifications to w and ends the session.
func (c *client) close(ctx context.Context, w io.Writer) {
	msgs, err := c.uc.Notifications(ctx, c.sid)
	if err == nil {
		for _, m := range msgs {
			fmt.Fprintf(w, "%s: %s\n", m.Kind, m.Text)
		}
	}
	if err := c.uc.CloseSession(ctx, c.sid); err != nil {
		c.l.Debugf(ctx, "cli.close: %v", err)
	}
}
