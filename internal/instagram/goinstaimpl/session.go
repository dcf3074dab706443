package goinstaimpl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Davincible/goinsta/v3"
)

// Login attempts to connect to Instagram, first trying to load from an existing session,
// or logging in with credentials if the session isn't available.
// Callers must hold ig.mu.
func (ig *GoinstaImpl) Login() error {
	if err := ig.ReloadSession(); err == nil {
		if ig.validateSession() {
			ig.Logger.Info("Successfully logged in using existing session")
			return nil
		}
		ig.Logger.Warn("Session loaded but appears to be invalid, attempting fresh login")
	}

	ig.Logger.Info("Attempting to log in with credentials")

	client := goinsta.New(ig.Config.Instagram.User, ig.Config.Instagram.Pass)
	if err := client.Login(); err != nil {
		ig.Client = nil
		return fmt.Errorf("failed to log in: %w", err)
	}
	ig.Client = client

	ig.Logger.Info("Successfully logged in with credentials")

	if err := ig.saveSession(); err != nil {
		ig.Logger.Warn("Failed to save Instagram session", "error", err)
	}

	return nil
}

// ReloadSession attempts to load an existing Instagram session
func (ig *GoinstaImpl) ReloadSession() error {
	if _, err := os.Stat(ig.Config.Instagram.SessionPath); os.IsNotExist(err) {
		return fmt.Errorf("session file not found: %w", err)
	}

	client, err := goinsta.Import(ig.Config.Instagram.SessionPath)
	if err != nil {
		return fmt.Errorf("failed to import session: %w", err)
	}

	ig.Client = client
	return nil
}

// validateSession checks if the current Instagram session is valid
func (ig *GoinstaImpl) validateSession() bool {
	if ig.Client == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan bool, 1)

	go func() {
		defer func() {
			// goinsta panics on some malformed session payloads
			if r := recover(); r != nil {
				ig.Logger.Error("Panic in Instagram session validation", "panic", r)
				done <- false
			}
		}()

		done <- ig.Client.Account.Sync() == nil
	}()

	select {
	case valid := <-done:
		return valid
	case <-ctx.Done():
		ig.Logger.Warn("Session validation timed out")
		return false
	}
}

// saveSession exports the current Instagram session to a file
func (ig *GoinstaImpl) saveSession() error {
	if ig.Client == nil {
		return fmt.Errorf("no active Instagram session to save")
	}

	dir := filepath.Dir(ig.Config.Instagram.SessionPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := ig.Client.Export(ig.Config.Instagram.SessionPath); err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}

	ig.Logger.Info("Instagram session saved successfully",
		"path", ig.Config.Instagram.SessionPath)
	return nil
}
