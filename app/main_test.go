package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VernerAnton/shade/app/enum"
	"github.com/VernerAnton/shade/app/theme"
)

func TestMain_Run(t *testing.T) {
	opts.DB = filepath.Join(t.TempDir(), "shade-test.db")
	opts.Server.Address = "127.0.0.1:18021"
	opts.Server.ReadTimeout = 5 * time.Second
	opts.Scheme.PollInterval = 50 * time.Millisecond
	opts.Scheme.Force = "dark"
	opts.Auth.PasswordHash = ""
	opts.Debug = true
	setupLogs()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx)
	}()

	waitForServer(t, opts.Server.Address)
	base := fmt.Sprintf("http://%s", opts.Server.Address)

	t.Run("index page served", func(t *testing.T) {
		resp, err := http.Get(base + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("theme state reflects forced dark os", func(t *testing.T) {
		resp, err := http.Get(base + "/api/v1/theme")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view theme.View
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		assert.Equal(t, enum.ThemeSystem, view.Preference)
		assert.Equal(t, enum.ModeDark, view.Effective)
		assert.True(t, view.OSDark)
	})

	t.Run("cycle flips preference and persists", func(t *testing.T) {
		resp, err := http.Post(base+"/api/v1/theme/cycle", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view theme.View
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		assert.Equal(t, enum.ThemeLight, view.Preference)
		assert.Equal(t, enum.ModeLight, view.Effective)
	})

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestMain_SchemeSource(t *testing.T) {
	opts.Scheme.Force = "light"
	assert.False(t, schemeSource().Dark())

	opts.Scheme.Force = "dark"
	assert.True(t, schemeSource().Dark())

	opts.Scheme.Force = ""
	assert.NotNil(t, schemeSource())
}

func waitForServer(t *testing.T, address string) {
	t.Helper()
	client := http.Client{Timeout: 100 * time.Millisecond}
	for i := 0; i < 100; i++ {
		resp, err := client.Get(fmt.Sprintf("http://%s/ping", address))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("server did not start")
}
