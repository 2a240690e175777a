package main

import (
	"os"
	"path/filepath"
	"testing"

	"sync-http/application/http/actor/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("address: 0.0.0.0\nport: 9000\n"), 0o600))

	testCases := []struct {
		desc     string
		flags    cliFlags
		expected server.Config
		wantErr  bool
	}{
		{
			desc:     "defaults",
			expected: server.DefaultConfig(),
		},
		{
			desc:     "file",
			flags:    cliFlags{configPath: path},
			expected: server.Config{Address: "0.0.0.0", Port: 9000},
		},
		{
			desc:     "flags override file",
			flags:    cliFlags{configPath: path, port: 9001},
			expected: server.Config{Address: "0.0.0.0", Port: 9001},
		},
		{
			desc:    "missing file",
			flags:   cliFlags{configPath: filepath.Join(t.TempDir(), "nope.yaml")},
			wantErr: true,
		},
		{
			desc:    "port out of range",
			flags:   cliFlags{port: 70000},
			wantErr: true,
		},
		{
			desc:    "ttl out of range",
			flags:   cliFlags{ttl: 256},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cfg, err := loadConfig(tc.flags)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestLoadConfigTTL(t *testing.T) {
	cfg, err := loadConfig(cliFlags{ttl: 64})
	require.NoError(t, err)
	require.NotNil(t, cfg.TTL)
	assert.Equal(t, uint8(64), *cfg.TTL)
}

func TestStopper(t *testing.T) {
	s := newStopper()
	timer := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.after(timer)
	}()

	s.stop()
	s.stop()
	<-done

	select {
	case <-s.signal:
	default:
		t.Fatal("signal not closed")
	}
}
