package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	ttl := uint8(64)

	testCases := []struct {
		desc     string
		input    string
		expected Config
		wantErr  bool
	}{
		{
			desc:     "empty",
			input:    "",
			expected: DefaultConfig(),
		},
		{
			desc:     "partial",
			input:    "port: 9090\n",
			expected: Config{Address: "127.0.0.1", Port: 9090},
		},
		{
			desc:     "full",
			input:    "address: 0.0.0.0\nport: 80\nttl: 64\n",
			expected: Config{Address: "0.0.0.0", Port: 80, TTL: &ttl},
		},
		{
			desc:    "unknown field",
			input:   "hostname: example.com\n",
			wantErr: true,
		},
		{
			desc:    "port out of range",
			input:   "port: 70000\n",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cfg, err := LoadConfig(strings.NewReader(tc.input))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestConfigHostPort(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", DefaultConfig().HostPort())
	assert.Equal(t, "[::1]:80", Config{Address: "::1", Port: 80}.HostPort())
}
