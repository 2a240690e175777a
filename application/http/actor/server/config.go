package server

import (
	"io"

	"sync-http/transport/tcp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is where the server binds.
type Config struct {
	Address string `yaml:"address"`
	Port    uint16 `yaml:"port"`
	// TTL of accepted sockets. nil keeps the system default.
	TTL *uint8 `yaml:"ttl"`
}

func DefaultConfig() Config {
	return Config{
		Address: "127.0.0.1",
		Port:    8080,
	}
}

// LoadConfig decodes YAML from r on top of [DefaultConfig].
// Unknown fields are rejected. Empty input yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decoding config")
	}

	return cfg, nil
}

// HostPort returns the address to listen on.
func (c Config) HostPort() string { return tcp.JoinAddr(c.Address, c.Port) }
