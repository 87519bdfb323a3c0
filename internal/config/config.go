package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/channel"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
)

// Config is the sample service configuration: YAML file (optional) overlaid
// with COMMONS_-prefixed environment variables.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Messages    MessagesConfig    `koanf:"messages"`
	Channel     ChannelConfig     `koanf:"channel"`
	Propagation PropagationConfig `koanf:"propagation"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
}

// MessagesConfig drives the message catalog and the generic codes used by
// the exception translator.
type MessagesConfig struct {
	// Templates maps "message_<code>" to "title|text".
	Templates map[string]string `koanf:"templates"`
	Prefix    string            `koanf:"prefix"`
	Split     string            `koanf:"split"`
	Generic   GenericMessage    `koanf:"generic"`
}

type GenericMessage struct {
	ErrorCode   string `koanf:"error_code"`
	MessageCode int    `koanf:"message_code"`
}

// ChannelConfig seeds the in-memory channel registry and the hours locale.
type ChannelConfig struct {
	Locale         string           `koanf:"locale"`
	BypassRegistry bool             `koanf:"bypass_registry"`
	Records        []channel.Record `koanf:"records"`
}

// PropagationConfig drives the outbound client: which headers never leave the
// service and where the demo downstream dependency lives.
type PropagationConfig struct {
	IgnoreHeaders []string `koanf:"ignore_headers"`
	TraceHeaders  bool     `koanf:"trace_headers"`
	DownstreamURL string   `koanf:"downstream_url"`
}

// Load reads path (ignored when absent) and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider("COMMONS_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "COMMONS_")), "_", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	// Default values
	if !k.Exists("server.port") {
		k.Set("server.port", 8080)
	}
	if !k.Exists("channel.locale") {
		k.Set("channel.locale", "es")
	}
	if !k.Exists("messages.generic.error_code") {
		k.Set("messages.generic.error_code", "MSCM0")
	}
	if !k.Exists("messages.generic.message_code") {
		k.Set("messages.generic.message_code", -1)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CatalogOptions converts the configured prefix/split into catalog options.
func (m MessagesConfig) CatalogOptions() []messages.CatalogOption {
	var opts []messages.CatalogOption
	if m.Prefix != "" {
		opts = append(opts, messages.WithKeyPrefix(m.Prefix))
	}
	if m.Split != "" {
		opts = append(opts, messages.WithSplit(m.Split))
	}
	return opts
}
