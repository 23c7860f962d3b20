package config

import "time"

// CLIConfig represents the complete configuration for the stunner CLI
type CLIConfig struct {
	// Client configuration (stunner discover)
	Client ClientConfig `yaml:"client" json:"client"`

	// Server configuration (stunner serve)
	Server ServerConfig `yaml:"server" json:"server"`

	// Logging configuration
	Log LogConfig `yaml:"log" json:"log"`
}

// ClientConfig holds Binding-client settings
type ClientConfig struct {
	// LocalAddr is the local bind address; empty or "0.0.0.0" means any.
	LocalAddr string `yaml:"local_addr" json:"local_addr" mapstructure:"local_addr"`
	// LocalPort is the local bind port; 0 picks an ephemeral port.
	LocalPort int `yaml:"local_port" json:"local_port" mapstructure:"local_port"`
	// Timeout bounds the wait for the server's reply; 0 blocks forever.
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// ServerConfig holds Binding-server settings
type ServerConfig struct {
	Port int `yaml:"port" json:"port" mapstructure:"port"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level" json:"level" mapstructure:"level"`
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}
