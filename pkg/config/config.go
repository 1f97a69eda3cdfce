// Package config loads the operator configuration of morphoctl.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	commonconfig "github.com/smartcontractkit/chainlink-common/pkg/config"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/evm"
)

var (
	DefaultDeploymentsDir = "deployments"
	DefaultPrivateKeyEnv  = "PRIVATE_KEY"
	DefaultRequestTimeout = commonconfig.MustNewDuration(30 * time.Second)
	DefaultTxTimeout      = commonconfig.MustNewDuration(5 * time.Minute)
)

// Network is one chain the token is deployed on. The table key is the
// network name, which is also the deployments subdirectory.
type Network struct {
	EID     uint32 `toml:"EID"`
	ChainID uint64 `toml:"ChainID"`
	// RPCURL may reference environment variables, e.g. "https://rpc/${API_KEY}".
	RPCURL string `toml:"RPCURL"`
}

func (n Network) Endpoint() endpoint.ID {
	return endpoint.ID(n.EID)
}

func (n Network) Validate() error {
	if n.EID == 0 {
		return errors.New("EID must be set")
	}
	if n.ChainID == 0 {
		return errors.New("ChainID must be set")
	}
	if n.RPCURL == "" {
		return errors.New("RPCURL must be set")
	}
	if want, ok := n.Endpoint().EVMChainID(); ok && want != n.ChainID {
		return fmt.Errorf("ChainID %d does not match %s, expected %d", n.ChainID, n.Endpoint(), want)
	}
	if _, err := endpoint.ChainDetails(n.ChainID); err != nil {
		return err
	}
	return nil
}

type Retry struct {
	MaxRetries     *int                   `toml:"MaxRetries"`
	InitialBackoff *commonconfig.Duration `toml:"InitialBackoff"`
	MaxBackoff     *commonconfig.Duration `toml:"MaxBackoff"`
}

func (r *Retry) SetDefaults() {
	defaults := evm.DefaultRetryConfig()
	if r.MaxRetries == nil {
		r.MaxRetries = &defaults.MaxRetries
	}
	if r.InitialBackoff == nil {
		r.InitialBackoff = commonconfig.MustNewDuration(defaults.InitialBackoff)
	}
	if r.MaxBackoff == nil {
		r.MaxBackoff = commonconfig.MustNewDuration(defaults.MaxBackoff)
	}
}

func (r *Retry) Validate() error {
	if r.MaxRetries == nil || *r.MaxRetries < 0 {
		return errors.New("MaxRetries must not be negative")
	}
	if r.InitialBackoff == nil || r.MaxBackoff == nil {
		return errors.New("backoff must be set")
	}
	if r.MaxBackoff.Duration() < r.InitialBackoff.Duration() {
		return errors.New("MaxBackoff must not be below InitialBackoff")
	}
	return nil
}

type Config struct {
	LogLevel       zapcore.Level          `toml:"LogLevel"`
	DeploymentsDir string                 `toml:"DeploymentsDir"`
	PrivateKeyEnv  string                 `toml:"PrivateKeyEnv"`
	RequestTimeout *commonconfig.Duration `toml:"RequestTimeout"`
	TxTimeout      *commonconfig.Duration `toml:"TxTimeout"`
	Retry          Retry                  `toml:"Retry"`
	Networks       map[string]Network     `toml:"Networks"`
}

func (c *Config) SetDefaults() {
	if c.DeploymentsDir == "" {
		c.DeploymentsDir = DefaultDeploymentsDir
	}
	if c.PrivateKeyEnv == "" {
		c.PrivateKeyEnv = DefaultPrivateKeyEnv
	}
	if c.RequestTimeout == nil {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.TxTimeout == nil {
		c.TxTimeout = DefaultTxTimeout
	}
	c.Retry.SetDefaults()
}

func (c *Config) Validate() error {
	if c.RequestTimeout == nil || c.RequestTimeout.Duration() <= 0 {
		return errors.New("RequestTimeout must be positive")
	}
	if c.TxTimeout == nil || c.TxTimeout.Duration() <= 0 {
		return errors.New("TxTimeout must be positive")
	}
	if err := c.Retry.Validate(); err != nil {
		return fmt.Errorf("invalid Retry config: %w", err)
	}
	if len(c.Networks) == 0 {
		return errors.New("no networks configured")
	}
	seen := make(map[uint32]string, len(c.Networks))
	for _, name := range c.NetworkNames() {
		n := c.Networks[name]
		if err := n.Validate(); err != nil {
			return fmt.Errorf("invalid network %s: %w", name, err)
		}
		if other, ok := seen[n.EID]; ok {
			return fmt.Errorf("networks %s and %s share EID %d", other, name, n.EID)
		}
		seen[n.EID] = name
	}
	return nil
}

// NetworkNames returns the configured network names in sorted order.
func (c *Config) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// EVM builds the client configuration of a network. privateKey may be empty
// for read-only use.
func (c *Config) EVM(name, privateKey string) (evm.Config, error) {
	n, ok := c.Networks[name]
	if !ok {
		return evm.Config{}, fmt.Errorf("network %s is not configured", name)
	}
	return evm.Config{
		RPCURL:         os.ExpandEnv(n.RPCURL),
		ChainID:        n.ChainID,
		PrivateKey:     privateKey,
		RequestTimeout: c.RequestTimeout.Duration(),
		TxTimeout:      c.TxTimeout.Duration(),
		Retry: evm.RetryConfig{
			MaxRetries:     *c.Retry.MaxRetries,
			InitialBackoff: c.Retry.InitialBackoff.Duration(),
			MaxBackoff:     c.Retry.MaxBackoff.Duration(),
		},
	}, nil
}

// PrivateKey reads the signer key from the configured environment variable.
func (c *Config) PrivateKey() (string, error) {
	key := os.Getenv(c.PrivateKeyEnv)
	if key == "" {
		return "", fmt.Errorf("environment variable %s is not set", c.PrivateKeyEnv)
	}
	return key, nil
}

// Load reads, defaults and validates the config at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := commonconfig.DecodeTOML(f, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Encode renders the effective config, defaults included, as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
