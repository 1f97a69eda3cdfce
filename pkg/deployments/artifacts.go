// Package deployments resolves contract addresses from hardhat-deploy artifacts.
//
// The expected layout is <dir>/<network>/<Contract>.json, with an optional
// <dir>/<network>/.chainId file holding the decimal chain id.
package deployments

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNotDeployed is returned when no artifact exists for a contract.
var ErrNotDeployed = errors.New("contract not deployed")

// Artifact is the subset of a hardhat-deploy artifact the tooling reads.
type Artifact struct {
	Address         common.Address `json:"address"`
	TransactionHash string         `json:"transactionHash,omitempty"`
	Implementation  common.Address `json:"implementation,omitempty"`
}

// Store reads artifacts below a deployments directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Get loads the artifact of contract on network.
func (s *Store) Get(network, contract string) (Artifact, error) {
	path := filepath.Join(s.dir, network, contract+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Artifact{}, fmt.Errorf("%s on %s: %w", contract, network, ErrNotDeployed)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return Artifact{}, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if artifact.Address == (common.Address{}) {
		return Artifact{}, fmt.Errorf("artifact %s has no address", path)
	}
	return artifact, nil
}

// Address returns the deployed address of contract on network.
func (s *Store) Address(network, contract string) (common.Address, error) {
	artifact, err := s.Get(network, contract)
	if err != nil {
		return common.Address{}, err
	}
	return artifact.Address, nil
}

// ChainID returns the chain id recorded for network. The boolean is false when
// the directory carries no .chainId file.
func (s *Store) ChainID(network string) (uint64, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, network, ".chainId"))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid .chainId for %s: %w", network, err)
	}
	return id, true, nil
}

// CheckChainID fails when the recorded chain id of network differs from want.
func (s *Store) CheckChainID(network string, want uint64) error {
	got, ok, err := s.ChainID(network)
	if err != nil {
		return err
	}
	if ok && got != want {
		return fmt.Errorf("deployments for %s were made on chain %d, expected %d", network, got, want)
	}
	return nil
}
