// Package evm talks to the OFT adapter and token contracts of one network.
package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	selectors "github.com/smartcontractkit/chain-selectors"
	"github.com/smartcontractkit/chainlink-common/pkg/logger"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
)

// ErrNoSigner is returned by write operations on a client dialed without a key.
var ErrNoSigner = errors.New("no signer configured")

// Config describes how to reach one network.
type Config struct {
	RPCURL  string
	ChainID uint64
	// PrivateKey is a hex encoded secp256k1 key, with or without 0x prefix.
	// Read-only commands leave it empty.
	PrivateKey     string
	RequestTimeout time.Duration
	TxTimeout      time.Duration
	Retry          RetryConfig
}

// Client is a go-ethereum client bound to a single, verified chain.
type Client struct {
	lggr    logger.Logger
	backend bind.ContractBackend
	closer  func()
	receipt receiptFetcher
	chain   selectors.ChainDetails
	chainID *big.Int
	key     *ecdsa.PrivateKey
	cfg     Config
}

// Dial connects to cfg.RPCURL and checks that the node serves cfg.ChainID.
func Dial(ctx context.Context, lggr logger.Logger, cfg Config) (*Client, error) {
	chain, err := endpoint.ChainDetails(cfg.ChainID)
	if err != nil {
		return nil, err
	}

	var key *ecdsa.PrivateKey
	if cfg.PrivateKey != "" {
		key, err = crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
	}

	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", chain.ChainName, err)
	}

	lggr = logger.With(lggr, "chain", chain.ChainName, "selector", chain.ChainSelector)
	remote, err := withRetry(ctx, lggr, cfg.Retry, cfg.RequestTimeout, "eth_chainId", eth.ChainID)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to fetch chain id from %s: %w", chain.ChainName, err)
	}
	if !remote.IsUint64() || remote.Uint64() != cfg.ChainID {
		eth.Close()
		return nil, fmt.Errorf("rpc for %s serves chain id %s, expected %d", chain.ChainName, remote, cfg.ChainID)
	}

	return &Client{
		lggr:    lggr,
		backend: eth,
		closer:  eth.Close,
		receipt: eth,
		chain:   chain,
		chainID: remote,
		key:     key,
		cfg:     cfg,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// ChainName returns the chain-selectors name of the connected chain.
func (c *Client) ChainName() string {
	return c.chain.ChainName
}

// ChainSelector returns the chain-selectors selector of the connected chain.
func (c *Client) ChainSelector() uint64 {
	return c.chain.ChainSelector
}

// Signer returns the address transactions are sent from.
func (c *Client) Signer() (common.Address, error) {
	if c.key == nil {
		return common.Address{}, ErrNoSigner
	}
	return crypto.PubkeyToAddress(c.key.PublicKey), nil
}

func (c *Client) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

func (c *Client) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.key == nil {
		return nil, ErrNoSigner
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// WaitMined blocks until txHash is mined and fails if it reverted. Receipt
// lookups that fail are retried until TxTimeout elapses.
func (c *Client) WaitMined(ctx context.Context, txHash common.Hash) error {
	if c.cfg.TxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.TxTimeout)
		defer cancel()
	}
	receipt, err := waitMined(ctx, c.receipt, txHash, time.Second)
	if err != nil {
		return fmt.Errorf("tx %s failed to confirm on %s: %w", txHash.Hex(), c.chain.ChainName, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("tx %s reverted on %s in block %s", txHash.Hex(), c.chain.ChainName, receipt.BlockNumber)
	}
	c.lggr.Debugw("Transaction mined", "tx", txHash.Hex(), "block", receipt.BlockNumber, "gasUsed", receipt.GasUsed)
	return nil
}

type receiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

func waitMined(ctx context.Context, b receiptFetcher, txHash common.Hash, interval time.Duration) (*types.Receipt, error) {
	queryTicker := time.NewTicker(interval)
	defer queryTicker.Stop()
	for {
		receipt, err := b.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}
