package topology

import (
	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
)

// Contract names as recorded by the deployer.
const (
	ContractEndpointV2               = "EndpointV2"
	ContractMorphoToken              = "MorphoToken"
	ContractMorphoTokenArbitrum      = "MorphoTokenArbitrum"
	ContractMorphoOFTAdapter         = "MorphoOFTAdapter"
	ContractMorphoMintBurnOFTAdapter = "MorphoMintBurnOFTAdapter"
)

// Contract is the OFT adapter deployed on one network.
type Contract struct {
	EID          endpoint.ID `json:"eid"`
	ContractName string      `json:"contractName"`
}

// ExecutorOptionType mirrors the LayerZero executor option types.
type ExecutorOptionType uint8

const (
	ExecutorOptionLzReceive        ExecutorOptionType = 1
	ExecutorOptionNativeDrop       ExecutorOptionType = 2
	ExecutorOptionLzCompose        ExecutorOptionType = 3
	ExecutorOptionOrderedExecution ExecutorOptionType = 4
)

// EnforcedOption is an executor option the OApp enforces for a message type.
type EnforcedOption struct {
	MsgType    uint16             `json:"msgType"`
	OptionType ExecutorOptionType `json:"optionType"`
	Gas        uint64             `json:"gas"`
	Value      uint64             `json:"value"`
}
