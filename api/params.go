// Package api holds the JSON views of a parameter set as printed by the CLI.
package api

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/setavenger/chainparams/chainparams"
	"github.com/setavenger/chainparams/consensus"
	"github.com/setavenger/chainparams/genesis"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/utils"
)

type GenesisInfo struct {
	Hash       string `json:"hash"`
	PrevBlock  string `json:"prev_block"`
	MerkleRoot string `json:"merkle_root"`
	Version    int32  `json:"version"`
	Time       uint32 `json:"time"`
	Bits       string `json:"bits"`
	Nonce      uint32 `json:"nonce"`
	Target     string `json:"target"`
	Reward     string `json:"reward"`
	Raw        string `json:"raw,omitempty"`
}

type DeploymentInfo struct {
	Name           string `json:"name"`
	Bit            uint8  `json:"bit"`
	StartTime      int64  `json:"start_time"`
	Timeout        int64  `json:"timeout"`
	WindowSize     int64  `json:"window_size,omitempty"`
	ThresholdStart int64  `json:"threshold_start,omitempty"`
	ThresholdMin   int64  `json:"threshold_min,omitempty"`
	FalloffCoeff   int64  `json:"falloff_coeff,omitempty"`
	UseEHF         bool   `json:"use_ehf"`
}

type CheckpointInfo struct {
	Height int32  `json:"height"`
	Hash   string `json:"hash"`
}

type ChainTxDataInfo struct {
	Time    int64  `json:"time"`
	TxCount int64  `json:"tx_count"`
	TxRate  string `json:"tx_rate"`
}

// ParamsInfo is the flattened view of a chainparams.Params.
type ParamsInfo struct {
	Network       string       `json:"network"`
	DevnetName    string       `json:"devnet_name,omitempty"`
	Genesis       GenesisInfo  `json:"genesis"`
	DevnetGenesis *GenesisInfo `json:"devnet_genesis,omitempty"`

	MessageStart     string   `json:"message_start"`
	DefaultPort      uint16   `json:"default_port"`
	PlatformP2PPort  uint16   `json:"platform_p2p_port"`
	PlatformHTTPPort uint16   `json:"platform_http_port"`
	PruneAfterHeight uint64   `json:"prune_after_height"`
	DNSSeeds         []string `json:"dns_seeds"`

	PowLimit          string `json:"pow_limit"`
	PowTargetSpacing  int64  `json:"pow_target_spacing"`
	PowTargetTimespan int64  `json:"pow_target_timespan"`
	SubsidyHalving    int32  `json:"subsidy_halving_interval"`

	Deployments []DeploymentInfo       `json:"deployments"`
	LLMQs       []consensus.LLMQParams `json:"llmqs"`
	LLMQRoles   map[string]string      `json:"llmq_roles"`

	Base58Prefixes map[string]string `json:"base58_prefixes"`
	ExtCoinType    uint32            `json:"ext_coin_type"`

	SporkAddresses []string `json:"spork_addresses"`
	MinSporkKeys   int32    `json:"min_spork_keys"`

	Checkpoints []CheckpointInfo `json:"checkpoints"`
	ChainTxData ChainTxDataInfo  `json:"chain_tx_data"`
}

// NewGenesisInfo describes block. The raw serialization is only included
// when withRaw is set.
func NewGenesisInfo(block *genesis.Block, withRaw bool) (GenesisInfo, error) {
	header := block.Header()
	info := GenesisInfo{
		Hash:       block.Hash.String(),
		PrevBlock:  header.PrevBlock.String(),
		MerkleRoot: header.MerkleRoot.String(),
		Version:    header.Version,
		Time:       block.Time(),
		Bits:       fmt.Sprintf("%08x", block.Bits()),
		Nonce:      block.Nonce(),
		Target:     pow.TargetHex(pow.DecodeCompact(block.Bits())),
	}

	var reward int64
	for _, out := range block.Coinbase().TxOut {
		reward += out.Value
	}
	info.Reward = utils.FormatDuffs(reward)

	if withRaw {
		var buf bytes.Buffer
		if err := block.Msg.Serialize(&buf); err != nil {
			return GenesisInfo{}, err
		}
		info.Raw = hex.EncodeToString(buf.Bytes())
	}
	return info, nil
}

func NewParamsInfo(p *chainparams.Params) (*ParamsInfo, error) {
	g, err := NewGenesisInfo(p.Genesis, false)
	if err != nil {
		return nil, err
	}

	info := &ParamsInfo{
		Network:           p.Network.String(),
		DevnetName:        p.DevnetName,
		Genesis:           g,
		MessageStart:      hex.EncodeToString(p.MessageStart[:]),
		DefaultPort:       p.DefaultPort,
		PlatformP2PPort:   p.DefaultPlatformP2PPort,
		PlatformHTTPPort:  p.DefaultPlatformHTTPPort,
		PruneAfterHeight:  p.PruneAfterHeight,
		DNSSeeds:          append([]string{}, p.DNSSeeds...),
		PowLimit:          pow.TargetHex(p.Consensus.PowLimit),
		PowTargetSpacing:  p.Consensus.PowTargetSpacing,
		PowTargetTimespan: p.Consensus.PowTargetTimespan,
		SubsidyHalving:    p.Consensus.SubsidyHalvingInterval,
		LLMQs:             p.Consensus.LLMQs.Active(),
		LLMQRoles:         map[string]string{},
		Base58Prefixes:    map[string]string{},
		ExtCoinType:       p.ExtCoinType,
		SporkAddresses:    append([]string{}, p.SporkAddresses...),
		MinSporkKeys:      p.MinSporkKeys,
		ChainTxData: ChainTxDataInfo{
			Time:    p.ChainTxData.Time,
			TxCount: p.ChainTxData.TxCount,
			TxRate:  p.ChainTxData.TxRate.String(),
		},
	}

	if p.DevnetGenesis != nil {
		dg, err := NewGenesisInfo(p.DevnetGenesis, false)
		if err != nil {
			return nil, err
		}
		info.DevnetGenesis = &dg
	}

	for pos, d := range p.Consensus.Deployments {
		info.Deployments = append(info.Deployments, DeploymentInfo{
			Name:           consensus.DeploymentPos(pos).String(),
			Bit:            d.Bit,
			StartTime:      d.StartTime,
			Timeout:        d.Timeout,
			WindowSize:     d.WindowSize,
			ThresholdStart: d.ThresholdStart,
			ThresholdMin:   d.ThresholdMin,
			FalloffCoeff:   d.FalloffCoeff,
			UseEHF:         d.UseEHF,
		})
	}

	for role, t := range p.Consensus.LLMQs.Roles() {
		info.LLMQRoles[role.String()] = t.String()
	}

	for kind := chainparams.PubkeyAddress; kind <= chainparams.ExtSecretKey; kind++ {
		info.Base58Prefixes[kind.String()] = hex.EncodeToString(p.Base58Prefix(kind))
	}

	for _, c := range p.Checkpoints {
		info.Checkpoints = append(info.Checkpoints, CheckpointInfo{Height: c.Height, Hash: c.Hash.String()})
	}
	sort.Slice(info.Checkpoints, func(i, j int) bool { return info.Checkpoints[i].Height < info.Checkpoints[j].Height })

	return info, nil
}

// Marshal renders v as indented JSON.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
