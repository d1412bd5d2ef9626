// Package consensus holds the rule constants every node on a network has to
// agree on: activation heights, proof of work limits, versionbits
// deployments and long living masternode quorums.
package consensus

import (
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"
	"github.com/setavenger/chainparams/logging"
)

// FounderReward pays Percentage of the block reward up to and including Height.
type FounderReward struct {
	Height     int32 `json:"height"`
	Percentage int32 `json:"percentage"`
}

type FounderPayment struct {
	StartBlock int32           `json:"start_block"`
	Rewards    []FounderReward `json:"rewards"`
}

// NoFounderRewardEnd keeps the last founder reward active forever.
const NoFounderRewardEnd int32 = math.MaxInt32

// Percentage returns the founder share at height, zero before StartBlock or
// after the last reward period.
func (f FounderPayment) Percentage(height int32) int32 {
	if height < f.StartBlock {
		return 0
	}
	for _, r := range f.Rewards {
		if height <= r.Height {
			return r.Percentage
		}
	}
	return 0
}

// Amount is the founder part of blockReward at height.
func (f FounderPayment) Amount(height int32, blockReward int64) int64 {
	return blockReward * int64(f.Percentage(height)) / 100
}

// Params are the consensus rules of one network.
type Params struct {
	HashGenesisBlock       chainhash.Hash
	HashDevnetGenesisBlock chainhash.Hash

	SubsidyHalvingInterval int32
	BIP16Height            int32

	MasternodePaymentsStartBlock     int32
	MasternodePaymentsIncreaseBlock  int32
	MasternodePaymentsIncreasePeriod int32
	InstantSendConfirmationsRequired int32
	InstantSendKeepLock              int32
	BudgetPaymentsStartBlock         int32
	BudgetPaymentsCycleBlocks        int32
	BudgetPaymentsWindowBlocks       int32
	SuperblockStartBlock             int32
	SuperblockStartHash              chainhash.Hash
	SuperblockCycle                  int32
	SuperblockMaturityWindow         int32
	GovernanceMinQuorum              int32
	GovernanceFilterElements         int32
	MasternodeMinimumConfirmations   int32
	FounderPayment                   FounderPayment

	BIP34Height              int32
	BIP34Hash                chainhash.Hash
	BIP65Height              int32
	BIP66Height              int32
	BIP147Height             int32
	CSVHeight                int32
	DIP0001Height            int32
	DIP0003Height            int32
	DIP0003MinimumCount      int32
	DIP0003EnforcementHeight int32
	DIP0003EnforcementHash   chainhash.Hash
	DIP0008Height            int32
	BRRHeight                int32
	DIP0020Height            int32
	DIP0024Height            int32
	V19Height                int32
	MinBIP9WarningHeight     int32

	PowLimit                    *uint256.Int
	PowTargetTimespan           int64
	PowTargetSpacing            int64
	PowAllowMinDifficultyBlocks bool
	PowNoRetargeting            bool
	PowKGWHeight                int32
	PowDGWHeight                int32

	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [MaxVersionBitsDeployments]Deployment

	MinimumChainWork   *uint256.Int
	DefaultAssumeValid chainhash.Hash

	// devnet only
	MinimumDifficultyBlocks int32
	HighSubsidyBlocks       int32
	HighSubsidyFactor       int32

	LLMQs *Registry
}

// NewParams returns params with the defaults shared by every network:
// unconfigured deployments, an empty quorum registry and a subsidy factor of one.
func NewParams() Params {
	return Params{
		Deployments:       defaultDeployments(),
		HighSubsidyFactor: 1,
		PowLimit:          new(uint256.Int),
		MinimumChainWork:  new(uint256.Int),
		LLMQs:             NewRegistry(),
	}
}

// DifficultyAdjustmentInterval is the number of blocks between retargets
// when the legacy bitcoin rule is in effect.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return p.PowTargetTimespan / p.PowTargetSpacing
}

// Unchanged leaves a field alone in SetDeploymentWindow.
const Unchanged int64 = -1

func (p *Params) Deployment(pos DeploymentPos) Deployment {
	return p.Deployments[pos]
}

// SetDeploymentWindow always replaces start and timeout. The remaining fields
// are only replaced when they are not Unchanged, a positive useEHF enables EHF.
func (p *Params) SetDeploymentWindow(
	pos DeploymentPos, start, timeout, window, thresholdStart, thresholdMin, falloff, useEHF int64,
) {
	d := &p.Deployments[pos]
	d.StartTime = start
	d.Timeout = timeout
	if window != Unchanged {
		d.WindowSize = window
	}
	if thresholdStart != Unchanged {
		d.ThresholdStart = thresholdStart
	}
	if thresholdMin != Unchanged {
		d.ThresholdMin = thresholdMin
	}
	if falloff != Unchanged {
		d.FalloffCoeff = falloff
	}
	if useEHF != Unchanged {
		d.UseEHF = useEHF > 0
	}
}

// IsValidMNActivation reports whether a masternode hard fork signal for bit
// may be accepted at timePast. Bits no deployment uses are accepted.
func (p *Params) IsValidMNActivation(bit int, timePast int64) bool {
	if bit < 0 || bit >= VersionBitsNumBits {
		panic(fmt.Sprintf("versionbits bit %d out of range", bit))
	}

	for i, d := range p.Deployments {
		if int(d.Bit) != bit {
			continue
		}
		pos := DeploymentPos(i)
		if !d.InTimeRange(timePast) {
			logging.L.Info().
				Int("bit", bit).
				Str("deployment", pos.String()).
				Int64("start", d.StartTime).
				Int64("timeout", d.Timeout).
				Msg("activation is out of time range")
			continue
		}
		if !d.UseEHF {
			logging.L.Info().Int("bit", bit).Msg("trying to set MnEHF for non-masternode activation fork")
			return false
		}
		logging.L.Info().Int("bit", bit).Msg("set MnEHF is valid")
		return true
	}

	logging.L.Warn().Int("bit", bit).Msg("unknown MnEHF fork bit")
	return true
}
