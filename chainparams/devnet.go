package chainparams

import (
	"context"
	"fmt"

	"github.com/setavenger/chainparams/consensus"
	"github.com/setavenger/chainparams/genesis"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/types"
	"github.com/setavenger/chainparams/utils"
	"github.com/shopspring/decimal"
)

// devnetBaseMerkle pins the shared base block. Its hash is not pinned, every
// devnet is identified by the searched devnet genesis on top of it.
const devnetBaseMerkle = "71a8f6db75130a1d7cd267b6f17599c1a7dd74625bdd0d0f4759db486651d514"

func newDevnetParams(ctx context.Context, args Args, hasher pow.Hasher) (*Params, error) {
	c := consensus.NewParams()
	c.SubsidyHalvingInterval = 210240
	c.BIP16Height = 0
	c.MasternodePaymentsStartBlock = 4010
	c.MasternodePaymentsIncreaseBlock = 4030
	c.MasternodePaymentsIncreasePeriod = 10
	c.InstantSendConfirmationsRequired = 2
	c.InstantSendKeepLock = 6
	c.BudgetPaymentsStartBlock = 4100
	c.BudgetPaymentsCycleBlocks = 50
	c.BudgetPaymentsWindowBlocks = 10
	c.SuperblockStartBlock = 4200
	c.SuperblockCycle = 24
	c.SuperblockMaturityWindow = 8
	c.GovernanceMinQuorum = 1
	c.GovernanceFilterElements = 500
	c.MasternodeMinimumConfirmations = 1
	// everything up to DIP8 is active right away
	c.BIP34Height = 1
	c.BIP65Height = 1
	c.BIP66Height = 1
	c.BIP147Height = 1
	c.CSVHeight = 1
	c.DIP0001Height = 2
	c.DIP0003Height = 2
	c.DIP0003MinimumCount = 2
	c.DIP0003EnforcementHeight = 2
	c.DIP0008Height = 2
	c.BRRHeight = 300
	c.DIP0020Height = 300
	c.DIP0024Height = 300
	c.V19Height = 300
	c.MinBIP9WarningHeight = 300 + 2016
	c.PowLimit = pow.MustTargetFromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	c.PowTargetTimespan = 24 * 60 * 60
	c.PowTargetSpacing = 150
	c.PowAllowMinDifficultyBlocks = true
	c.PowNoRetargeting = false
	c.PowKGWHeight = 4001
	c.PowDGWHeight = 4001
	c.RuleChangeActivationThreshold = 1512
	c.MinerConfirmationWindow = 2016

	c.Deployments[consensus.DeploymentTestDummy] = consensus.Deployment{
		Bit:       28,
		StartTime: 1199145601, // January 1, 2008
		Timeout:   1230767999, // December 31, 2008
	}
	c.Deployments[consensus.DeploymentV20] = consensus.Deployment{
		Bit:            9,
		StartTime:      1661990400, // September 1, 2022
		Timeout:        consensus.NoTimeout,
		WindowSize:     120,
		ThresholdStart: 80,
		ThresholdMin:   60,
		FalloffCoeff:   5,
	}
	c.Deployments[consensus.DeploymentMnRR] = consensus.Deployment{
		Bit:            10,
		StartTime:      1661990400, // September 1, 2022
		Timeout:        consensus.NoTimeout,
		WindowSize:     120,
		ThresholdStart: 80,
		ThresholdMin:   60,
		FalloffCoeff:   5,
		UseEHF:         true,
	}

	p := &Params{
		Network:                 types.NetworkDevnet,
		DevnetName:              DevnetName(args),
		Consensus:               c,
		MessageStart:            messageStart,
		DefaultPort:             19799,
		DefaultPlatformP2PPort:  22100,
		DefaultPlatformHTTPPort: 22101,
		PruneAfterHeight:        1000,

		Base58Prefixes: testPrefixes(),
		ExtCoinType:    1,

		DefaultConsistencyChecks:        false,
		RequireStandard:                 false,
		RequireRoutableExternalIP:       true,
		IsTestChain:                     true,
		IsMockableChain:                 false,
		AllowMultipleAddressesFromGroup: true,
		AllowMultiplePorts:              true,
		LLMQConnectionRetryTimeout:      60,

		PoolMinParticipants:        2,
		PoolMaxParticipants:        20,
		FulfilledRequestExpireTime: 5 * 60,

		SporkAddresses: []string{"yjPtiKh2uwk3bDutTEA2q9mCtXyiZRWn55"},
		MinSporkKeys:   1,

		AssumeUTXO: map[int32]AssumeutxoData{},
	}

	if err := p.applyDevnetSubsidyOverrides(args); err != nil {
		return nil, err
	}

	base, err := genesis.BuildDefault(1417713337, 1096447, 0x207fffff, 1, utils.CoinsToDuffs(50), hasher)
	if err != nil {
		return nil, err
	}
	if err := checkGenesis(p.Network, base, "", devnetBaseMerkle); err != nil {
		return nil, err
	}
	p.Genesis = base
	p.Consensus.HashGenesisBlock = base.Hash

	devnetGenesis, err := genesis.SearchDevnet(ctx, base, p.DevnetName, utils.CoinsToDuffs(50), hasher)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.DevnetName, err)
	}
	p.DevnetGenesis = devnetGenesis
	p.Consensus.HashDevnetGenesisBlock = devnetGenesis.Hash

	registry := p.Consensus.LLMQs
	registry.MustRegister(
		consensus.LLMQ50_60,
		consensus.LLMQ60_75,
		consensus.LLMQ400_60,
		consensus.LLMQ400_85,
		consensus.LLMQ100_67,
		consensus.LLMQDevnet,
		consensus.LLMQDevnetDIP0024,
		consensus.LLMQDevnetPlatform,
	)
	registry.MustAssignRole(consensus.RoleChainLocks, consensus.LLMQDevnet)
	registry.MustAssignRole(consensus.RoleInstantSend, consensus.LLMQDevnet)
	registry.MustAssignRole(consensus.RoleInstantSendDIP0024, consensus.LLMQDevnetDIP0024)
	registry.MustAssignRole(consensus.RolePlatform, consensus.LLMQDevnetPlatform)
	registry.MustAssignRole(consensus.RoleMnhf, consensus.LLMQDevnet)

	overrides := []func(Args) error{
		func(a Args) error { return p.applyRoleOverride(a, OptLLMQChainLocks, consensus.RoleChainLocks) },
		func(a Args) error { return p.applyRoleOverride(a, OptLLMQInstantSend, consensus.RoleInstantSend) },
		func(a Args) error {
			return p.applyRoleOverride(a, OptLLMQInstantSendDIP0024, consensus.RoleInstantSendDIP0024)
		},
		func(a Args) error { return p.applyRoleOverride(a, OptLLMQPlatform, consensus.RolePlatform) },
		func(a Args) error { return p.applyRoleOverride(a, OptLLMQMnhf, consensus.RoleMnhf) },
		func(a Args) error { return p.applyProfileOverride(a, OptLLMQDevnetParams, consensus.LLMQDevnet) },
		p.applyPowTargetSpacingOverride,
	}
	for _, apply := range overrides {
		if err := apply(args); err != nil {
			return nil, err
		}
	}

	p.Checkpoints = []Checkpoint{
		{0, base.Hash},
		{1, devnetGenesis.Hash},
	}
	// only the two coinbase transactions exist when a devnet starts
	p.ChainTxData = ChainTxData{
		Time:    int64(devnetGenesis.Time()),
		TxCount: 2,
		TxRate:  decimal.RequireFromString("0.01"),
	}

	return p, nil
}
