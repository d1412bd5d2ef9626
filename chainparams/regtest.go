package chainparams

import (
	"github.com/setavenger/chainparams/consensus"
	"github.com/setavenger/chainparams/genesis"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/types"
	"github.com/setavenger/chainparams/utils"
	"github.com/shopspring/decimal"
)

const (
	regtestGenesisHash   = "000e33029d7fa5866ee608bc03e07bee1176c0433cccad0d5b3d44922532598d"
	regtestGenesisMerkle = "5fd315b072c6b2e340dd5a1bd50507b95880c6d160fd9e3e9b2add073bfee3dc"
)

func newRegtestParams(args Args, hasher pow.Hasher) (*Params, error) {
	c := consensus.NewParams()
	c.SubsidyHalvingInterval = 150
	c.BIP16Height = 0
	c.MasternodePaymentsStartBlock = 240
	c.MasternodePaymentsIncreaseBlock = 350
	c.MasternodePaymentsIncreasePeriod = 10
	c.InstantSendConfirmationsRequired = 2
	c.InstantSendKeepLock = 6
	c.BudgetPaymentsStartBlock = 1000
	c.BudgetPaymentsCycleBlocks = 50
	c.BudgetPaymentsWindowBlocks = 10
	c.SuperblockStartBlock = 1500
	c.SuperblockCycle = 20
	c.SuperblockMaturityWindow = 10
	c.GovernanceMinQuorum = 1
	c.GovernanceFilterElements = 100
	c.MasternodeMinimumConfirmations = 1
	c.BIP34Height = 500
	c.BIP65Height = 1351
	c.BIP66Height = 1251
	c.BIP147Height = 432
	c.CSVHeight = 432
	c.DIP0001Height = 2000
	c.DIP0003Height = 432
	c.DIP0003MinimumCount = 2
	c.DIP0003EnforcementHeight = 500
	c.DIP0008Height = 432
	c.BRRHeight = 2500
	c.DIP0020Height = 300
	c.DIP0024Height = 900
	c.V19Height = 900
	c.MinBIP9WarningHeight = 0
	c.PowLimit = pow.MustTargetFromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	c.PowTargetTimespan = 24 * 60 * 60
	c.PowTargetSpacing = 150
	c.PowAllowMinDifficultyBlocks = true
	c.PowNoRetargeting = true
	c.PowKGWHeight = 15200
	c.PowDGWHeight = 34140
	c.RuleChangeActivationThreshold = 108
	c.MinerConfirmationWindow = 144

	c.Deployments[consensus.DeploymentTestDummy] = consensus.Deployment{
		Bit:       28,
		StartTime: 0,
		Timeout:   consensus.NoTimeout,
	}
	c.Deployments[consensus.DeploymentV20] = consensus.Deployment{
		Bit:            9,
		StartTime:      0,
		Timeout:        consensus.NoTimeout,
		WindowSize:     400,
		ThresholdStart: 384,
		ThresholdMin:   288,
		FalloffCoeff:   5,
	}
	c.Deployments[consensus.DeploymentMnRR] = consensus.Deployment{
		Bit:            10,
		StartTime:      0,
		Timeout:        consensus.NoTimeout,
		WindowSize:     12,
		ThresholdStart: 9,
		ThresholdMin:   7,
		FalloffCoeff:   5,
		UseEHF:         true,
	}

	p := &Params{
		Network:                 types.NetworkRegtest,
		Consensus:               c,
		MessageStart:            messageStart,
		DefaultPort:             19899,
		DefaultPlatformP2PPort:  22200,
		DefaultPlatformHTTPPort: 22201,
		PruneAfterHeight:        1000,

		Base58Prefixes: testPrefixes(),
		ExtCoinType:    1,

		DefaultConsistencyChecks:        true,
		RequireStandard:                 true,
		RequireRoutableExternalIP:       false,
		IsTestChain:                     true,
		IsMockableChain:                 true,
		AllowMultipleAddressesFromGroup: true,
		AllowMultiplePorts:              true,
		// below the signing session timeout so tests control failures
		LLMQConnectionRetryTimeout: 1,

		PoolMinParticipants:        2,
		PoolMaxParticipants:        20,
		FulfilledRequestExpireTime: 5 * 60,

		// private key cP4EKFyJsHT39LDqgdcB43Y3YXjNyjb5Fuas1GQSeAtjnZWmZEQK
		SporkAddresses: []string{"yj949n1UH6fDhw6HtVE5VMj2iSTaSWBMcW"},
		MinSporkKeys:   1,

		AssumeUTXO: map[int32]AssumeutxoData{
			110: {HashSerialized: newHashFromStr("9b2a277a3e3b979f1a539d57e949495d7f8247312dbc32bce6619128c192b44b"), ChainTxCount: 110},
			210: {HashSerialized: newHashFromStr("d4c97d32882583b057efc3dce673e44204851435e6ffcef20346e69cddc7c91e"), ChainTxCount: 210},
		},
		ChainTxData: ChainTxData{TxRate: decimal.Zero},
	}

	if args.GetBoolArg(OptFastPrune, false) {
		p.PruneAfterHeight = 100
	}

	for _, apply := range []func(Args) error{
		p.applyVersionBitsOverrides,
		p.applyDIP3Overrides,
		p.applyDIP8Overrides,
		p.applyBudgetOverrides,
	} {
		if err := apply(args); err != nil {
			return nil, err
		}
	}

	block, err := genesis.BuildDefault(1417713337, 708, 0x20001fff, 1, utils.CoinsToDuffs(50000), hasher)
	if err != nil {
		return nil, err
	}
	if err := checkGenesis(p.Network, block, regtestGenesisHash, regtestGenesisMerkle); err != nil {
		return nil, err
	}
	p.Genesis = block
	p.Consensus.HashGenesisBlock = block.Hash
	p.Checkpoints = []Checkpoint{{0, block.Hash}}

	registry := p.Consensus.LLMQs
	registry.MustRegister(
		consensus.LLMQTest,
		consensus.LLMQTestInstantSend,
		consensus.LLMQTestV17,
		consensus.LLMQTestDIP0024,
		consensus.LLMQTestPlatform,
	)
	registry.MustAssignRole(consensus.RoleChainLocks, consensus.LLMQTest)
	registry.MustAssignRole(consensus.RoleInstantSend, consensus.LLMQTestInstantSend)
	registry.MustAssignRole(consensus.RoleInstantSendDIP0024, consensus.LLMQTestDIP0024)
	registry.MustAssignRole(consensus.RolePlatform, consensus.LLMQTestPlatform)
	registry.MustAssignRole(consensus.RoleMnhf, consensus.LLMQTest)

	for _, apply := range []func(Args) error{
		func(a Args) error { return p.applyProfileOverride(a, OptLLMQTestParams, consensus.LLMQTest) },
		func(a Args) error {
			return p.applyProfileOverride(a, OptLLMQTestInstantSendParams, consensus.LLMQTestInstantSend)
		},
		func(a Args) error { return p.applyRoleOverride(a, OptLLMQTestInstantSend, consensus.RoleInstantSend) },
		func(a Args) error {
			return p.applyRoleOverride(a, OptLLMQTestInstantSendDIP0024, consensus.RoleInstantSendDIP0024)
		},
	} {
		if err := apply(args); err != nil {
			return nil, err
		}
	}

	return p, nil
}
