package chainparams

import (
	"github.com/setavenger/chainparams/consensus"
	"github.com/setavenger/chainparams/genesis"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/types"
	"github.com/setavenger/chainparams/utils"
	"github.com/shopspring/decimal"
)

var messageStart = [4]byte{0x75, 0x6e, 0x66, 0x79}

const (
	mainGenesisHash = "001c87738f77f0c63e7c0f8da47be2146066927142c373333007b0b0be515c4b"
	// main and test share the coinbase and reward
	mainGenesisMerkle = "83fce268243cb41e0cc266dd0feeb1aa3005c6ad2f5b3ca1ad41427b912826ad"
)

func newMainParams(hasher pow.Hasher) (*Params, error) {
	c := consensus.NewParams()
	c.SubsidyHalvingInterval = 262800
	c.BIP16Height = 0
	c.MasternodePaymentsStartBlock = 4321
	c.MasternodePaymentsIncreaseBlock = 158000
	c.MasternodePaymentsIncreasePeriod = 576 * 30
	c.InstantSendConfirmationsRequired = 6
	c.InstantSendKeepLock = 24
	c.BudgetPaymentsStartBlock = 328008
	c.BudgetPaymentsCycleBlocks = 16616
	c.BudgetPaymentsWindowBlocks = 100
	c.SuperblockStartBlock = 614820
	c.SuperblockStartHash = newHashFromStr("0000000000020cb27c7ef164d21003d5d20cdca2f54dd9a9ca6d45f4d47f8aa3")
	c.SuperblockCycle = 16616
	c.SuperblockMaturityWindow = 1662
	// 10% to the founders forever
	c.FounderPayment = consensus.FounderPayment{
		Rewards: []consensus.FounderReward{{Height: consensus.NoFounderRewardEnd, Percentage: 10}},
	}
	c.GovernanceMinQuorum = 10
	c.GovernanceFilterElements = 20000
	c.MasternodeMinimumConfirmations = 15
	c.BIP34Height = 951
	c.BIP34Hash = newHashFromStr("000001f35e70f7c5705f64c6c5cc3dea9449e74d5b5c7cf74dad1bcca14a8012")
	c.BIP65Height = 619382
	c.BIP66Height = 245817
	c.BIP147Height = 939456
	c.CSVHeight = 622944
	c.DIP0001Height = 782208
	c.DIP0003Height = 4321
	c.DIP0003MinimumCount = 10
	c.DIP0003EnforcementHeight = 1047200
	c.DIP0003EnforcementHash = newHashFromStr("000000000000002d1734087b4c5afc3133e4e1c3e1a89218f62bcd9bb3d17f81")
	c.DIP0008Height = 1088640
	c.BRRHeight = 1374912
	c.DIP0020Height = 1516032
	c.DIP0024Height = 1737792
	c.V19Height = 4321
	c.MinBIP9WarningHeight = 4321 + 2016
	c.PowLimit = pow.MustTargetFromHex("00ffffffff000000000000000000000000000000000000000000000000000000")
	c.PowTargetTimespan = 24 * 60 * 60
	c.PowTargetSpacing = 120
	c.PowAllowMinDifficultyBlocks = false
	c.PowNoRetargeting = false
	c.PowKGWHeight = 0
	c.PowDGWHeight = 0
	c.RuleChangeActivationThreshold = 1916
	c.MinerConfirmationWindow = 1440
	// no deployments are scheduled on main, every slot keeps its default
	c.MinimumChainWork = pow.MustTargetFromHex("00")
	c.DefaultAssumeValid = newHashFromStr(mainGenesisHash)

	c.LLMQs.MustRegister(
		consensus.LLMQ50_60,
		consensus.LLMQ60_75,
		consensus.LLMQ400_60,
		consensus.LLMQ400_85,
		consensus.LLMQ100_67,
	)
	c.LLMQs.MustAssignRole(consensus.RoleChainLocks, consensus.LLMQ400_60)
	c.LLMQs.MustAssignRole(consensus.RoleInstantSend, consensus.LLMQ50_60)
	c.LLMQs.MustAssignRole(consensus.RoleInstantSendDIP0024, consensus.LLMQ60_75)
	c.LLMQs.MustAssignRole(consensus.RolePlatform, consensus.LLMQ100_67)
	c.LLMQs.MustAssignRole(consensus.RoleMnhf, consensus.LLMQ400_85)

	p := &Params{
		Network:                 types.NetworkMain,
		Consensus:               c,
		MessageStart:            messageStart,
		DefaultPort:             1464,
		DefaultPlatformP2PPort:  26656,
		DefaultPlatformHTTPPort: 443,
		PruneAfterHeight:        100000,
		AssumedBlockchainSize:   45,
		AssumedChainStateSize:   1,

		DNSSeeds: []string{"dnsseed.unifyroom.com"},

		Base58Prefixes: [numBase58Types][]byte{
			PubkeyAddress: {68},  // 'U'
			ScriptAddress: {16},  // '7'
			SecretKey:     {204}, // '7' or 'X'
			ExtPublicKey:  {0x04, 0x88, 0xB2, 0x1E},
			ExtSecretKey:  {0x04, 0x88, 0xAD, 0xE4},
		},
		ExtCoinType: 5,

		DefaultConsistencyChecks:        false,
		RequireStandard:                 true,
		RequireRoutableExternalIP:       true,
		IsTestChain:                     false,
		IsMockableChain:                 false,
		AllowMultipleAddressesFromGroup: false,
		AllowMultiplePorts:              false,
		LLMQConnectionRetryTimeout:      60,

		PoolMinParticipants:        3,
		PoolMaxParticipants:        20,
		FulfilledRequestExpireTime: 60 * 60,

		SporkAddresses: []string{"UWwApGGNbxCyoKsRyT99dZANEH28v5tfRp"},
		MinSporkKeys:   1,

		AssumeUTXO: map[int32]AssumeutxoData{},
		ChainTxData: ChainTxData{
			Time:    1705981380,
			TxCount: 0,
			TxRate:  decimal.Zero,
		},
	}

	block, err := genesis.BuildDefault(1705981380, 8588, 0x20001fff, 1, utils.CoinsToDuffs(200), hasher)
	if err != nil {
		return nil, err
	}
	if err := checkGenesis(p.Network, block, mainGenesisHash, mainGenesisMerkle); err != nil {
		return nil, err
	}
	p.Genesis = block
	p.Consensus.HashGenesisBlock = block.Hash

	return p, nil
}
