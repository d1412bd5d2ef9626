package chainparams

import (
	"github.com/setavenger/chainparams/consensus"
	"github.com/setavenger/chainparams/genesis"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/types"
	"github.com/setavenger/chainparams/utils"
	"github.com/shopspring/decimal"
)

const testGenesisHash = "00175ab0623b1c73e44e3be3eda51fb2a5bee253fc41eea0d4e57c0b677f9ee1"

// testPrefixes are shared by test, devnet and regtest.
func testPrefixes() [numBase58Types][]byte {
	return [numBase58Types][]byte{
		PubkeyAddress: {140}, // 'y'
		ScriptAddress: {19},  // '8' or '9'
		SecretKey:     {239}, // '9' or 'c'
		ExtPublicKey:  {0x04, 0x35, 0x87, 0xCF},
		ExtSecretKey:  {0x04, 0x35, 0x83, 0x94},
	}
}

func newTestParams(hasher pow.Hasher) (*Params, error) {
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
	c.BIP34Height = 76
	c.BIP34Hash = newHashFromStr("000008ebb1db2598e897d17275285767717c6acfeac4c73def49fbea1ddcbcb6")
	c.BIP65Height = 2431
	c.BIP66Height = 2075
	c.BIP147Height = 4300
	c.CSVHeight = 8064
	c.DIP0001Height = 5500
	c.DIP0003Height = 7000
	c.DIP0003MinimumCount = 2
	c.DIP0003EnforcementHeight = 7300
	c.DIP0003EnforcementHash = newHashFromStr("00000055ebc0e974ba3a3fb785c5ad4365a39637d4df168169ee80d313612f8f")
	c.DIP0008Height = 78800
	c.BRRHeight = 387500
	c.DIP0020Height = 414100
	c.DIP0024Height = 769700
	c.V19Height = 20
	c.MinBIP9WarningHeight = 20 + 2016
	c.PowLimit = pow.MustTargetFromHex("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	c.PowTargetTimespan = 24 * 60 * 60
	c.PowTargetSpacing = 150
	c.PowAllowMinDifficultyBlocks = true
	c.PowNoRetargeting = false
	// KGW height >= DGW height means no KGW
	c.PowKGWHeight = 4002
	c.PowDGWHeight = 4002
	c.RuleChangeActivationThreshold = 1512
	c.MinerConfirmationWindow = 2016

	c.Deployments[consensus.DeploymentTestDummy] = consensus.Deployment{
		Bit:       28,
		StartTime: 1199145601, // January 1, 2008
		Timeout:   1230767999, // December 31, 2008
	}
	c.Deployments[consensus.DeploymentV20] = consensus.Deployment{
		Bit:            9,
		StartTime:      1693526400, // September 1, 2023
		Timeout:        consensus.NoTimeout,
		WindowSize:     100,
		ThresholdStart: 80,
		ThresholdMin:   60,
		FalloffCoeff:   5,
	}
	c.Deployments[consensus.DeploymentMnRR] = consensus.Deployment{
		Bit:            10,
		StartTime:      1693526400, // September 1, 2023
		Timeout:        consensus.NoTimeout,
		WindowSize:     100,
		ThresholdStart: 80,
		ThresholdMin:   60,
		FalloffCoeff:   5,
		UseEHF:         true,
	}

	c.MinimumChainWork = pow.MustTargetFromHex("00000000000000000000000000000000000000000000000002d68d24632e300f")
	c.DefaultAssumeValid = newHashFromStr("0014213d75de11368dd8072d50856b0c5799dab548a2fa58a9f0fea5591fe473")

	c.LLMQs.MustRegister(
		consensus.LLMQ50_60,
		consensus.LLMQ60_75,
		consensus.LLMQ400_60,
		consensus.LLMQ400_85,
		consensus.LLMQ100_67,
		consensus.LLMQ25_67,
	)
	c.LLMQs.MustAssignRole(consensus.RoleChainLocks, consensus.LLMQ50_60)
	c.LLMQs.MustAssignRole(consensus.RoleInstantSend, consensus.LLMQ50_60)
	c.LLMQs.MustAssignRole(consensus.RoleInstantSendDIP0024, consensus.LLMQ60_75)
	c.LLMQs.MustAssignRole(consensus.RolePlatform, consensus.LLMQ25_67)
	c.LLMQs.MustAssignRole(consensus.RoleMnhf, consensus.LLMQ50_60)

	p := &Params{
		Network:                 types.NetworkTest,
		Consensus:               c,
		MessageStart:            messageStart,
		DefaultPort:             19999,
		DefaultPlatformP2PPort:  22000,
		DefaultPlatformHTTPPort: 22001,
		PruneAfterHeight:        1000,
		AssumedBlockchainSize:   4,
		AssumedChainStateSize:   1,

		Base58Prefixes: testPrefixes(),
		ExtCoinType:    1,

		DefaultConsistencyChecks:        false,
		RequireStandard:                 false,
		RequireRoutableExternalIP:       true,
		IsTestChain:                     true,
		IsMockableChain:                 false,
		AllowMultipleAddressesFromGroup: false,
		AllowMultiplePorts:              true,
		LLMQConnectionRetryTimeout:      60,

		PoolMinParticipants:        2,
		PoolMaxParticipants:        20,
		FulfilledRequestExpireTime: 5 * 60,

		SporkAddresses: []string{"yjPtiKh2uwk3bDutTEA2q9mCtXyiZRWn55"},
		MinSporkKeys:   1,

		Checkpoints: []Checkpoint{
			{261, newHashFromStr("00000c26026d0815a7e2ce4fa270775f61403c040647ff2c3091f99e894a4618")},
			{1999, newHashFromStr("00000052e538d27fa53693efe6fb6892a0c1d26c0235f599171c48a3cce553b1")},
			{2999, newHashFromStr("0000024bc3f4f4cb30d29827c13d921ad77d2c6072e586c7f60d83c2722cdcc5")},
			{96090, newHashFromStr("00000000033df4b94d17ab43e999caaf6c4735095cc77703685da81254d09bba")},
			{200000, newHashFromStr("000000001015eb5ef86a8fe2b3074d947bc972c5befe32b28dd5ce915dc0d029")},
			{395750, newHashFromStr("000008b78b6aef3fd05ab78db8b76c02163e885305545144420cb08704dce538")},
			{470000, newHashFromStr("0000009303aeadf8cf3812f5c869691dbd4cb118ad20e9bf553be434bafe6a52")},
			{794950, newHashFromStr("000001860e4c7248a9c5cc3bc7106041750560dc5cd9b3a2641b49494bcff5f2")},
			{808000, newHashFromStr("00000104cb60a2b5e00a8a4259582756e5bf0dca201c0993c63f0e54971ea91a")},
			{840000, newHashFromStr("000000cd7c3084499912ae893125c13e8c3c656abb6e511dcec6619c3d65a510")},
			{851000, newHashFromStr("0000014d3b875540ff75517b7fbb1714e25d50ce92f65d7086cfce357928bb02")},
			{905100, newHashFromStr("0000020c5e0f86f385cbf8e90210de9a9fd63633f01433bf47a6b3227a2851fd")},
		},

		AssumeUTXO: map[int32]AssumeutxoData{},
		ChainTxData: ChainTxData{
			Time:    1698870742,
			TxCount: 5952838,
			TxRate:  decimal.RequireFromString("0.009046572717013628"),
		},
	}

	block, err := genesis.BuildDefault(1390666206, 3692, 0x20001fff, 1, utils.CoinsToDuffs(200), hasher)
	if err != nil {
		return nil, err
	}
	if err := checkGenesis(p.Network, block, testGenesisHash, mainGenesisMerkle); err != nil {
		return nil, err
	}
	p.Genesis = block
	p.Consensus.HashGenesisBlock = block.Hash

	return p, nil
}
