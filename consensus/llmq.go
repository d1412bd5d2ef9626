package consensus

import "fmt"

// LLMQType identifies a long living masternode quorum profile.
type LLMQType uint8

const (
	LLMQ50_60  LLMQType = 1 // 50 members, 30 (60%) threshold, one per hour
	LLMQ400_60 LLMQType = 2 // 400 members, 240 (60%) threshold, one every 12 hours
	LLMQ400_85 LLMQType = 3 // 400 members, 340 (85%) threshold, one every 24 hours
	LLMQ100_67 LLMQType = 4 // 100 members, 67 (67%) threshold, one per hour
	LLMQ60_75  LLMQType = 5 // 60 members, 45 (75%) threshold, one every 12 hours, rotating
	LLMQ25_67  LLMQType = 6 // 25 members, 17 (67%) threshold, one per hour

	// regtest and devnet only
	LLMQTest            LLMQType = 100
	LLMQDevnet          LLMQType = 101
	LLMQTestV17         LLMQType = 102
	LLMQTestDIP0024     LLMQType = 103
	LLMQTestInstantSend LLMQType = 104
	LLMQDevnetDIP0024   LLMQType = 105
	LLMQTestPlatform    LLMQType = 106
	LLMQDevnetPlatform  LLMQType = 107

	LLMQNone LLMQType = 0xff
)

// LLMQParams fixes the size, threshold and DKG schedule of a quorum type.
type LLMQParams struct {
	Type LLMQType `json:"type"`
	Name string   `json:"name"`

	UseRotation bool `json:"use_rotation"`

	Size      int32 `json:"size"`
	MinSize   int32 `json:"min_size"`
	Threshold int32 `json:"threshold"`

	DKGInterval          int32 `json:"dkg_interval"`
	DKGPhaseBlocks       int32 `json:"dkg_phase_blocks"`
	DKGMiningWindowStart int32 `json:"dkg_mining_window_start"`
	DKGMiningWindowEnd   int32 `json:"dkg_mining_window_end"`
	DKGBadVotesThreshold int32 `json:"dkg_bad_votes_threshold"`

	SigningActiveQuorumCount int32 `json:"signing_active_quorum_count"`
	KeepOldConnections       int32 `json:"keep_old_connections"`
	KeepOldKeys              int32 `json:"keep_old_keys"`
	RecoveryMembers          int32 `json:"recovery_members"`
}

func (t LLMQType) String() string {
	if p, ok := CatalogLLMQ(t); ok {
		return p.Name
	}
	if t == LLMQNone {
		return "llmq_none"
	}
	return fmt.Sprintf("llmq_type(%d)", uint8(t))
}

// AvailableLLMQs is the catalog networks pick their active quorums from.
var AvailableLLMQs = []LLMQParams{
	{
		Type: LLMQ50_60, Name: "llmq_50_60",
		Size: 50, MinSize: 40, Threshold: 30,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 10, DKGMiningWindowEnd: 18,
		DKGBadVotesThreshold: 40, SigningActiveQuorumCount: 24,
		KeepOldConnections: 25, KeepOldKeys: 48, RecoveryMembers: 25,
	},
	{
		Type: LLMQ400_60, Name: "llmq_400_60",
		Size: 400, MinSize: 300, Threshold: 240,
		DKGInterval: 24 * 12, DKGPhaseBlocks: 4, DKGMiningWindowStart: 20, DKGMiningWindowEnd: 28,
		DKGBadVotesThreshold: 300, SigningActiveQuorumCount: 4,
		KeepOldConnections: 5, KeepOldKeys: 4, RecoveryMembers: 100,
	},
	{
		Type: LLMQ400_85, Name: "llmq_400_85",
		Size: 400, MinSize: 350, Threshold: 340,
		DKGInterval: 24 * 24, DKGPhaseBlocks: 4, DKGMiningWindowStart: 20, DKGMiningWindowEnd: 48,
		DKGBadVotesThreshold: 300, SigningActiveQuorumCount: 4,
		KeepOldConnections: 5, KeepOldKeys: 4, RecoveryMembers: 100,
	},
	{
		Type: LLMQ100_67, Name: "llmq_100_67",
		Size: 100, MinSize: 80, Threshold: 67,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 10, DKGMiningWindowEnd: 18,
		DKGBadVotesThreshold: 80, SigningActiveQuorumCount: 24,
		KeepOldConnections: 25, KeepOldKeys: 48, RecoveryMembers: 50,
	},
	{
		Type: LLMQ60_75, Name: "llmq_60_75", UseRotation: true,
		Size: 60, MinSize: 50, Threshold: 45,
		DKGInterval: 24 * 12, DKGPhaseBlocks: 2, DKGMiningWindowStart: 42, DKGMiningWindowEnd: 50,
		DKGBadVotesThreshold: 48, SigningActiveQuorumCount: 32,
		KeepOldConnections: 64, KeepOldKeys: 64, RecoveryMembers: 25,
	},
	{
		Type: LLMQ25_67, Name: "llmq_25_67",
		Size: 25, MinSize: 22, Threshold: 17,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 10, DKGMiningWindowEnd: 18,
		DKGBadVotesThreshold: 22, SigningActiveQuorumCount: 24,
		KeepOldConnections: 25, KeepOldKeys: 48, RecoveryMembers: 12,
	},
	{
		Type: LLMQTest, Name: "llmq_test",
		Size: 3, MinSize: 2, Threshold: 2,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 10, DKGMiningWindowEnd: 18,
		DKGBadVotesThreshold: 2, SigningActiveQuorumCount: 2,
		KeepOldConnections: 3, KeepOldKeys: 4, RecoveryMembers: 3,
	},
	{
		Type: LLMQDevnet, Name: "llmq_devnet",
		Size: 12, MinSize: 7, Threshold: 6,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 10, DKGMiningWindowEnd: 18,
		DKGBadVotesThreshold: 7, SigningActiveQuorumCount: 4,
		KeepOldConnections: 5, KeepOldKeys: 4, RecoveryMembers: 6,
	},
	{
		Type: LLMQTestV17, Name: "llmq_test_v17",
		Size: 3, MinSize: 2, Threshold: 2,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 10, DKGMiningWindowEnd: 18,
		DKGBadVotesThreshold: 2, SigningActiveQuorumCount: 2,
		KeepOldConnections: 3, KeepOldKeys: 4, RecoveryMembers: 3,
	},
	{
		Type: LLMQTestDIP0024, Name: "llmq_test_dip0024", UseRotation: true,
		Size: 4, MinSize: 4, Threshold: 3,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 12, DKGMiningWindowEnd: 20,
		DKGBadVotesThreshold: 2, SigningActiveQuorumCount: 2,
		KeepOldConnections: 4, KeepOldKeys: 4, RecoveryMembers: 3,
	},
	{
		Type: LLMQTestInstantSend, Name: "llmq_test_instantsend",
		Size: 3, MinSize: 2, Threshold: 2,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 10, DKGMiningWindowEnd: 18,
		DKGBadVotesThreshold: 2, SigningActiveQuorumCount: 2,
		KeepOldConnections: 3, KeepOldKeys: 4, RecoveryMembers: 3,
	},
	{
		Type: LLMQDevnetDIP0024, Name: "llmq_devnet_dip0024", UseRotation: true,
		Size: 8, MinSize: 6, Threshold: 4,
		DKGInterval: 48, DKGPhaseBlocks: 2, DKGMiningWindowStart: 12, DKGMiningWindowEnd: 20,
		DKGBadVotesThreshold: 7, SigningActiveQuorumCount: 2,
		KeepOldConnections: 4, KeepOldKeys: 4, RecoveryMembers: 4,
	},
	{
		Type: LLMQTestPlatform, Name: "llmq_test_platform",
		Size: 3, MinSize: 2, Threshold: 2,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 10, DKGMiningWindowEnd: 18,
		DKGBadVotesThreshold: 2, SigningActiveQuorumCount: 2,
		KeepOldConnections: 4, KeepOldKeys: 24, RecoveryMembers: 3,
	},
	{
		Type: LLMQDevnetPlatform, Name: "llmq_devnet_platform",
		Size: 12, MinSize: 9, Threshold: 8,
		DKGInterval: 24, DKGPhaseBlocks: 2, DKGMiningWindowStart: 10, DKGMiningWindowEnd: 18,
		DKGBadVotesThreshold: 7, SigningActiveQuorumCount: 4,
		KeepOldConnections: 5, KeepOldKeys: 24, RecoveryMembers: 6,
	},
}

// CatalogLLMQ returns the catalog entry for t.
func CatalogLLMQ(t LLMQType) (LLMQParams, bool) {
	for _, p := range AvailableLLMQs {
		if p.Type == t {
			return p, true
		}
	}
	return LLMQParams{}, false
}

// LLMQRole is a protocol function that is served by exactly one quorum type.
type LLMQRole int

const (
	RoleChainLocks LLMQRole = iota
	RoleInstantSend
	RoleInstantSendDIP0024
	RolePlatform
	RoleMnhf

	numRoles
)

// Roles lists every role in a stable order.
var Roles = []LLMQRole{RoleChainLocks, RoleInstantSend, RoleInstantSendDIP0024, RolePlatform, RoleMnhf}

var roleNames = [numRoles]string{
	RoleChainLocks:         "chainlocks",
	RoleInstantSend:        "instantsend",
	RoleInstantSendDIP0024: "instantsend_dip0024",
	RolePlatform:           "platform",
	RoleMnhf:               "mnhf",
}

func (r LLMQRole) String() string {
	if r < 0 || r >= numRoles {
		return fmt.Sprintf("LLMQRole(%d)", int(r))
	}
	return roleNames[r]
}

type rotationRule int

const (
	rotationAny rotationRule = iota
	rotationRequired
	rotationForbidden
)

func (r LLMQRole) rotation() rotationRule {
	switch r {
	case RoleInstantSendDIP0024:
		return rotationRequired
	case RoleChainLocks, RoleInstantSend:
		return rotationForbidden
	}
	return rotationAny
}
