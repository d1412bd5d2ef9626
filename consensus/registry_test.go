package consensus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	require := require.New(t)

	seenType := map[LLMQType]bool{}
	seenName := map[string]bool{}
	for _, p := range AvailableLLMQs {
		require.False(seenType[p.Type], p.Name)
		require.False(seenName[p.Name], p.Name)
		seenType[p.Type] = true
		seenName[p.Name] = true

		require.LessOrEqual(p.Threshold, p.MinSize, p.Name)
		require.LessOrEqual(p.MinSize, p.Size, p.Name)
		require.Equal(p.Name, p.Type.String())
	}

	p, ok := CatalogLLMQ(LLMQ60_75)
	require.True(ok)
	require.True(p.UseRotation)

	_, ok = CatalogLLMQ(LLMQNone)
	require.False(ok)
	require.Equal("llmq_none", LLMQNone.String())
	require.Equal("llmq_type(42)", LLMQType(42).String())
}

func TestRegistryRegister(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	require.NoError(r.Register(LLMQTest))
	require.ErrorIs(r.Register(LLMQTest), ErrLLMQAlreadyActive)
	require.ErrorIs(r.Register(LLMQType(42)), ErrLLMQUnknown)

	p, ok := r.Lookup(LLMQTest)
	require.True(ok)
	require.Equal("llmq_test", p.Name)

	_, ok = r.Lookup(LLMQDevnet)
	require.False(ok)

	require.Panics(func() { r.MustRegister(LLMQTest) })
	require.Len(r.Active(), 1)
}

func TestRegistryTypeByName(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	r.MustRegister(LLMQTest, LLMQTestDIP0024)

	got, err := r.TypeByName("llmq_test_dip0024")
	require.NoError(err)
	require.Equal(LLMQTestDIP0024, got)

	// in the catalog but not active
	_, err = r.TypeByName("llmq_devnet")
	require.ErrorIs(err, ErrUnknownQuorumName)
}

func TestRegistryRoleRotation(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(LLMQTest, LLMQTestDIP0024, LLMQTestPlatform)

	tests := []struct {
		role LLMQRole
		typ  LLMQType
		err  error
	}{
		{RoleInstantSendDIP0024, LLMQTest, ErrRotationRequired},
		{RoleInstantSend, LLMQTestDIP0024, ErrRotationForbidden},
		{RoleChainLocks, LLMQTestDIP0024, ErrRotationForbidden},
		{RoleInstantSendDIP0024, LLMQTestDIP0024, nil},
		{RoleInstantSend, LLMQTest, nil},
		{RoleChainLocks, LLMQTest, nil},
		{RolePlatform, LLMQTestDIP0024, nil},
		{RolePlatform, LLMQTestPlatform, nil},
		{RoleMnhf, LLMQTest, nil},
		{RoleMnhf, LLMQDevnet, ErrLLMQNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+"/"+tt.typ.String(), func(t *testing.T) {
			err := r.AssignRole(tt.role, tt.typ)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.typ, r.Role(tt.role))
		})
	}

	require.NoError(t, r.CheckRoles())
}

func TestRegistryCheckRoles(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	r.MustRegister(LLMQTest, LLMQTestDIP0024)
	require.ErrorIs(r.CheckRoles(), ErrRoleUnassigned)

	for _, role := range Roles {
		if role == RoleInstantSendDIP0024 {
			r.MustAssignRole(role, LLMQTestDIP0024)
			continue
		}
		r.MustAssignRole(role, LLMQTest)
	}
	require.NoError(r.CheckRoles())
	require.Len(r.Roles(), len(Roles))
	require.Equal(LLMQNone, r.Role(LLMQRole(99)))
}

func TestRegistryOverrideProfile(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	r.MustRegister(LLMQTest)

	require.NoError(r.OverrideProfile(LLMQTest, 5, 4, 4))
	p, _ := r.Lookup(LLMQTest)
	require.Equal(int32(5), p.Size)
	require.Equal(int32(4), p.MinSize)
	require.Equal(int32(4), p.Threshold)
	require.Equal(int32(4), p.DKGBadVotesThreshold)

	// the catalog is untouched
	c, _ := CatalogLLMQ(LLMQTest)
	require.Equal(int32(3), c.Size)

	require.ErrorIs(r.OverrideProfile(LLMQDevnet, 5, 4, 4), ErrLLMQNotActive)
}

func TestRegistryFreeze(t *testing.T) {
	require := require.New(t)

	r := NewRegistry()
	r.MustRegister(LLMQTest)
	r.MustAssignRole(RoleChainLocks, LLMQTest)

	r.Freeze()
	require.True(r.Frozen())
	require.ErrorIs(r.Register(LLMQDevnet), ErrRegistryFrozen)
	require.ErrorIs(r.AssignRole(RoleMnhf, LLMQTest), ErrRegistryFrozen)
	require.ErrorIs(r.OverrideProfile(LLMQTest, 1, 1, 1), ErrRegistryFrozen)

	p, _ := r.Lookup(LLMQTest)
	require.Equal(int32(3), p.Size)
	require.Equal(LLMQTest, r.Role(RoleChainLocks))
}
