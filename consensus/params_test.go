package consensus

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestFounderPayment(t *testing.T) {
	require := require.New(t)

	f := FounderPayment{
		StartBlock: 10,
		Rewards:    []FounderReward{{Height: 100, Percentage: 5}, {Height: NoFounderRewardEnd, Percentage: 10}},
	}
	require.Equal(int32(0), f.Percentage(9))
	require.Equal(int32(5), f.Percentage(10))
	require.Equal(int32(5), f.Percentage(100))
	require.Equal(int32(10), f.Percentage(101))
	require.Equal(int64(20), f.Amount(500, 200))

	require.Equal(int32(0), FounderPayment{}.Percentage(1))
}

func TestNewParams(t *testing.T) {
	require := require.New(t)

	p := NewParams()
	require.Equal(int32(1), p.HighSubsidyFactor)
	require.Equal(DefaultDeployment(), p.Deployments[DeploymentV20])

	p.PowLimit = uint256.NewInt(7)
	p.PowTargetTimespan = 24 * 60 * 60
	p.PowTargetSpacing = 150
	require.Equal(int64(576), p.DifficultyAdjustmentInterval())
	p.LLMQs.MustRegister(LLMQTest)

	// each parameter block owns its registry
	other := NewParams()
	require.NotSame(p.LLMQs, other.LLMQs)
	require.Empty(other.LLMQs.Active())
	require.Len(p.LLMQs.Active(), 1)
}

func TestSetDeploymentWindow(t *testing.T) {
	require := require.New(t)

	p := NewParams()
	p.Deployments[DeploymentV20] = Deployment{
		Bit: 9, StartTime: 0, Timeout: NoTimeout,
		WindowSize: 400, ThresholdStart: 384, ThresholdMin: 288, FalloffCoeff: 5,
	}

	p.SetDeploymentWindow(DeploymentV20, 100, 200, Unchanged, Unchanged, Unchanged, Unchanged, Unchanged)
	d := p.Deployment(DeploymentV20)
	require.Equal(int64(100), d.StartTime)
	require.Equal(int64(200), d.Timeout)
	require.Equal(int64(400), d.WindowSize)
	require.Equal(int64(384), d.ThresholdStart)
	require.Equal(int64(288), d.ThresholdMin)
	require.Equal(int64(5), d.FalloffCoeff)
	require.False(d.UseEHF)

	p.SetDeploymentWindow(DeploymentV20, 1, 2, 10, 8, 6, 3, 1)
	d = p.Deployment(DeploymentV20)
	require.Equal(Deployment{Bit: 9, StartTime: 1, Timeout: 2, WindowSize: 10, ThresholdStart: 8, ThresholdMin: 6, FalloffCoeff: 3, UseEHF: true}, d)

	p.SetDeploymentWindow(DeploymentV20, 1, 2, Unchanged, Unchanged, Unchanged, Unchanged, 0)
	require.False(p.Deployment(DeploymentV20).UseEHF)
}

func TestIsValidMNActivation(t *testing.T) {
	require := require.New(t)

	p := NewParams()
	p.Deployments[DeploymentV20] = Deployment{Bit: 9, StartTime: 100, Timeout: 200}
	p.Deployments[DeploymentMnRR] = Deployment{Bit: 10, StartTime: 100, Timeout: NoTimeout, UseEHF: true}

	require.True(p.IsValidMNActivation(10, 150))
	require.False(p.IsValidMNActivation(9, 150))
	// out of range deployments are skipped, the bit is then unknown
	require.True(p.IsValidMNActivation(9, 50))
	require.True(p.IsValidMNActivation(3, 150))
	require.Panics(func() { p.IsValidMNActivation(29, 0) })
}
