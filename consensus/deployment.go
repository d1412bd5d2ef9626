package consensus

import (
	"fmt"
	"math"
)

// DeploymentPos indexes the versionbits deployment table.
type DeploymentPos int

const (
	DeploymentTestDummy DeploymentPos = iota
	DeploymentV20
	DeploymentMnRR

	// MaxVersionBitsDeployments is the size of the table, not a deployment.
	MaxVersionBitsDeployments
)

const (
	// NoTimeout marks a deployment that never expires.
	NoTimeout int64 = math.MaxInt64
	// AlwaysActive as StartTime makes a deployment active from genesis.
	AlwaysActive int64 = -1
	// NeverActive as StartTime disables a deployment entirely.
	NeverActive int64 = -2

	// VersionBitsNumBits is the number of usable signalling bits.
	VersionBitsNumBits = 29

	defaultDeploymentBit = 28
)

var deploymentNames = [MaxVersionBitsDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentV20:       "v20",
	DeploymentMnRR:      "mn_rr",
}

func (p DeploymentPos) String() string {
	if p < 0 || p >= MaxVersionBitsDeployments {
		return fmt.Sprintf("DeploymentPos(%d)", int(p))
	}
	return deploymentNames[p]
}

func DeploymentByName(name string) (DeploymentPos, bool) {
	for i, n := range deploymentNames {
		if n == name {
			return DeploymentPos(i), true
		}
	}
	return 0, false
}

// Deployment describes when and how a versionbits upgrade may activate.
type Deployment struct {
	Bit            uint8
	StartTime      int64
	Timeout        int64
	WindowSize     int64
	ThresholdStart int64
	ThresholdMin   int64
	FalloffCoeff   int64
	// UseEHF activates through a masternode hard fork signal instead of miners.
	UseEHF bool
}

// DefaultDeployment is the descriptor of a slot no network configured.
func DefaultDeployment() Deployment {
	return Deployment{
		Bit:       defaultDeploymentBit,
		StartTime: NeverActive,
		Timeout:   NeverActive,
	}
}

func defaultDeployments() [MaxVersionBitsDeployments]Deployment {
	var d [MaxVersionBitsDeployments]Deployment
	for i := range d {
		d[i] = DefaultDeployment()
	}
	return d
}

// Check reports descriptor fields that contradict each other. Nothing calls
// it on the hot path, construction only logs what it finds.
func (d Deployment) Check() error {
	if int(d.Bit) >= VersionBitsNumBits {
		return fmt.Errorf("bit %d out of range", d.Bit)
	}
	if d.ThresholdMin > d.ThresholdStart {
		return fmt.Errorf("threshold min %d above threshold start %d", d.ThresholdMin, d.ThresholdStart)
	}
	if d.ThresholdStart > d.WindowSize {
		return fmt.Errorf("threshold start %d above window size %d", d.ThresholdStart, d.WindowSize)
	}
	switch {
	case d.StartTime == AlwaysActive, d.StartTime == NeverActive:
	case d.Timeout == NoTimeout:
	case d.Timeout <= d.StartTime:
		return fmt.Errorf("timeout %d not after start %d", d.Timeout, d.StartTime)
	}
	return nil
}

// signals reports whether the deployment can ever be signalled for.
func (d Deployment) signals() bool {
	return d.StartTime != NeverActive
}

func (d Deployment) window() (from, to int64) {
	if d.StartTime == AlwaysActive {
		return math.MinInt64, math.MaxInt64
	}
	return d.StartTime, d.Timeout
}

func (d Deployment) overlaps(o Deployment) bool {
	if !d.signals() || !o.signals() {
		return false
	}
	aFrom, aTo := d.window()
	bFrom, bTo := o.window()
	return aFrom <= bTo && bFrom <= aTo
}

// InTimeRange follows the inclusive range used for EHF activation checks.
func (d Deployment) InTimeRange(t int64) bool {
	return t >= d.StartTime && t <= d.Timeout
}

// CheckDeployments validates each descriptor and that no two deployments
// which can signal at the same time share a bit.
func CheckDeployments(deployments [MaxVersionBitsDeployments]Deployment) []error {
	var errs []error
	for i, d := range deployments {
		if err := d.Check(); err != nil {
			errs = append(errs, fmt.Errorf("deployment %s: %w", DeploymentPos(i), err))
		}
	}
	for i := 0; i < len(deployments); i++ {
		for j := i + 1; j < len(deployments); j++ {
			a, b := deployments[i], deployments[j]
			if a.Bit == b.Bit && a.overlaps(b) {
				errs = append(errs, fmt.Errorf(
					"deployments %s and %s share bit %d in overlapping windows",
					DeploymentPos(i), DeploymentPos(j), a.Bit,
				))
			}
		}
	}
	return errs
}
