package chainparams

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/setavenger/chainparams/consensus"
	"github.com/setavenger/chainparams/logging"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/types"
)

var ErrAlreadySelected = errors.New("chain params already selected")

var (
	selectMu sync.Mutex
	current  atomic.Pointer[Params]
)

// Create builds the parameter set of network without publishing it. Args is
// only consulted for devnet and regtest, nil means no overrides.
func Create(ctx context.Context, network types.Network, args Args, hasher pow.Hasher) (*Params, error) {
	if args == nil {
		args = NewMapArgs()
	}

	var (
		p   *Params
		err error
	)
	switch network {
	case types.NetworkMain:
		p, err = newMainParams(hasher)
	case types.NetworkTest:
		p, err = newTestParams(hasher)
	case types.NetworkDevnet:
		p, err = newDevnetParams(ctx, args, hasher)
	case types.NetworkRegtest:
		p, err = newRegtestParams(args, hasher)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownNetwork, string(network))
	}
	if err != nil {
		return nil, err
	}

	if err := p.finalize(); err != nil {
		return nil, err
	}
	return p, nil
}

// finalize checks the cross field invariants and freezes the quorum registry.
func (p *Params) finalize() error {
	if err := p.Consensus.LLMQs.CheckRoles(); err != nil {
		return fmt.Errorf("%s: %w", p.Network, err)
	}
	if err := checkCheckpoints(p.Checkpoints); err != nil {
		return fmt.Errorf("%s: %w", p.Network, err)
	}
	// inconsistent deployments are accepted, they are reported only
	for _, err := range consensus.CheckDeployments(p.Consensus.Deployments) {
		logging.L.Warn().Err(err).Str("network", p.Network.String()).Msg("inconsistent deployment parameters")
	}
	p.Consensus.LLMQs.Freeze()
	return nil
}

// Select builds the named network with the X11 hasher and publishes it.
// It may succeed once per process.
func Select(ctx context.Context, name string, args Args) (*Params, error) {
	network, err := types.ParseNetwork(name)
	if err != nil {
		logging.L.Err(err).Msg("unknown chain")
		return nil, err
	}
	return SelectNetwork(ctx, network, args, pow.X11)
}

func SelectNetwork(ctx context.Context, network types.Network, args Args, hasher pow.Hasher) (*Params, error) {
	selectMu.Lock()
	defer selectMu.Unlock()

	if p := current.Load(); p != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadySelected, p.Network)
	}

	p, err := Create(ctx, network, args, hasher)
	if err != nil {
		logging.L.Err(err).Str("network", network.String()).Msg("failed to create chain params")
		return nil, err
	}

	current.Store(p)
	logging.L.Info().
		Str("network", p.Network.String()).
		Str("genesis", p.GenesisHash().String()).
		Msg("selected chain params")
	return p, nil
}

// Current returns the published parameter set. Calling it before Select is a
// programming error and panics.
func Current() *Params {
	p := current.Load()
	if p == nil {
		panic("chainparams: Current called before Select")
	}
	return p
}

// IsSelected reports whether Select has published a parameter set.
func IsSelected() bool {
	return current.Load() != nil
}
