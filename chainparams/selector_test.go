package chainparams

import (
	"context"
	"testing"

	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/types"
	"github.com/stretchr/testify/require"
)

func resetSelection() {
	selectMu.Lock()
	defer selectMu.Unlock()
	current.Store(nil)
}

func TestSelectOnce(t *testing.T) {
	resetSelection()
	t.Cleanup(resetSelection)
	require := require.New(t)

	require.False(IsSelected())
	require.Panics(func() { Current() })

	p, err := Select(context.Background(), "regtest", nil)
	require.NoError(err)
	require.True(IsSelected())
	require.Same(p, Current())

	_, err = Select(context.Background(), "main", nil)
	require.ErrorIs(err, ErrAlreadySelected)
	require.Equal(types.NetworkRegtest, Current().Network)
}

func TestSelectUnknownNetwork(t *testing.T) {
	resetSelection()
	t.Cleanup(resetSelection)

	_, err := Select(context.Background(), "signet", nil)
	require.ErrorIs(t, err, types.ErrUnknownNetwork)
	require.False(t, IsSelected())
}

func TestSelectFailureLeavesNothingPublished(t *testing.T) {
	resetSelection()
	t.Cleanup(resetSelection)
	require := require.New(t)

	_, err := SelectNetwork(context.Background(), types.NetworkRegtest, NewMapArgs().Set("dip8params", "x"), pow.X11)
	require.ErrorIs(err, ErrInvalidInteger)
	require.False(IsSelected())

	_, err = SelectNetwork(context.Background(), types.NetworkRegtest, nil, pow.X11)
	require.NoError(err)
}

func TestSelectConcurrent(t *testing.T) {
	resetSelection()
	t.Cleanup(resetSelection)

	const n = 8
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := Select(context.Background(), "regtest", nil)
			errs <- err
		}()
	}

	var ok int
	for i := 0; i < n; i++ {
		if err := <-errs; err == nil {
			ok++
		} else {
			require.ErrorIs(t, err, ErrAlreadySelected)
		}
	}
	require.Equal(t, 1, ok)
}

func TestCreateCancelledDevnet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Create(ctx, types.NetworkDevnet, nil, pow.X11)
	require.ErrorIs(t, err, context.Canceled)
}
