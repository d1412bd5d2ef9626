package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/setavenger/chainparams/api"
	"github.com/setavenger/chainparams/genesis"
	"github.com/setavenger/chainparams/logging"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	timeKey      = "time"
	bitsKey      = "bits"
	versionKey   = "version"
	rewardKey    = "reward"
	timestampKey = "timestamp"
)

func addMineFlags(flags *pflag.FlagSet) {
	flags.Uint32(timeKey, 0, "block time in unix seconds (required)")
	flags.String(bitsKey, "20001fff", "compact target in hex")
	flags.Int32(versionKey, 1, "block version")
	flags.Int64(rewardKey, 50, "coinbase reward in whole coins")
	flags.String(timestampKey, genesis.Timestamp, "text embedded in the coinbase")
}

// mineCommand searches a nonce for a new base genesis block. It does not need
// a selected network.
func mineCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "mine",
		Short: "Search the nonce of a genesis block with the shared reward script",
		Args:  cobra.NoArgs,
		RunE:  mineFunc,
	}
	addMineFlags(c.Flags())
	return c
}

func mineFunc(c *cobra.Command, _ []string) error {
	flags := c.Flags()

	t, err := flags.GetUint32(timeKey)
	if err != nil {
		return err
	}
	if t == 0 {
		return fmt.Errorf("--%s is required", timeKey)
	}
	bitsStr, err := flags.GetString(bitsKey)
	if err != nil {
		return err
	}
	bits, err := strconv.ParseUint(strings.TrimPrefix(bitsStr, "0x"), 16, 32)
	if err != nil {
		return fmt.Errorf("invalid --%s %q: %w", bitsKey, bitsStr, err)
	}
	version, err := flags.GetInt32(versionKey)
	if err != nil {
		return err
	}
	reward, err := flags.GetInt64(rewardKey)
	if err != nil {
		return err
	}
	timestamp, err := flags.GetString(timestampKey)
	if err != nil {
		return err
	}

	template, err := genesis.Build(timestamp, genesis.OutputScript(), t, 0, uint32(bits), version,
		utils.CoinsToDuffs(reward), pow.X11)
	if err != nil {
		return err
	}

	logging.L.Info().
		Uint32("time", t).
		Str("bits", bitsStr).
		Str("merkle", template.MerkleRoot().String()).
		Msg("mining genesis block")

	block, err := genesis.Mine(c.Context(), template, pow.X11)
	if err != nil {
		return err
	}
	info, err := api.NewGenesisInfo(block, true)
	if err != nil {
		return err
	}
	return printJSON(c, info)
}
