package main

import (
	"fmt"

	"github.com/setavenger/chainparams/api"
	"github.com/setavenger/chainparams/chainparams"
	"github.com/setavenger/chainparams/config"
	"github.com/spf13/cobra"
)

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "chainparams",
		Short:         "Inspect the consensus parameters and genesis blocks of every network",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		showCommand(),
		genesisCommand(),
		mineCommand(),
		sporkCommand(),
	)
	return root
}

// selectParams loads the configuration and publishes the configured network.
func selectParams(c *cobra.Command) (*chainparams.Params, error) {
	cfg, err := config.Load(c.Flags())
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyLogging(); err != nil {
		return nil, err
	}
	return chainparams.Select(c.Context(), cfg.Network(), cfg)
}

func printJSON(c *cobra.Command, v any) error {
	raw, err := api.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), string(raw))
	return err
}

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the parameter set of the configured network",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			p, err := selectParams(c)
			if err != nil {
				return err
			}
			info, err := api.NewParamsInfo(p)
			if err != nil {
				return err
			}
			return printJSON(c, info)
		},
	}
}

func genesisCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "genesis",
		Short: "Print the genesis block, and the devnet genesis on devnets, with raw serialization",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			p, err := selectParams(c)
			if err != nil {
				return err
			}
			blocks := []*api.GenesisInfo{}
			info, err := api.NewGenesisInfo(p.Genesis, true)
			if err != nil {
				return err
			}
			blocks = append(blocks, &info)
			if p.DevnetGenesis != nil {
				devnet, err := api.NewGenesisInfo(p.DevnetGenesis, true)
				if err != nil {
					return err
				}
				blocks = append(blocks, &devnet)
			}
			return printJSON(c, blocks)
		},
	}
}
