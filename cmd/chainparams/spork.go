package main

import (
	"github.com/spf13/cobra"
)

type sporkInfo struct {
	Network string `json:"network"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

func sporkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sporkaddr <wif>",
		Short: "Derive the spork address of a private key and check it against the network",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, err := selectParams(c)
			if err != nil {
				return err
			}
			if err := p.ValidateSporkAddresses(); err != nil {
				return err
			}
			addr, err := p.SporkAddressFromWIF(args[0])
			if err != nil {
				return err
			}
			return printJSON(c, sporkInfo{
				Network: p.Network.String(),
				Address: addr,
				Active:  p.IsSporkAddress(addr),
			})
		},
	}
}
