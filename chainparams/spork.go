package chainparams

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

var ErrInvalidSporkAddress = errors.New("invalid spork address")

// ValidateSporkAddresses checks that every spork address is a P2PKH address
// of this network and that enough keys exist to reach MinSporkKeys.
func (p *Params) ValidateSporkAddresses() error {
	cfg := p.ChainCfg()
	for _, s := range p.SporkAddresses {
		addr, err := btcutil.DecodeAddress(s, cfg)
		if err != nil {
			return fmt.Errorf("%w %s: %v", ErrInvalidSporkAddress, s, err)
		}
		if _, ok := addr.(*btcutil.AddressPubKeyHash); !ok || !addr.IsForNet(cfg) {
			return fmt.Errorf("%w %s: not a pubkey hash address for %s", ErrInvalidSporkAddress, s, p.Network)
		}
	}
	if int(p.MinSporkKeys) > len(p.SporkAddresses) {
		return fmt.Errorf("%w: %d keys required, %d configured", ErrInvalidSporkAddress, p.MinSporkKeys, len(p.SporkAddresses))
	}
	return nil
}

// SporkAddress derives the spork address that belongs to pubKey.
func (p *Params) SporkAddress(pubKey *btcec.PublicKey, compressed bool) (string, error) {
	serialized := pubKey.SerializeUncompressed()
	if compressed {
		serialized = pubKey.SerializeCompressed()
	}
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(serialized), p.ChainCfg())
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// SporkAddressFromWIF derives the spork address of a WIF encoded private key
// of this network.
func (p *Params) SporkAddressFromWIF(wif string) (string, error) {
	key, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return "", err
	}
	if !key.IsForNet(p.ChainCfg()) {
		return "", fmt.Errorf("private key is not for %s", p.Network)
	}
	return p.SporkAddress(key.PrivKey.PubKey(), key.CompressPubKey)
}

// IsSporkAddress reports whether addr is one of the configured spork keys.
func (p *Params) IsSporkAddress(addr string) bool {
	for _, s := range p.SporkAddresses {
		if s == addr {
			return true
		}
	}
	return false
}
