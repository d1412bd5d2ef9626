// Package genesis builds the anchor blocks every network starts from.
package genesis

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/setavenger/chainparams/pow"
)

const (
	// Timestamp is embedded in the coinbase of every base genesis block.
	Timestamp = "antemortem and postemortem"

	// OutputPubKeyHex receives the (unspendable) genesis reward.
	OutputPubKeyHex = "044e6e86103257498254e6068cafb72c6bf50b17a18f5f061c514f57eb31792bb84123cb7554d56dc9fcb31d07172ad9e96f4ab32b640f0c0754e9605f8c333642"

	// coinbaseBits is the legacy nBits value pushed first in the scriptSig.
	coinbaseBits = 486604799

	devnetBlockVersion = 4
)

var ErrEmptyDevnetName = errors.New("devnet name must not be empty")

// Block is a genesis block together with its proof of work hash.
type Block struct {
	Msg  *wire.MsgBlock
	Hash chainhash.Hash
}

func (b *Block) Header() wire.BlockHeader { return b.Msg.Header }

func (b *Block) MerkleRoot() chainhash.Hash { return b.Msg.Header.MerkleRoot }

func (b *Block) Coinbase() *wire.MsgTx { return b.Msg.Transactions[0] }

func (b *Block) Time() uint32 { return uint32(b.Msg.Header.Timestamp.Unix()) }

func (b *Block) Bits() uint32 { return b.Msg.Header.Bits }

func (b *Block) Nonce() uint32 { return b.Msg.Header.Nonce }

// withNonce returns a copy of the block with a different nonce, rehashed.
func (b *Block) withNonce(nonce uint32, hasher pow.Hasher) *Block {
	msg := *b.Msg
	msg.Header.Nonce = nonce
	return &Block{Msg: &msg, Hash: hasher.HeaderHash(&msg.Header)}
}

// OutputScript is the pay-to-pubkey script of the base genesis reward.
func OutputScript() []byte {
	pubKey, err := hex.DecodeString(OutputPubKeyHex)
	if err != nil {
		panic(err)
	}
	script, err := txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		panic(err)
	}
	return script
}

func coinbaseScript(timestamp string) ([]byte, error) {
	// the script number 4 is pushed as one data byte, AddInt64 would emit OP_4
	return txscript.NewScriptBuilder().
		AddInt64(coinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, 0x04}).
		AddData([]byte(timestamp)).
		Script()
}

func devnetCoinbaseScript(devnetName string) ([]byte, error) {
	// height 1 (BIP34) followed by the devnet name
	return txscript.NewScriptBuilder().
		AddInt64(1).
		AddData([]byte(devnetName)).
		Script()
}

func coinbaseTx(scriptSig, pkScript []byte, reward int64) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: chainhash.Hash{}, Index: wire.MaxPrevOutIndex},
		SignatureScript:  scriptSig,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(reward, pkScript))
	return tx
}

func assemble(
	tx *wire.MsgTx, prev chainhash.Hash, version int32, t, nonce, bits uint32, hasher pow.Hasher,
) *Block {
	merkle := blockchain.CalcMerkleRoot([]*btcutil.Tx{btcutil.NewTx(tx)}, false)

	header := wire.NewBlockHeader(version, &prev, &merkle, bits, nonce)
	header.Timestamp = time.Unix(int64(t), 0)

	msg := wire.NewMsgBlock(header)
	// AddTransaction only fails above the max tx count
	_ = msg.AddTransaction(tx)

	return &Block{Msg: msg, Hash: hasher.HeaderHash(&msg.Header)}
}

// Build assembles a base genesis block: a single coinbase transaction whose
// scriptSig carries the timestamp text and whose only output pays reward to
// outputScript. The previous block hash is zero.
func Build(
	timestamp string, outputScript []byte, t, nonce, bits uint32, version int32, reward int64, hasher pow.Hasher,
) (*Block, error) {
	scriptSig, err := coinbaseScript(timestamp)
	if err != nil {
		return nil, fmt.Errorf("genesis coinbase script: %w", err)
	}
	return assemble(coinbaseTx(scriptSig, outputScript, reward), chainhash.Hash{}, version, t, nonce, bits, hasher), nil
}

// BuildDefault uses the timestamp and reward script shared by all networks.
func BuildDefault(t, nonce, bits uint32, version int32, reward int64, hasher pow.Hasher) (*Block, error) {
	return Build(Timestamp, OutputScript(), t, nonce, bits, version, reward, hasher)
}

// BuildDevnet assembles the second anchor of a devnet on top of the shared
// base genesis. The reward output is provably unspendable.
func BuildDevnet(
	prev chainhash.Hash, devnetName string, t, nonce, bits uint32, reward int64, hasher pow.Hasher,
) (*Block, error) {
	if devnetName == "" {
		return nil, ErrEmptyDevnetName
	}
	scriptSig, err := devnetCoinbaseScript(devnetName)
	if err != nil {
		return nil, fmt.Errorf("devnet coinbase script: %w", err)
	}
	pkScript, err := txscript.NewScriptBuilder().AddOp(txscript.OP_RETURN).Script()
	if err != nil {
		return nil, err
	}
	return assemble(coinbaseTx(scriptSig, pkScript, reward), prev, devnetBlockVersion, t, nonce, bits, hasher), nil
}
