// Package validate decides whether transactions, blocks and chains are intact.
//
// Every check is a pure function of its input. The Check methods say why an item was rejected; the
// IsValid predicates only say whether it was, so callers facing untrusted input learn nothing about
// which part of a forgery failed.
package validate

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/ledgercheck/internal/ledger"
)

var defaultValidator = New()

// IsValidTransaction checks tx with the default validator.
func IsValidTransaction(tx *ledger.Transaction) bool {
	return defaultValidator.IsValidTransaction(tx)
}

// IsValidBlock checks block with the default validator.
func IsValidBlock(block *ledger.Block) bool {
	return defaultValidator.IsValidBlock(block)
}

// IsValidChain checks chain with the default validator.
func IsValidChain(chain *ledger.Chain) bool {
	return defaultValidator.IsValidChain(chain)
}

// Validator checks ledger items. It holds no state besides its configuration and is safe for
// concurrent use.
type Validator struct {
	logger   *logrus.Logger
	encoding ledger.Encoding
	verifier Verifier
	workers  int
}

func New(opts ...Option) *Validator {
	cfg := defaultConfig()
	for opt := range slices.Values(opts) {
		opt(cfg)
	}

	return &Validator{
		logger:   cfg.logger,
		encoding: cfg.encoding,
		verifier: cfg.verifier,
		workers:  cfg.workers,
	}
}

func (v *Validator) IsValidTransaction(tx *ledger.Transaction) bool {
	verdict := v.CheckTransaction(tx)
	validations.WithLabelValues(kindTransaction, verdict.Result.String()).Inc()
	return verdict.Valid()
}

func (v *Validator) IsValidBlock(block *ledger.Block) bool {
	verdict := v.CheckBlock(block)
	validations.WithLabelValues(kindBlock, verdict.Result.String()).Inc()
	return verdict.Valid()
}

func (v *Validator) IsValidChain(chain *ledger.Chain) bool {
	verdict := v.CheckChain(chain)
	validations.WithLabelValues(kindChain, verdict.Result.String()).Inc()
	return verdict.Valid()
}

// CheckTransaction rejects negative amounts, then verifies the signature of source over the
// rebuilt message. Tampering with any signed field shows up as a bad signature.
func (v *Validator) CheckTransaction(tx *ledger.Transaction) Verdict {
	if tx == nil {
		return rejected(BadSignature, -1, -1)
	}
	return v.checkTransaction(tx, -1, -1)
}

func (v *Validator) checkTransaction(tx *ledger.Transaction, blockIdx, txIdx int) Verdict {
	logger := v.logger.WithFields(logrus.Fields{
		"block":  blockIdx,
		"tx":     txIdx,
		"source": tx.Source,
	})

	if tx.Amount.IsNegative() {
		logger.WithField("amount", tx.Amount.String()).Debug("Rejected transaction with negative amount")
		return rejected(InvalidAmount, blockIdx, txIdx)
	}

	if !v.verifier.Verify(tx.Source, v.encoding.TransactionMessage(tx), tx.Signature) {
		logger.Debug("Rejected transaction with bad signature")
		return rejected(BadSignature, blockIdx, txIdx)
	}

	return accepted
}

// CheckBlock checks every transaction of the block in order, stopping at the first bad one, then
// compares the stored hash with the recomputed one.
func (v *Validator) CheckBlock(block *ledger.Block) Verdict {
	if block == nil {
		return rejected(HashMismatch, -1, -1)
	}
	return v.checkBlock(block, -1)
}

func (v *Validator) checkBlock(block *ledger.Block, blockIdx int) Verdict {
	checkedBlocks.Inc()

	for i := range block.Transactions {
		verdict := v.checkTransaction(&block.Transactions[i], blockIdx, i)
		if !verdict.Valid() {
			return verdict
		}
	}

	expected := v.encoding.BlockHash(block)
	if block.Hash != expected {
		v.logger.WithFields(logrus.Fields{
			"block":         blockIdx,
			"stored_hash":   block.Hash,
			"expected_hash": expected,
		}).Debug("Rejected block with mismatching hash")
		return rejected(HashMismatch, blockIdx, -1)
	}

	return accepted
}

// CheckChain checks, in this order: the genesis block shape, the previous hash link of every later
// block, then every block with CheckBlock. The first failure wins.
func (v *Validator) CheckChain(chain *ledger.Chain) Verdict {
	if chain.Len() == 0 {
		v.logger.Debug("Rejected chain without genesis block")
		return rejected(BadGenesis, -1, -1)
	}

	blocks := chain.Blocks
	if !blocks[0].IsGenesis() {
		v.logger.WithField("previous_hash", *blocks[0].PreviousHash).Debug("Rejected chain whose first block has a previous hash")
		return rejected(BadGenesis, 0, -1)
	}

	for i := 1; i < len(blocks); i++ {
		previousHash := blocks[i].PreviousHash
		if previousHash == nil || *previousHash != blocks[i-1].Hash {
			v.logger.WithFields(logrus.Fields{
				"block":       i,
				"parent_hash": blocks[i-1].Hash,
				"null_link":   previousHash == nil,
			}).Debug("Rejected chain with broken link")
			return rejected(BrokenLink, i, -1)
		}
	}

	// transactions are covered by the block checks; they are not verified a second time
	if v.workers > 1 && len(blocks) > 1 {
		return v.checkBlocksConcurrently(blocks)
	}
	for i := range blocks {
		verdict := v.checkBlock(&blocks[i], i)
		if !verdict.Valid() {
			return verdict
		}
	}

	return accepted
}
