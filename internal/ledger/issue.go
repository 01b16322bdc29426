package ledger

import (
	"fmt"

	"github.com/hedisam/ledgercheck/internal/signing"
)

// NewTransaction builds a transaction from the owner of privateKey to recipient and signs it.
func (e Encoding) NewTransaction(privateKey, recipient string, amount Amount) (Transaction, error) {
	source, err := signing.DerivePublicKey(privateKey)
	if err != nil {
		return Transaction{}, fmt.Errorf("derive source public key: %w", err)
	}

	tx := Transaction{
		Source:    source,
		Recipient: recipient,
		Amount:    amount,
	}
	err = e.SignTransaction(privateKey, &tx)
	if err != nil {
		return Transaction{}, err
	}

	return tx, nil
}

// SignTransaction sets tx.Signature to the signature of its canonical message.
// privateKey must belong to tx.Source.
func (e Encoding) SignTransaction(privateKey string, tx *Transaction) error {
	source, err := signing.DerivePublicKey(privateKey)
	if err != nil {
		return fmt.Errorf("derive source public key: %w", err)
	}
	if source != tx.Source {
		return fmt.Errorf("%w: key does not belong to source %q", signing.ErrInvalidKey, tx.Source)
	}

	sig, err := signing.Sign(privateKey, e.TransactionMessage(tx))
	if err != nil {
		return fmt.Errorf("sign transaction message: %w", err)
	}
	tx.Signature = sig

	return nil
}

// NewBlock builds a sealed block holding transactions.
func (e Encoding) NewBlock(transactions []Transaction, previousHash *string, nonce int64) Block {
	block := Block{
		Transactions: transactions,
		PreviousHash: previousHash,
		Nonce:        nonce,
	}
	e.Seal(&block)
	return block
}

// Seal stores the recomputed hash in block.Hash.
func (e Encoding) Seal(block *Block) {
	block.Hash = e.BlockHash(block)
}

// Append seals a block of transactions on top of the chain's last block and adds it to the chain.
// On an empty chain the block becomes the genesis block.
func (e Encoding) Append(chain *Chain, transactions []Transaction, nonce int64) {
	var previousHash *string
	if n := len(chain.Blocks); n > 0 {
		previousHash = Ptr(chain.Blocks[n-1].Hash)
	}
	chain.Blocks = append(chain.Blocks, e.NewBlock(transactions, previousHash, nonce))
}
