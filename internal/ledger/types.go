package ledger

// Transaction moves Amount from the Source public key to the Recipient public key.
// Signature is made by Source over the canonical transaction message.
type Transaction struct {
	Source    string `json:"source"`
	Recipient string `json:"recipient"`
	Amount    Amount `json:"amount"`
	Signature string `json:"signature"`
}

// Block groups transactions and links to its predecessor through PreviousHash.
// A nil PreviousHash marks the genesis block.
type Block struct {
	Transactions []Transaction `json:"transactions"`
	PreviousHash *string       `json:"previousHash"`
	Nonce        int64         `json:"nonce"`
	Hash         string        `json:"hash"`
}

// IsGenesis reports whether the block claims to be the first block of a chain.
func (b *Block) IsGenesis() bool {
	return b.PreviousHash == nil
}

// Chain is an ordered sequence of blocks, genesis first.
type Chain struct {
	Blocks []Block `json:"blocks"`
}

// Len returns the number of blocks in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Blocks)
}

// Ptr returns a pointer to a copy of s, handy for filling PreviousHash.
func Ptr(s string) *string {
	return &s
}
