package validate

import "strconv"

// Result is the reason a ledger item was accepted or rejected. It is meant for diagnostics and tests;
// the IsValid predicates only expose whether the result is Valid.
type Result uint8

const (
	Valid Result = iota
	// InvalidAmount is a transaction with a negative amount.
	InvalidAmount
	// BadSignature is a transaction whose signature does not verify against its source and message.
	BadSignature
	// HashMismatch is a block whose stored hash differs from the recomputed one.
	HashMismatch
	// BrokenLink is a block whose previous hash is not the hash of the block before it.
	BrokenLink
	// BadGenesis is an empty chain or a first block that has a previous hash.
	BadGenesis
)

func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case InvalidAmount:
		return "invalid_amount"
	case BadSignature:
		return "bad_signature"
	case HashMismatch:
		return "hash_mismatch"
	case BrokenLink:
		return "broken_link"
	case BadGenesis:
		return "bad_genesis"
	default:
		return "result(" + strconv.Itoa(int(r)) + ")"
	}
}

// Verdict locates a Result. Block and Transaction are -1 when the result is not tied to one.
type Verdict struct {
	Result      Result
	Block       int
	Transaction int
}

// Valid reports whether the verdict accepts the checked item.
func (v Verdict) Valid() bool {
	return v.Result == Valid
}

func (v Verdict) String() string {
	s := v.Result.String()
	if v.Block >= 0 {
		s += " block=" + strconv.Itoa(v.Block)
	}
	if v.Transaction >= 0 {
		s += " tx=" + strconv.Itoa(v.Transaction)
	}
	return s
}

var accepted = Verdict{Result: Valid, Block: -1, Transaction: -1}

func rejected(r Result, block, tx int) Verdict {
	return Verdict{Result: r, Block: block, Transaction: tx}
}
