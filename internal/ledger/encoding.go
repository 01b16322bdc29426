package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Encoding selects how transaction and block fields are laid out before they are signed or hashed.
type Encoding uint8

const (
	// EncodingConcat joins the fields with no separators. It is byte-for-byte compatible with data
	// signed by existing issuers, but "ab"+"c" and "a"+"bc" produce the same message.
	EncodingConcat Encoding = iota
	// EncodingLengthPrefixed writes every field as "<len>:<bytes>," so field boundaries are unambiguous.
	EncodingLengthPrefixed
)

// ErrUnknownEncoding is returned when parsing an encoding name that does not exist.
var ErrUnknownEncoding = errors.New("unknown encoding")

// nullPreviousHash is how JavaScript renders a null previous hash in string concatenation.
const nullPreviousHash = "null"

func (e Encoding) String() string {
	switch e {
	case EncodingConcat:
		return "concat"
	case EncodingLengthPrefixed:
		return "length-prefixed"
	default:
		return "encoding(" + strconv.Itoa(int(e)) + ")"
	}
}

// ParseEncoding maps an encoding name back to its value.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "concat", "":
		return EncodingConcat, nil
	case "length-prefixed":
		return EncodingLengthPrefixed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// TransactionMessage returns the message the transaction source signs: source, recipient and amount.
func (e Encoding) TransactionMessage(tx *Transaction) string {
	amount := tx.Amount.String()
	if e == EncodingLengthPrefixed {
		var sb strings.Builder
		writeNetstring(&sb, tx.Source)
		writeNetstring(&sb, tx.Recipient)
		writeNetstring(&sb, amount)
		return sb.String()
	}

	return tx.Source + tx.Recipient + amount
}

// BlockHashInput returns the string hashed into the block hash: the transaction sequence as JSON,
// then the previous hash, then the nonce.
func (e Encoding) BlockHashInput(block *Block) string {
	txs := StringifyTransactions(block.Transactions)
	nonce := strconv.FormatInt(block.Nonce, 10)
	if e == EncodingLengthPrefixed {
		var sb strings.Builder
		writeNetstring(&sb, txs)
		if block.PreviousHash == nil {
			sb.WriteString("-,")
		} else {
			writeNetstring(&sb, *block.PreviousHash)
		}
		writeNetstring(&sb, nonce)
		return sb.String()
	}

	previousHash := nullPreviousHash
	if block.PreviousHash != nil {
		previousHash = *block.PreviousHash
	}
	return txs + previousHash + nonce
}

// BlockHash recomputes the hash a block should carry.
func (e Encoding) BlockHash(block *Block) string {
	return HashHex(e.BlockHashInput(block))
}

// HashHex returns the lowercase hex SHA-256 digest of s.
func HashHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func writeNetstring(sb *strings.Builder, field string) {
	sb.WriteString(strconv.Itoa(len(field)))
	sb.WriteByte(':')
	sb.WriteString(field)
	sb.WriteByte(',')
}

// StringifyTransactions renders transactions as compact JSON with the fields in declaration order,
// matching JSON.stringify output.
func StringifyTransactions(txs []Transaction) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range txs {
		if i > 0 {
			sb.WriteByte(',')
		}
		tx := &txs[i]
		sb.WriteString(`{"source":`)
		writeJSONString(&sb, tx.Source)
		sb.WriteString(`,"recipient":`)
		writeJSONString(&sb, tx.Recipient)
		sb.WriteString(`,"amount":`)
		if tx.Amount.isFinite() {
			sb.WriteString(tx.Amount.String())
		} else {
			sb.WriteString("null")
		}
		sb.WriteString(`,"signature":`)
		writeJSONString(&sb, tx.Signature)
		sb.WriteByte('}')
	}
	sb.WriteByte(']')
	return sb.String()
}

// writeJSONString quotes s the way JSON.stringify does: only quotes, backslashes and control
// characters are escaped, everything else is written as is.
func writeJSONString(sb *strings.Builder, s string) {
	const hexDigits = "0123456789abcdef"

	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[c>>4])
				sb.WriteByte(hexDigits[c&0xf])
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
}
