package signing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/cenkalti/backoff/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const (
	// PrivateKeySize is the length of a raw private scalar in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the length of a compressed public point in bytes.
	PublicKeySize = secp256k1.PubKeyBytesLenCompressed
	// SignatureSize is the length of an r || s signature in bytes.
	SignatureSize = 64
)

var (
	// ErrInvalidKey is returned when private key material is malformed or outside the valid scalar range.
	ErrInvalidKey = errors.New("invalid private key")

	errRejectedCandidate = errors.New("candidate scalar rejected")
)

// KeyPair holds a private key and its derived public key, both hex encoded.
type KeyPair struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

// GenerateKeyPair draws 32-byte candidates from entropy until one is a valid secp256k1 scalar.
// A failing entropy source cannot be recovered from, so GenerateKeyPair panics when reading from it fails.
func GenerateKeyPair(entropy io.Reader) *KeyPair {
	// a rejected candidate is redrawn immediately; read failures end the loop
	priv, err := backoff.RetryWithData[*secp256k1.PrivateKey](func() (*secp256k1.PrivateKey, error) {
		var candidate [PrivateKeySize]byte
		_, err := io.ReadFull(entropy, candidate[:])
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("read entropy: %w", err))
		}

		priv, ok := parseScalar(candidate[:])
		if !ok {
			return nil, errRejectedCandidate
		}
		return priv, nil
	}, &backoff.ZeroBackOff{})
	if err != nil {
		panic(fmt.Sprintf("signing: broken entropy source: %v", err))
	}

	return &KeyPair{
		PrivateKey: hex.EncodeToString(priv.Serialize()),
		PublicKey:  hex.EncodeToString(priv.PubKey().SerializeCompressed()),
	}
}

// DerivePublicKey returns the hex encoded compressed public key of the given hex private key.
func DerivePublicKey(privateKey string) (string, error) {
	priv, err := decodePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(priv.PubKey().SerializeCompressed()), nil
}

// Sign hashes message with SHA-256 and returns the deterministic (RFC 6979) signature of the digest
// as 128 hex characters.
func Sign(privateKey, message string) (string, error) {
	priv, err := decodePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256([]byte(message))
	sig := ecdsa.Sign(priv, digest[:])
	r, s := sig.R(), sig.S()
	rb, sb := r.Bytes(), s.Bytes()

	out := make([]byte, 0, SignatureSize)
	out = append(out, rb[:]...)
	out = append(out, sb[:]...)
	return hex.EncodeToString(out), nil
}

// Verify reports whether signature is a valid signature by publicKey over the SHA-256 digest of message.
// Malformed keys and signatures are reported the same way as a signature that does not match.
func Verify(publicKey, message, signature string) bool {
	pubBytes, err := hex.DecodeString(publicKey)
	if err != nil || len(pubBytes) != PublicKeySize {
		return false
	}
	pub, err := secp256k1.ParsePubKey(pubBytes)
	if err != nil {
		return false
	}

	sig, ok := decodeSignature(signature)
	if !ok {
		return false
	}

	digest := sha256.Sum256([]byte(message))
	return sig.Verify(digest[:], pub)
}

func decodePrivateKey(privateKey string) (*secp256k1.PrivateKey, error) {
	b, err := hex.DecodeString(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex: %w", ErrInvalidKey, err)
	}
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, PrivateKeySize, len(b))
	}

	priv, ok := parseScalar(b)
	if !ok {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidKey)
	}
	return priv, nil
}

// parseScalar accepts b only if it encodes a value in [1, n-1].
func parseScalar(b []byte) (*secp256k1.PrivateKey, bool) {
	var k secp256k1.ModNScalar
	overflow := k.SetByteSlice(b)
	if overflow || k.IsZero() {
		return nil, false
	}
	return secp256k1.NewPrivateKey(&k), true
}

func decodeSignature(signature string) (*ecdsa.Signature, bool) {
	b, err := hex.DecodeString(signature)
	if err != nil || len(b) != SignatureSize {
		return nil, false
	}

	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(b[:32]) || r.IsZero() {
		return nil, false
	}
	if s.SetByteSlice(b[32:]) || s.IsZero() {
		return nil, false
	}
	// only the low-S form produced by Sign is accepted
	if s.IsOverHalfOrder() {
		return nil, false
	}

	return ecdsa.NewSignature(&r, &s), true
}
