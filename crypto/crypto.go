package crypto

import (
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"ethkeygen/shared"
)

// maxScalarAttempts bounds range-filter re-rolls. A healthy source needs more
// than one attempt with probability below 2^-127.
const maxScalarAttempts = 64

// KeyPair is one generated secp256k1 key pair in printable form
type KeyPair struct {
	PublicKey  string `json:"publicKey"`  // 0x + compressed point (66 hex chars)
	PrivateKey string `json:"privateKey"` // 0x + scalar (64 hex chars)
	Address    string `json:"address"`    // EIP-55 Ethereum address
}

// String renders the pair as a single-line record
func (kp *KeyPair) String() string {
	return fmt.Sprintf("{ publicKey: '%s', privateKey: '%s' }", kp.PublicKey, kp.PrivateKey)
}

// IsValidScalar reports whether b is a 32-byte big-endian scalar in [1, N-1]
func IsValidScalar(b []byte) bool {
	if len(b) != shared.PrivateKeyLength {
		return false
	}
	var s btcec.ModNScalar
	overflow := s.SetByteSlice(b)
	return !overflow && !s.IsZero()
}

// GeneratePrivateKey reads a 32-byte scalar from r.
// With filter set, scalars outside [1, N-1] are discarded and re-read; the
// number of discarded scalars is returned alongside the key.
func GeneratePrivateKey(r io.Reader, filter bool) ([]byte, int, error) {
	rejected := 0
	for attempt := 0; attempt < maxScalarAttempts; attempt++ {
		key := make([]byte, shared.PrivateKeyLength)
		if _, err := io.ReadFull(r, key); err != nil {
			return nil, rejected, shared.ErrRandomSource(err)
		}
		if !filter || IsValidScalar(key) {
			return key, rejected, nil
		}
		clear(key)
		rejected++
	}
	return nil, rejected, shared.ErrRandomSource(fmt.Errorf("no valid scalar after %d attempts", maxScalarAttempts))
}

// DeriveKeyPair computes the compressed public key and Ethereum address for privateKey.
// The result depends only on privateKey.
func DeriveKeyPair(privateKey []byte) (*KeyPair, error) {
	if len(privateKey) != shared.PrivateKeyLength {
		return nil, shared.ErrInvalidKeyLength(len(privateKey))
	}
	if !IsValidScalar(privateKey) {
		return nil, shared.ErrScalarOutOfRange()
	}

	priv, pub := btcec.PrivKeyFromBytes(privateKey)
	defer priv.Zero()

	return &KeyPair{
		PublicKey:  hexutil.Encode(pub.SerializeCompressed()),
		PrivateKey: hexutil.Encode(privateKey),
		Address:    ethcrypto.PubkeyToAddress(*pub.ToECDSA()).Hex(),
	}, nil
}

// ParsePrivateKey decodes a 64 hex character private key, with or without 0x
func ParsePrivateKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, shared.HexPrefix) {
		s = shared.HexPrefix + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, shared.ErrInvalidKeyFormat(err)
	}
	if len(b) != shared.PrivateKeyLength {
		return nil, shared.ErrInvalidKeyLength(len(b))
	}
	return b, nil
}

// Zero overwrites secret material in place
func Zero(b []byte) {
	clear(b)
}
