// Package shared contains constants, errors and validation shared by the key generator, the batch runner and the CLI
package shared

const (
	// Batch bounds
	MinKeyPairs = 1
	MaxKeyPairs = 10

	// CLI
	HelpFlag = "-h"

	// Raw lengths in bytes
	PrivateKeyLength       = 32
	CompressedPubKeyLength = 33
	AddressLength          = 20

	// Hex lengths including the 0x prefix
	HexPrefix                 = "0x"
	PrivateKeyHexLength       = len(HexPrefix) + 2*PrivateKeyLength
	CompressedPubKeyHexLength = len(HexPrefix) + 2*CompressedPubKeyLength
	AddressHexLength          = len(HexPrefix) + 2*AddressLength

	// Output formats
	OutputFormatText = "text"
	OutputFormatJSON = "json"

	// MaxPrivateKeyValue is the secp256k1 group order N. Valid scalars lie in [1, N-1].
	MaxPrivateKeyValue = "0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)
