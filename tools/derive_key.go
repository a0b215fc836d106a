package main

import (
	"fmt"
	"io"
	"os"

	"ethkeygen/crypto"
)

const envPrivateKey = "KEYGEN_PRIVATE_KEY"

func main() {
	os.Exit(deriveKey(os.Getenv(envPrivateKey), os.Stdout))
}

// deriveKey prints the public key and address for privKey and returns the exit code
func deriveKey(privKey string, w io.Writer) int {
	if privKey == "" {
		fmt.Fprintln(w, "Error: "+envPrivateKey+" environment variable not set")
		fmt.Fprintln(w, "\nUsage:")
		fmt.Fprintln(w, "  export "+envPrivateKey+"=\"your_64_char_hex_key\"")
		fmt.Fprintln(w, "  go run ./tools")
		return 1
	}

	keyBytes, err := crypto.ParsePrivateKey(privKey)
	if err != nil {
		fmt.Fprintf(w, "Error parsing private key: %v\n", err)
		return 1
	}
	defer crypto.Zero(keyBytes)

	kp, err := crypto.DeriveKeyPair(keyBytes)
	if err != nil {
		fmt.Fprintf(w, "Error deriving keys: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "╔════════════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║               SECP256K1 PUBLIC KEY DERIVATION                      ║")
	fmt.Fprintln(w, "╚════════════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Private Key:  %s\n", kp.PrivateKey)
	fmt.Fprintf(w, "Public Key:   %s\n", kp.PublicKey)
	fmt.Fprintf(w, "Address:      %s\n", kp.Address)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Demonstration key only. Do not send funds to this address.")
	return 0
}
