// Package ethereum provides the secp256k1 operations used to identify the
// callers of the voting service. An identity is the Ethereum address derived
// from the key that signed a request.
package ethereum

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/Vicen621-Facultad/votacion/util"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the size of an ECDSA signature in bytes (R || S || V).
const SignatureLength = ethcrypto.SignatureLength

// PubKeyLengthBytes is the size of a compressed public key
const PubKeyLengthBytes = 33

// SigningPrefix is the prefix added when hashing
const SigningPrefix = "\u0019Ethereum Signed Message:\n"

// ErrNoPrivateKey is returned when signing with a SignKeys that only holds a public key.
var ErrNoPrivateKey = errors.New("no private key available")

// SignKeys represents an ECDSA pair of keys for signing.
type SignKeys struct {
	Public  ecdsa.PublicKey
	Private ecdsa.PrivateKey
}

// NewSignKeys creates an ECDSA pair of keys for signing.
func NewSignKeys() *SignKeys {
	return &SignKeys{}
}

// Generate generates new keys
func (k *SignKeys) Generate() error {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return err
	}
	k.Private = *key
	k.Public = key.PublicKey
	return nil
}

// AddHexKey imports a private hex key
func (k *SignKeys) AddHexKey(privHex string) error {
	key, err := ethcrypto.HexToECDSA(util.TrimHex(privHex))
	if err != nil {
		return err
	}
	k.Private = *key
	k.Public = key.PublicKey
	return nil
}

// HexString returns the public compressed and private keys as hex strings
func (k *SignKeys) HexString() (string, string) {
	pubHexComp := fmt.Sprintf("%x", ethcrypto.CompressPubkey(&k.Public))
	privHex := fmt.Sprintf("%x", ethcrypto.FromECDSA(&k.Private))
	return pubHexComp, privHex
}

// Address returns the SignKeys ethereum address
func (k *SignKeys) Address() ethcommon.Address {
	return ethcrypto.PubkeyToAddress(k.Public)
}

// Sign signs a message. Message is a normal string (no HexString nor a Hash).
// The returned signature is 65 bytes long, with the recovery id as last byte.
func (k *SignKeys) Sign(message []byte) ([]byte, error) {
	if k.Private.D == nil {
		return nil, ErrNoPrivateKey
	}
	return ethcrypto.Sign(Hash(message), &k.Private)
}

// SignHex is like Sign but returns the signature as a hex string.
func (k *SignKeys) SignHex(message []byte) (string, error) {
	signature, err := k.Sign(message)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(signature), nil
}

// Verify verifies the signature of message was produced by k.
func (k *SignKeys) Verify(message, signature []byte) (bool, error) {
	addr, err := AddrFromSignature(message, signature)
	if err != nil {
		return false, err
	}
	return addr == k.Address(), nil
}

// AddrFromPublicKey obtains the Ethereum address from a hex encoded ECDSA
// public key, compressed or not.
func AddrFromPublicKey(pubHex string) (ethcommon.Address, error) {
	pubBytes, err := hex.DecodeString(util.TrimHex(pubHex))
	if err != nil {
		return ethcommon.Address{}, err
	}
	var pub *ecdsa.PublicKey
	if len(pubBytes) == PubKeyLengthBytes {
		pub, err = ethcrypto.DecompressPubkey(pubBytes)
	} else {
		pub, err = ethcrypto.UnmarshalPubkey(pubBytes)
	}
	if err != nil {
		return ethcommon.Address{}, err
	}
	return ethcrypto.PubkeyToAddress(*pub), nil
}

// PubKeyFromSignature recovers the ECDSA public key that created the signature of a message.
func PubKeyFromSignature(message, signature []byte) (*ecdsa.PublicKey, error) {
	if len(signature) != SignatureLength {
		return nil, fmt.Errorf("signature length not correct (%d)", len(signature))
	}
	// don't modify the caller's slice
	sig := make([]byte, SignatureLength)
	copy(sig, signature)
	if sig[64] > 1 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return nil, errors.New("bad recover ID byte")
	}
	pubKey, err := ethcrypto.SigToPub(Hash(message), sig)
	if err != nil {
		return nil, fmt.Errorf("sigToPub %w", err)
	}
	return pubKey, nil
}

// AddrFromSignature recovers the Ethereum address that created the signature of a message
func AddrFromSignature(message, signature []byte) (ethcommon.Address, error) {
	pub, err := PubKeyFromSignature(message, signature)
	if err != nil {
		return ethcommon.Address{}, err
	}
	return ethcrypto.PubkeyToAddress(*pub), nil
}

// AddrFromHexSignature is like AddrFromSignature but takes a hex encoded signature.
func AddrFromHexSignature(message []byte, sigHex string) (ethcommon.Address, error) {
	signature, err := hex.DecodeString(util.TrimHex(sigHex))
	if err != nil {
		return ethcommon.Address{}, fmt.Errorf("cannot decode signature: %w", err)
	}
	return AddrFromSignature(message, signature)
}

// Hash string data adding Ethereum prefix
func Hash(data []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s%d%s", SigningPrefix, len(data), data)
	return HashRaw(buf.Bytes())
}

// HashRaw hashes a string with no prefix
func HashRaw(data []byte) []byte {
	return ethcrypto.Keccak256(data)
}
