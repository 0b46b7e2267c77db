//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-weierstrass-ecdsa/pkg/ec"
	"github.com/smallyu/go-weierstrass-ecdsa/pkg/ecdsa"
)

// Browser binding for the secp256k1 signer. Big integers cross the JS
// boundary hex-encoded; JSON numbers cannot hold them.

var signer *ecdsa.ECDSA

func main() {
	c := make(chan struct{})

	var err error
	signer, err = ecdsa.New(ec.Secp256k1())
	if err != nil {
		panic(err)
	}

	fmt.Println("Go Weierstrass-ECDSA WASM Initialized")

	js.Global().Set("GoECDSA", map[string]interface{}{
		"GenerateKey": js.FuncOf(GenerateKey),
		"Sign":        js.FuncOf(Sign),
		"Verify":      js.FuncOf(Verify),
	})

	<-c
}

// GenerateKey draws a fresh key pair.
// Returns: JSON {privateKey, publicKeyX, publicKeyY} (hex) or an error string.
func GenerateKey(this js.Value, args []js.Value) interface{} {
	priv, pub, err := signer.GenerateKey()
	if err != nil {
		return fmt.Sprintf("error: key generation failed: %v", err)
	}

	resp := map[string]string{
		"privateKey": priv.Text(16),
		"publicKeyX": pub.X.Text(16),
		"publicKeyY": pub.Y.Text(16),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Sign signs a message.
// Arguments:
// 0: message (string, signed as raw bytes)
// 1: private key (hex string)
// Returns: JSON {r, s} (hex) or an error string.
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (message, privateKeyHex)"
	}

	priv, ok := new(big.Int).SetString(args[1].String(), 16)
	if !ok {
		return "error: invalid private key hex"
	}

	sig, err := signer.Sign([]byte(args[0].String()), priv)
	if err != nil {
		return fmt.Sprintf("error: signing failed: %v", err)
	}

	resp := map[string]string{
		"r": sig.R.Text(16),
		"s": sig.S.Text(16),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Verify checks a signature.
// Arguments:
// 0: message (string)
// 1: JSON {r, s, publicKeyX, publicKeyY} (hex)
// Returns: bool, or an error string for malformed input.
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (message, jsonSignature)"
	}

	type VerifyInput struct {
		R          string `json:"r"`
		S          string `json:"s"`
		PublicKeyX string `json:"publicKeyX"`
		PublicKeyY string `json:"publicKeyY"`
	}

	var input VerifyInput
	if err := json.Unmarshal([]byte(args[1].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	r, okR := new(big.Int).SetString(input.R, 16)
	s, okS := new(big.Int).SetString(input.S, 16)
	x, okX := new(big.Int).SetString(input.PublicKeyX, 16)
	y, okY := new(big.Int).SetString(input.PublicKeyY, 16)
	if !okR || !okS || !okX || !okY {
		return "error: invalid hex field"
	}

	pub, err := ec.NewPoint(x, y, ec.Secp256k1())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	ok, err := signer.Verify(&ecdsa.Signature{R: r, S: s}, []byte(args[0].String()), pub)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return ok
}
