package logic

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"federblog/dal"
	"federblog/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_key_store.go -package mocks federblog/logic IKeyStore

type IKeyStore interface {
	GetPrivKey(user string) (*rsa.PrivateKey, error)
	MakeKeyPair() (pubKey, privKey string, err error)
}

type keyStore struct {
	cfg  *shared.Config
	repo dal.IRepo
}

func NewKeyStore(cfg *shared.Config, repo dal.IRepo) IKeyStore {
	return &keyStore{cfg, repo}
}

func (ks *keyStore) GetPrivKey(user string) (*rsa.PrivateKey, error) {

	privKeyStr, err := ks.repo.GetPrivKey(user)
	if err != nil {
		return nil, err
	}
	if privKeyStr == "" {
		return nil, fmt.Errorf("no private key stored for user '%s'", user)
	}

	block, _ := pem.Decode([]byte(privKeyStr))
	if block == nil {
		return nil, errors.New("stored private key is not valid PEM")
	}
	keyAny, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	privKey, ok := keyAny.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("stored private key is not RSA")
	}
	return privKey, nil
}

// MakeKeyPair generates the actor's 2048-bit RSA key pair: public key in
// SPKI/PEM, private key in PKCS#8/PEM.
func (ks *keyStore) MakeKeyPair() (pubKey, privKey string, err error) {

	var key *rsa.PrivateKey
	key, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", "", err
	}

	keyRaw, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", "", err
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyRaw,
	})

	pubRaw, err := x509.MarshalPKIXPublicKey(key.Public())
	if err != nil {
		return "", "", err
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubRaw,
	})

	return string(pubPEM), string(keyPEM), nil
}
