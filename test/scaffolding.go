package test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"testing"

	"federblog/dto"
	"federblog/shared"
)

const siteHost = "casey.example.com"
const siteUser = "casey"
const siteDisplayName = "Casey Kay"
const siteSummary = "Notes on things I build."

const callerHost = "stardust.community"
const callerName = "pixie"

const publicStream = "https://www.w3.org/ns/activitystreams#Public"

func makeConfig() *shared.Config {
	return &shared.Config{
		Host: siteHost,
		Actor: shared.ActorInfo{
			User:        siteUser,
			DisplayName: siteDisplayName,
			Summary:     siteSummary,
		},
	}
}

// makeKeyPair generates a throwaway RSA key and its public half as PEM, the
// way actor documents carry it.
func makeKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate RSA key: %v", err)
	}
	pubBytes, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	if err != nil {
		t.Fatalf("Failed to marshal public key: %v", err)
	}
	pubPem := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})
	return privKey, string(pubPem)
}

func makeCallerUserInfo(host, name, pubKeyPem string) *dto.UserInfo {
	userUrl := fmt.Sprintf("https://%s/users/%s", host, name)
	return &dto.UserInfo{
		Id:                userUrl,
		Type:              "Person",
		PreferredUserName: name,
		Name:              "Pixie of " + host,
		Inbox:             userUrl + "/inbox",
		Followers:         userUrl + "/followers",
		Endpoints:         dto.UserEndpoints{SharedInbox: fmt.Sprintf("https://%s/inbox", host)},
		PublicKey: dto.PublicKey{
			Id:           userUrl + "#main-key",
			Owner:        userUrl,
			PublicKeyPem: pubKeyPem,
		},
		Icon: dto.Image{Type: "Image", Url: fmt.Sprintf("https://%s/media/%s.png", host, name)},
	}
}

func parseActivityBase(t *testing.T, body string) dto.ActivityInBase {
	var act dto.ActivityInBase
	if err := json.Unmarshal([]byte(body), &act); err != nil {
		t.Fatalf("Failed to parse activity body: %v", err)
	}
	return act
}
