package logic

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"strings"

	"federblog/dto"
	"federblog/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_httpsig_checker.go -package mocks federblog/logic IHttpSigChecker

// IHttpSigChecker verifies the HTTP signature of an inbound request against
// the sender's published key. A non-empty problem string means the request
// is bad; a non-nil error means we failed internally.
type IHttpSigChecker interface {
	Check(r *http.Request, body []byte) (*dto.UserInfo, string, error)
}

type httpSigChecker struct {
	logger   shared.ILogger
	resolver IActorResolver
}

func NewHttpSigChecker(logger shared.ILogger, resolver IActorResolver) IHttpSigChecker {
	return &httpSigChecker{logger, resolver}
}

func (chk *httpSigChecker) Check(r *http.Request, body []byte) (*dto.UserInfo, string, error) {

	sigData := ParseSignatureHeader(r.Header.Get("Signature"))
	if sigData == nil {
		return nil, "Missing or invalid 'Signature' header", nil
	}

	// keyId points at the signer's actor document
	actorUrl := sigData.KeyId
	if hashIx := strings.IndexByte(actorUrl, '#'); hashIx != -1 {
		actorUrl = actorUrl[:hashIx]
	}

	senderInfo := chk.resolver.Resolve(actorUrl)
	if senderInfo == nil {
		return nil, fmt.Sprintf("Failed to retrieve actor for keyId: %s", sigData.KeyId), nil
	}

	pubKey, problem := parsePublicKeyPem(senderInfo.PublicKey.PublicKeyPem)
	if problem != "" {
		return nil, problem, nil
	}

	// The digest must match the body we actually received; the signature
	// only covers the Digest header value.
	if digestHdr := r.Header.Get("Digest"); digestHdr != "" && digestHdr != Digest(body) {
		return nil, "Digest header does not match request body", nil
	}

	// The Go http server promotes the Host header into r.Host
	headers := r.Header.Clone()
	if headers.Get("Host") == "" {
		headers.Set("Host", r.Host)
	}

	if !Verify(r.Method, r.URL.Path, headers, pubKey, sigData) {
		return nil, "Incorrect signature", nil
	}

	return senderInfo, "", nil
}

func parsePublicKeyPem(pubKeyStr string) (*rsa.PublicKey, string) {
	block, _ := pem.Decode([]byte(pubKeyStr))
	if block == nil {
		return nil, "Sender's public key is not valid PEM"
	}
	keyAny, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Sprintf("Failed to parse sender's public key: %v", err)
	}
	pubKey, ok := keyAny.(*rsa.PublicKey)
	if !ok {
		return nil, "Sender's public key is not RSA"
	}
	return pubKey, ""
}
