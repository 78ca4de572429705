package logic

import (
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-fed/httpsig"
)

// HTTP message signatures per draft-cavage: the canonical string covers
// (request-target), host, date, and digest when a body is present.

const sigAlgoDefault = "rsa-sha256"

var reSigPart = regexp.MustCompile(`(\w+)="([^"]+)"`)

// SignedHeaders carries everything a signed request must put on the wire.
// Date is the exact value the signature covers; sending any other date is a
// verification failure on the peer's side.
type SignedHeaders struct {
	Host      string
	Date      string
	Digest    string
	Signature string
}

type SignatureData struct {
	KeyId     string
	Algorithm string
	Headers   []string
	Signature string
}

// ParseSignatureHeader extracts the key="value" pairs of a Signature header.
// Returns nil if keyId, signature or headers is absent; algorithm defaults
// to rsa-sha256 when omitted.
func ParseSignatureHeader(header string) *SignatureData {
	parts := map[string]string{}
	for _, groups := range reSigPart.FindAllStringSubmatch(header, -1) {
		parts[groups[1]] = groups[2]
	}
	if parts["keyId"] == "" || parts["signature"] == "" || parts["headers"] == "" {
		return nil
	}
	algo := parts["algorithm"]
	if algo == "" {
		algo = sigAlgoDefault
	}
	return &SignatureData{
		KeyId:     parts["keyId"],
		Algorithm: algo,
		Headers:   strings.Split(parts["headers"], " "),
		Signature: parts["signature"],
	}
}

// Digest computes the Digest header value for a request body.
func Digest(body []byte) string {
	sum := sha256.Sum256(body)
	return "SHA-256=" + base64.StdEncoding.EncodeToString(sum[:])
}

// SignRequest signs req in place: it adds the Digest header when body is
// non-nil, and the Signature header. The request must already carry host and
// date headers.
func SignRequest(privKey *rsa.PrivateKey, keyId string, req *http.Request, body []byte) error {
	headers := []string{httpsig.RequestTarget, "host", "date"}
	if body != nil {
		headers = append(headers, "digest")
	}
	signer, _, err := httpsig.NewSigner(
		[]httpsig.Algorithm{httpsig.RSA_SHA256},
		httpsig.DigestSha256,
		headers,
		httpsig.Signature,
		0)
	if err != nil {
		return err
	}
	return signer.SignRequest(privKey, keyId, req, body)
}

// Sign builds the signed header set for a request without performing it.
func Sign(method, rawUrl string, privKey *rsa.PrivateKey, keyId string, body []byte) (*SignedHeaders, error) {

	parsed, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid url: %v", rawUrl)
	}

	req, err := http.NewRequest(method, rawUrl, nil)
	if err != nil {
		return nil, err
	}
	dateStr := time.Now().UTC().Format(http.TimeFormat)
	req.Header.Set("host", parsed.Host)
	req.Header.Set("date", dateStr)

	if err = SignRequest(privKey, keyId, req, body); err != nil {
		return nil, err
	}

	return &SignedHeaders{
		Host:      parsed.Host,
		Date:      dateStr,
		Digest:    req.Header.Get("Digest"),
		Signature: req.Header.Get("Signature"),
	}, nil
}

// Verify checks a signature against the exact headers received. The header
// names listed in sigData are looked up case-insensitively; a missing listed
// header fails closed, as does any cryptographic mismatch.
func Verify(method, path string, headers http.Header, pubKey *rsa.PublicKey, sigData *SignatureData) bool {

	if sigData == nil || sigData.Algorithm != sigAlgoDefault {
		return false
	}

	req := &http.Request{
		Method: method,
		URL:    &url.URL{Path: path},
		Header: headers.Clone(),
	}
	req.Host = headers.Get("Host")
	req.Header.Set("Signature", fmt.Sprintf(`keyId="%s",algorithm="%s",headers="%s",signature="%s"`,
		sigData.KeyId, sigData.Algorithm, strings.Join(sigData.Headers, " "), sigData.Signature))

	verifier, err := httpsig.NewVerifier(req)
	if err != nil {
		return false
	}
	return verifier.Verify(pubKey, httpsig.RSA_SHA256) == nil
}
