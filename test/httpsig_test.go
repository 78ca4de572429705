package test

import (
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"federblog/logic"
	"federblog/test/mocks"
)

func Test_ParseSignatureHeader_FullHeader(t *testing.T) {

	header := `keyId="https://stardust.community/users/pixie#main-key",algorithm="rsa-sha256",` +
		`headers="(request-target) host date digest",signature="c2lnbmF0dXJl"`

	sigData := logic.ParseSignatureHeader(header)

	assert.NotNil(t, sigData)
	assert.Equal(t, "https://stardust.community/users/pixie#main-key", sigData.KeyId)
	assert.Equal(t, "rsa-sha256", sigData.Algorithm)
	assert.Equal(t, []string{"(request-target)", "host", "date", "digest"}, sigData.Headers)
	assert.Equal(t, "c2lnbmF0dXJl", sigData.Signature)
}

func Test_ParseSignatureHeader_AlgorithmDefaults(t *testing.T) {

	header := `keyId="https://stardust.community/users/pixie#main-key",` +
		`headers="(request-target) host date",signature="c2lnbmF0dXJl"`

	sigData := logic.ParseSignatureHeader(header)

	assert.NotNil(t, sigData)
	assert.Equal(t, "rsa-sha256", sigData.Algorithm)
}

func Test_ParseSignatureHeader_MissingParts(t *testing.T) {

	headers := []string{
		"",
		`algorithm="rsa-sha256",headers="host date",signature="c2ln"`,
		`keyId="https://x.example/u/a#main-key",headers="host date"`,
		`keyId="https://x.example/u/a#main-key",signature="c2ln"`,
	}
	for _, header := range headers {
		assert.Nil(t, logic.ParseSignatureHeader(header))
	}
}

func signedInboxHeaders(t *testing.T, body []byte) (http.Header, *logic.SignatureData, *rsa.PrivateKey) {

	privKey, _ := makeKeyPair(t)
	keyId := "https://" + callerHost + "/users/" + callerName + "#main-key"
	sh, err := logic.Sign("POST", "https://"+siteHost+"/inbox", privKey, keyId, body)
	if err != nil {
		t.Fatalf("Failed to sign request: %v", err)
	}

	headers := http.Header{}
	headers.Set("Host", sh.Host)
	headers.Set("Date", sh.Date)
	headers.Set("Digest", sh.Digest)

	sigData := logic.ParseSignatureHeader(sh.Signature)
	if sigData == nil {
		t.Fatal("Signer produced an unparseable Signature header")
	}
	return headers, sigData, privKey
}

func Test_SignVerify_RoundTrip(t *testing.T) {

	body := []byte(`{"type": "Follow"}`)
	privKey, _ := makeKeyPair(t)
	keyId := "https://" + callerHost + "/users/" + callerName + "#main-key"

	sh, err := logic.Sign("POST", "https://"+siteHost+"/inbox", privKey, keyId, body)
	assert.Nil(t, err)
	assert.Equal(t, siteHost, sh.Host)
	assert.Equal(t, logic.Digest(body), sh.Digest)

	headers := http.Header{}
	headers.Set("Host", sh.Host)
	headers.Set("Date", sh.Date)
	headers.Set("Digest", sh.Digest)
	sigData := logic.ParseSignatureHeader(sh.Signature)
	assert.NotNil(t, sigData)
	assert.Equal(t, keyId, sigData.KeyId)

	assert.True(t, logic.Verify("POST", "/inbox", headers, &privKey.PublicKey, sigData))
}

func Test_Verify_WrongKey(t *testing.T) {

	headers, sigData, _ := signedInboxHeaders(t, []byte(`{"type": "Follow"}`))
	otherKey, _ := makeKeyPair(t)

	assert.False(t, logic.Verify("POST", "/inbox", headers, &otherKey.PublicKey, sigData))
}

func Test_Verify_TamperedDate(t *testing.T) {

	headers, sigData, privKey := signedInboxHeaders(t, []byte(`{"type": "Follow"}`))
	headers.Set("Date", "Thu, 01 Jan 1970 00:00:00 GMT")

	assert.False(t, logic.Verify("POST", "/inbox", headers, &privKey.PublicKey, sigData))
}

func Test_Verify_UnsupportedAlgorithm(t *testing.T) {

	headers, sigData, privKey := signedInboxHeaders(t, []byte(`{"type": "Follow"}`))
	sigData.Algorithm = "hs2019"

	assert.False(t, logic.Verify("POST", "/inbox", headers, &privKey.PublicKey, sigData))
}

type sigCheckHarness struct {
	mockLogger   *mocks.MockILogger
	mockResolver *mocks.MockIActorResolver
}

func setupSigCheckTest(t *testing.T) (*gomock.Controller, *sigCheckHarness, logic.IHttpSigChecker) {

	ctrl := gomock.NewController(t)
	h := &sigCheckHarness{
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockResolver: mocks.NewMockIActorResolver(ctrl),
	}
	stubLogger(h.mockLogger)
	checker := logic.NewHttpSigChecker(h.mockLogger, h.mockResolver)
	return ctrl, h, checker
}

// makeSignedRequest builds the inbound request as the router would hand it to
// the handler, signed with a fresh caller key.
func makeSignedRequest(t *testing.T, body []byte) (*http.Request, string, string) {

	privKey, pubPem := makeKeyPair(t)
	callerUrl := "https://" + callerHost + "/users/" + callerName
	keyId := callerUrl + "#main-key"

	sh, err := logic.Sign("POST", "https://"+siteHost+"/inbox", privKey, keyId, body)
	if err != nil {
		t.Fatalf("Failed to sign request: %v", err)
	}

	r := httptest.NewRequest("POST", "https://"+siteHost+"/inbox", strings.NewReader(string(body)))
	r.Header.Set("Date", sh.Date)
	r.Header.Set("Digest", sh.Digest)
	r.Header.Set("Signature", sh.Signature)
	return r, callerUrl, pubPem
}

func Test_SigCheck_Valid(t *testing.T) {

	ctrl, h, checker := setupSigCheckTest(t)
	defer ctrl.Finish()

	body := []byte(`{"type": "Follow"}`)
	r, callerUrl, pubPem := makeSignedRequest(t, body)
	caller := makeCallerUserInfo(callerHost, callerName, pubPem)
	h.mockResolver.EXPECT().Resolve(callerUrl).Return(caller)

	senderInfo, problem, err := checker.Check(r, body)

	assert.Nil(t, err)
	assert.Empty(t, problem)
	assert.Equal(t, caller, senderInfo)
}

func Test_SigCheck_TamperedBody(t *testing.T) {

	ctrl, h, checker := setupSigCheckTest(t)
	defer ctrl.Finish()

	r, callerUrl, pubPem := makeSignedRequest(t, []byte(`{"type": "Follow"}`))
	caller := makeCallerUserInfo(callerHost, callerName, pubPem)
	h.mockResolver.EXPECT().Resolve(callerUrl).Return(caller)

	_, problem, err := checker.Check(r, []byte(`{"type": "Delete"}`))

	assert.Nil(t, err)
	assert.Equal(t, "Digest header does not match request body", problem)
}

func Test_SigCheck_WrongKey(t *testing.T) {

	ctrl, h, checker := setupSigCheckTest(t)
	defer ctrl.Finish()

	body := []byte(`{"type": "Follow"}`)
	r, callerUrl, _ := makeSignedRequest(t, body)
	_, otherPubPem := makeKeyPair(t)
	caller := makeCallerUserInfo(callerHost, callerName, otherPubPem)
	h.mockResolver.EXPECT().Resolve(callerUrl).Return(caller)

	_, problem, err := checker.Check(r, body)

	assert.Nil(t, err)
	assert.Equal(t, "Incorrect signature", problem)
}

func Test_SigCheck_MissingSignatureHeader(t *testing.T) {

	ctrl, _, checker := setupSigCheckTest(t)
	defer ctrl.Finish()

	body := []byte(`{"type": "Follow"}`)
	r := httptest.NewRequest("POST", "https://"+siteHost+"/inbox", strings.NewReader(string(body)))

	_, problem, err := checker.Check(r, body)

	assert.Nil(t, err)
	assert.Contains(t, problem, "Signature")
}

func Test_SigCheck_UnresolvableActor(t *testing.T) {

	ctrl, h, checker := setupSigCheckTest(t)
	defer ctrl.Finish()

	body := []byte(`{"type": "Follow"}`)
	r, callerUrl, _ := makeSignedRequest(t, body)
	h.mockResolver.EXPECT().Resolve(callerUrl).Return(nil)

	_, problem, err := checker.Check(r, body)

	assert.Nil(t, err)
	assert.Contains(t, problem, "Failed to retrieve actor")
}
