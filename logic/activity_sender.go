package logic

import (
	"bytes"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"federblog/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_activity_sender.go -package mocks federblog/logic IActivitySender

type IActivitySender interface {
	Send(privKey *rsa.PrivateKey, keyId, inboxUrl string, activity any) error
}

const activityTimeoutSec = 10

type activitySender struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
}

func NewActivitySender(cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IActivitySender {
	return &activitySender{cfg, logger, userAgent, metrics}
}

// Send delivers one signed activity to one inbox. A non-2xx response is an
// error; the caller decides whether that is fatal.
func (sender *activitySender) Send(
	privKey *rsa.PrivateKey,
	keyId,
	inboxUrl string,
	activity any,
) error {

	obs := sender.metrics.StartApubRequestOut("post")
	defer obs.Finish()

	parsed, err := url.Parse(inboxUrl)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid inbox url: %v", inboxUrl)
	}

	bodyJson, _ := json.Marshal(activity)
	dateStr := time.Now().UTC().Format(http.TimeFormat)

	req, err := http.NewRequest("POST", inboxUrl, bytes.NewBuffer(bodyJson))
	if err != nil {
		return err
	}
	sender.userAgent.AddUserAgent(req)
	req.Header.Set("Content-Type", "application/activity+json")
	req.Header.Set("host", parsed.Host)
	req.Header.Set("date", dateStr)

	if err = SignRequest(privKey, keyId, req, bodyJson); err != nil {
		return err
	}

	client := http.Client{}
	client.Timeout = time.Second * activityTimeoutSec
	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 300 {
		msg := fmt.Sprintf("got status %s: response: %s", resp.Status, respBody)
		sender.logger.Warnf("Activity POST failed: %s", msg)
		return errors.New(msg)
	}

	return nil
}
