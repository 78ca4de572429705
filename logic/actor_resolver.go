package logic

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"federblog/dto"
	"federblog/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_resolver.go -package mocks federblog/logic IActorResolver

const apAcceptHeader = "application/activity+json, application/ld+json"

// IActorResolver fetches a remote actor's public profile. Resolution is
// best-effort: any transport failure or non-200 status degrades to nil so
// the surrounding operation can continue with an unknown actor.
type IActorResolver interface {
	Resolve(actorUrl string) *dto.UserInfo
}

type actorResolver struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
}

func NewActorResolver(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent,
	metrics IMetrics) IActorResolver {
	return &actorResolver{cfg, logger, userAgent, metrics}
}

func (ar *actorResolver) Resolve(actorUrl string) *dto.UserInfo {

	obs := ar.metrics.StartApubRequestOut("resolve")
	defer obs.Finish()

	client := &http.Client{Timeout: time.Second * activityTimeoutSec}
	req, err := http.NewRequest("GET", actorUrl, nil)
	if err != nil {
		ar.logger.Infof("Failed to build actor request for '%s': %v", actorUrl, err)
		return nil
	}
	req.Header.Set("Accept", apAcceptHeader)
	ar.userAgent.AddUserAgent(req)

	resp, err := client.Do(req)
	if err != nil {
		ar.logger.Infof("Failed to fetch actor '%s': %v", actorUrl, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ar.logger.Infof("Failed to fetch actor '%s': got status %d", actorUrl, resp.StatusCode)
		return nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		ar.logger.Infof("Failed to read actor response for '%s': %v", actorUrl, err)
		return nil
	}

	var obj dto.UserInfo
	if err = json.Unmarshal(bodyBytes, &obj); err != nil {
		ar.logger.Infof("Failed to parse actor document for '%s': %v", actorUrl, err)
		return nil
	}

	return &obj
}

// DisplayName returns the best available human-readable name of an actor.
func DisplayName(actor *dto.UserInfo) string {
	if actor == nil {
		return ""
	}
	if actor.Name != "" {
		return actor.Name
	}
	return actor.PreferredUserName
}
