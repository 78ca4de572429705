package logic

import (
	"fmt"
	"strings"
	"time"

	"federblog/dal"
	"federblog/dto"
	"federblog/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_directory.go -package mocks federblog/logic IUserDirectory

type IUserDirectory interface {
	GetWebfinger(user, host string) *dto.WebfingerResp
	GetUserInfo(user string) *dto.UserInfo
	GetFollowersSummary(user string) *dto.OrderedCollectionSummary
	GetFollowersPage(user string) *dto.OrderedCollectionPage
	GetOutboxSummary(user string) *dto.OrderedCollectionSummary
	GetOutboxPage(user string) *dto.OrderedCollectionPage
}

type userDirectory struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
	idb    shared.IdBuilder
}

func NewUserDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
) IUserDirectory {
	return &userDirectory{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
		idb:    shared.IdBuilder{Host: cfg.Host},
	}
}

// isLocalUser is case-insensitive; handles arrive in whatever casing the
// remote server chose.
func (udir *userDirectory) isLocalUser(user string) bool {
	return strings.EqualFold(user, udir.cfg.Actor.User)
}

func (udir *userDirectory) GetWebfinger(user, host string) *dto.WebfingerResp {

	if !udir.isLocalUser(user) || !strings.EqualFold(host, udir.cfg.Host) {
		return nil
	}

	user = strings.ToLower(udir.cfg.Actor.User)
	resp := dto.WebfingerResp{
		Subject: fmt.Sprintf("acct:%s@%s", user, udir.cfg.Host),
		Aliases: []string{
			udir.idb.SiteUrl(),
			udir.idb.UserUrl(user),
		},
		Links: []dto.WebfingerLink{
			{
				Rel:  "http://webfinger.net/rel/profile-page",
				Type: "text/html",
				Href: udir.idb.SiteUrl(),
			},
			{
				Rel:  "self",
				Type: "application/activity+json",
				Href: udir.idb.UserUrl(user),
			},
		},
	}
	return &resp
}

func (udir *userDirectory) GetUserInfo(user string) *dto.UserInfo {

	if !udir.isLocalUser(user) {
		return nil
	}
	actor, err := udir.repo.GetLocalActor()
	if err != nil || actor == nil {
		udir.logger.Errorf("Failed to load local actor: %v", err)
		return nil
	}

	user = strings.ToLower(actor.Username)
	userUrl := udir.idb.UserUrl(user)
	resp := dto.UserInfo{
		Context: []string{
			"https://www.w3.org/ns/activitystreams",
			"https://w3id.org/security/v1",
		},
		Id:                userUrl,
		Type:              "Person",
		PreferredUserName: user,
		Name:              actor.DisplayName,
		Summary:           actor.Summary,
		Url:               udir.idb.SiteUrl(),
		Published:         actor.CreatedAt.Format(time.RFC3339),
		Inbox:             udir.idb.UserInbox(user),
		Outbox:            udir.idb.UserOutbox(user),
		Followers:         udir.idb.UserFollowers(user),
		Endpoints:         dto.UserEndpoints{SharedInbox: udir.idb.SharedInbox()},
		PublicKey: dto.PublicKey{
			Id:           udir.idb.UserKeyId(user),
			Owner:        userUrl,
			PublicKeyPem: actor.PubKey,
		},
	}
	if udir.cfg.Actor.ProfilePic != "" {
		resp.Icon = dto.Image{Type: "Image", Url: udir.cfg.Actor.ProfilePic}
	}
	return &resp
}

func (udir *userDirectory) GetFollowersSummary(user string) *dto.OrderedCollectionSummary {

	if !udir.isLocalUser(user) {
		return nil
	}
	count, err := udir.repo.GetFollowerCount()
	if err != nil {
		udir.logger.Errorf("Failed to get follower count: %v", err)
		return nil
	}

	user = strings.ToLower(user)
	resp := dto.OrderedCollectionSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserFollowers(user),
		Type:       "OrderedCollection",
		TotalItems: count,
		First:      udir.idb.UserFollowers(user) + "?page=true",
	}
	return &resp
}

func (udir *userDirectory) GetFollowersPage(user string) *dto.OrderedCollectionPage {

	if !udir.isLocalUser(user) {
		return nil
	}
	followers, err := udir.repo.GetFollowers()
	if err != nil {
		udir.logger.Errorf("Failed to get followers: %v", err)
		return nil
	}

	user = strings.ToLower(user)
	items := make([]any, 0, len(followers))
	for _, f := range followers {
		items = append(items, f.ActorUrl)
	}
	resp := dto.OrderedCollectionPage{
		Context:      "https://www.w3.org/ns/activitystreams",
		Id:           udir.idb.UserFollowers(user) + "?page=true",
		Type:         "OrderedCollectionPage",
		PartOf:       udir.idb.UserFollowers(user),
		TotalItems:   uint(len(followers)),
		OrderedItems: items,
	}
	return &resp
}

func (udir *userDirectory) GetOutboxSummary(user string) *dto.OrderedCollectionSummary {

	if !udir.isLocalUser(user) {
		return nil
	}
	count, err := udir.repo.GetFederatedPostCount()
	if err != nil {
		udir.logger.Errorf("Failed to get federated post count: %v", err)
		return nil
	}

	user = strings.ToLower(user)
	resp := dto.OrderedCollectionSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserOutbox(user),
		Type:       "OrderedCollection",
		TotalItems: count,
		First:      udir.idb.UserOutbox(user) + "?page=true",
	}
	return &resp
}

// GetOutboxPage rebuilds Create activities from the published posts table.
// Objects are referenced by URL; fetchers dereference them if they care.
func (udir *userDirectory) GetOutboxPage(user string) *dto.OrderedCollectionPage {

	if !udir.isLocalUser(user) {
		return nil
	}
	posts, err := udir.repo.GetFederatedPosts()
	if err != nil {
		udir.logger.Errorf("Failed to get federated posts: %v", err)
		return nil
	}

	user = strings.ToLower(user)
	userUrl := udir.idb.UserUrl(user)
	ccFollowers := []string{udir.idb.UserFollowers(user)}
	items := make([]any, 0, len(posts))
	for _, p := range posts {
		act := dto.ActivityOut{
			Id:        p.ActivityUrl,
			Type:      "Create",
			Actor:     userUrl,
			Published: p.PublishedAt.UTC().Format(time.RFC3339),
			To:        &[]string{shared.ActivityPublic},
			Cc:        &ccFollowers,
			Object:    p.ObjectUrl,
		}
		items = append(items, act)
	}
	resp := dto.OrderedCollectionPage{
		Context:      "https://www.w3.org/ns/activitystreams",
		Id:           udir.idb.UserOutbox(user) + "?page=true",
		Type:         "OrderedCollectionPage",
		PartOf:       udir.idb.UserOutbox(user),
		TotalItems:   uint(len(posts)),
		OrderedItems: items,
	}
	return &resp
}
