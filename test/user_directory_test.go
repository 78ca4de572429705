package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"federblog/dal"
	"federblog/dto"
	"federblog/logic"
	"federblog/shared"
	"federblog/test/mocks"
)

type udirHarness struct {
	cfg        *shared.Config
	idb        shared.IdBuilder
	mockLogger *mocks.MockILogger
	mockRepo   *mocks.MockIRepo
}

func setupUdirTest(t *testing.T) (*gomock.Controller, *udirHarness, logic.IUserDirectory) {

	ctrl := gomock.NewController(t)

	cfg := makeConfig()
	h := &udirHarness{
		cfg:        cfg,
		idb:        shared.IdBuilder{Host: cfg.Host},
		mockLogger: mocks.NewMockILogger(ctrl),
		mockRepo:   mocks.NewMockIRepo(ctrl),
	}
	stubLogger(h.mockLogger)

	udir := logic.NewUserDirectory(cfg, h.mockLogger, h.mockRepo)

	return ctrl, h, udir
}

func Test_Webfinger_LocalUser(t *testing.T) {

	ctrl, h, udir := setupUdirTest(t)
	defer ctrl.Finish()

	// Casing of the queried handle must not matter
	resp := udir.GetWebfinger("Casey", siteHost)

	assert.NotNil(t, resp)
	assert.Equal(t, "acct:"+siteUser+"@"+siteHost, resp.Subject)
	var selfHref string
	for _, link := range resp.Links {
		if link.Rel == "self" {
			selfHref = link.Href
		}
	}
	assert.Equal(t, h.idb.UserUrl(siteUser), selfHref)
}

func Test_Webfinger_UnknownUserOrHost(t *testing.T) {

	ctrl, _, udir := setupUdirTest(t)
	defer ctrl.Finish()

	assert.Nil(t, udir.GetWebfinger("somebody-else", siteHost))
	assert.Nil(t, udir.GetWebfinger(siteUser, "elsewhere.example"))
}

func Test_UserInfo_Fields(t *testing.T) {

	ctrl, h, udir := setupUdirTest(t)
	defer ctrl.Finish()

	created := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	h.mockRepo.EXPECT().GetLocalActor().Return(&dal.LocalActor{
		Username:    siteUser,
		DisplayName: siteDisplayName,
		Summary:     siteSummary,
		PubKey:      "=== pub key PEM ===",
		CreatedAt:   created,
	}, nil)

	resp := udir.GetUserInfo(siteUser)

	assert.NotNil(t, resp)
	userUrl := h.idb.UserUrl(siteUser)
	assert.Equal(t, userUrl, resp.Id)
	assert.Equal(t, "Person", resp.Type)
	assert.Equal(t, siteUser, resp.PreferredUserName)
	assert.Equal(t, siteDisplayName, resp.Name)
	assert.Equal(t, created.Format(time.RFC3339), resp.Published)
	assert.Equal(t, h.idb.UserInbox(siteUser), resp.Inbox)
	assert.Equal(t, h.idb.SharedInbox(), resp.Endpoints.SharedInbox)
	assert.Equal(t, userUrl+"#main-key", resp.PublicKey.Id)
	assert.Equal(t, userUrl, resp.PublicKey.Owner)
	assert.Equal(t, "=== pub key PEM ===", resp.PublicKey.PublicKeyPem)
}

func Test_UserInfo_UnknownUser(t *testing.T) {

	ctrl, _, udir := setupUdirTest(t)
	defer ctrl.Finish()

	assert.Nil(t, udir.GetUserInfo("somebody-else"))
}

func Test_Followers_SummaryAndPage(t *testing.T) {

	ctrl, h, udir := setupUdirTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetFollowerCount().Return(uint(2), nil)
	h.mockRepo.EXPECT().GetFollowers().Return([]*dal.Follower{
		{ActorUrl: "https://stardust.community/users/pixie"},
		{ActorUrl: "https://genart.social/users/twilliability"},
	}, nil)

	summary := udir.GetFollowersSummary(siteUser)
	page := udir.GetFollowersPage(siteUser)

	collUrl := h.idb.UserFollowers(siteUser)
	assert.NotNil(t, summary)
	assert.Equal(t, uint(2), summary.TotalItems)
	assert.Equal(t, collUrl+"?page=true", summary.First)
	assert.NotNil(t, page)
	assert.Equal(t, collUrl, page.PartOf)
	assert.Equal(t, []any{
		"https://stardust.community/users/pixie",
		"https://genart.social/users/twilliability",
	}, page.OrderedItems)
}

func Test_Outbox_PageRebuildsActivities(t *testing.T) {

	ctrl, h, udir := setupUdirTest(t)
	defer ctrl.Finish()

	published := time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)
	h.mockRepo.EXPECT().GetFederatedPosts().Return([]*dal.PublishedPost{
		{
			Slug:        "first-post",
			ObjectUrl:   h.idb.PostUrl("first-post"),
			ActivityUrl: h.idb.PostActivityUrl("first-post"),
			PublishedAt: published,
		},
	}, nil)

	page := udir.GetOutboxPage(siteUser)

	assert.NotNil(t, page)
	assert.Equal(t, uint(1), page.TotalItems)
	act, ok := page.OrderedItems[0].(dto.ActivityOut)
	assert.True(t, ok)
	assert.Equal(t, "Create", act.Type)
	assert.Equal(t, h.idb.PostActivityUrl("first-post"), act.Id)
	assert.Equal(t, h.idb.UserUrl(siteUser), act.Actor)
	assert.Equal(t, published.Format(time.RFC3339), act.Published)
	assert.Equal(t, h.idb.PostUrl("first-post"), act.Object)
}
