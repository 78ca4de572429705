package test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"federblog/dal"
	"federblog/shared"
	"federblog/test/mocks"
)

// These tests run against a real sqlite database in a temp dir; the queries
// under test carry behavior the mocks cannot stand in for.
func setupRepoTest(t *testing.T) (*gomock.Controller, dal.IRepo) {

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	stubLogger(mockLogger)

	cfg := &shared.Config{
		Host:   siteHost,
		DbFile: filepath.Join(t.TempDir(), "test.db"),
	}
	repo := dal.NewRepo(cfg, mockLogger)
	repo.InitUpdateDb()

	return ctrl, repo
}

func Test_Repo_DeliveryTargets_SharedInboxDeduped(t *testing.T) {

	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC().Truncate(time.Second)
	sharedInbox := "https://genart.social/inbox"
	assert.Nil(t, repo.AddFollower(&dal.Follower{
		ActorUrl:    "https://genart.social/users/twilliability",
		Inbox:       "https://genart.social/users/twilliability/inbox",
		SharedInbox: sharedInbox,
		AcceptedAt:  now,
	}))
	assert.Nil(t, repo.AddFollower(&dal.Follower{
		ActorUrl:    "https://genart.social/users/june",
		Inbox:       "https://genart.social/users/june/inbox",
		SharedInbox: sharedInbox,
		AcceptedAt:  now,
	}))

	targets, err := repo.GetDeliveryTargets()

	assert.Nil(t, err)
	assert.Equal(t, []string{sharedInbox}, targets)

	// A follower without a shared inbox falls back to its direct inbox
	assert.Nil(t, repo.AddFollower(&dal.Follower{
		ActorUrl:   "https://mellow.cafe/users/ash",
		Inbox:      "https://mellow.cafe/users/ash/inbox",
		AcceptedAt: now,
	}))

	targets, err = repo.GetDeliveryTargets()

	assert.Nil(t, err)
	assert.Equal(t, 2, len(targets))
	assert.Contains(t, targets, sharedInbox)
	assert.Contains(t, targets, "https://mellow.cafe/users/ash/inbox")
}

func Test_Repo_Interactions_DuplicateActivityId_NoOp(t *testing.T) {

	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	it := dal.Interaction{
		Type:       dal.InteractionLike,
		PostSlug:   "first-post",
		ActorUrl:   "https://stardust.community/users/pixie",
		ActivityId: "https://stardust.community/30988421",
		ObjectId:   "https://" + siteHost + "/posts/first-post",
	}

	isNew, err := repo.AddInteractionIfNew(&it)
	assert.Nil(t, err)
	assert.True(t, isNew)

	isNew, err = repo.AddInteractionIfNew(&it)
	assert.Nil(t, err)
	assert.False(t, isNew)

	items, err := repo.GetInteractions("first-post")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(items))

	_, likes, _, err := repo.GetInteractionCounts("first-post")
	assert.Nil(t, err)
	assert.Equal(t, uint(1), likes)
}

func Test_Repo_SetPostFederated_OnlyOnce(t *testing.T) {

	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	published := time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)
	assert.Nil(t, repo.AddPublishedPost(&dal.PublishedPost{
		Slug:        "first-post",
		Title:       "First post",
		ObjectUrl:   "https://" + siteHost + "/posts/first-post",
		ActivityUrl: "https://" + siteHost + "/posts/first-post#activity",
		PublishedAt: published,
	}))

	post, err := repo.GetPublishedPost("first-post")
	assert.Nil(t, err)
	assert.NotNil(t, post)
	assert.Nil(t, post.FederatedAt)

	when1 := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	assert.Nil(t, repo.SetPostFederated("first-post", when1))

	post, err = repo.GetPublishedPost("first-post")
	assert.Nil(t, err)
	assert.NotNil(t, post.FederatedAt)
	assert.True(t, post.FederatedAt.Equal(when1))

	// A second stamp must not move the timestamp
	when2 := when1.Add(time.Hour)
	assert.Nil(t, repo.SetPostFederated("first-post", when2))

	post, err = repo.GetPublishedPost("first-post")
	assert.Nil(t, err)
	assert.True(t, post.FederatedAt.Equal(when1))
}
