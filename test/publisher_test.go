package test

import (
	"crypto/rsa"
	"errors"
	"strings"
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

type publisherHarness struct {
	cfg          *shared.Config
	idb          shared.IdBuilder
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockPosts    *mocks.MockIPostStore
	mockKeyStore *mocks.MockIKeyStore
	mockSender   *mocks.MockIActivitySender
	mockMetrics  *mocks.MockIMetrics
	privKey      *rsa.PrivateKey
}

func setupPublisherTest(t *testing.T) (*gomock.Controller, *publisherHarness, logic.IPublisher) {

	ctrl := gomock.NewController(t)

	privKey, _ := makeKeyPair(t)
	cfg := makeConfig()
	h := &publisherHarness{
		cfg:          cfg,
		idb:          shared.IdBuilder{Host: cfg.Host},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockPosts:    mocks.NewMockIPostStore(ctrl),
		mockKeyStore: mocks.NewMockIKeyStore(ctrl),
		mockSender:   mocks.NewMockIActivitySender(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		privKey:      privKey,
	}

	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)

	pub := logic.NewPublisher(cfg, h.mockLogger, h.mockRepo, h.mockPosts,
		h.mockKeyStore, h.mockSender, h.mockMetrics)

	return ctrl, h, pub
}

func makeLocalPost(slug string) *logic.Post {
	return &logic.Post{
		Slug:    slug,
		Title:   "Blinkenlights & other distractions",
		Date:    time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		Tags:    []string{"hardware", "retro"},
		Content: "The full story of the blinkenlights.",
		Excerpt: "The full story of the blinkenlights.",
	}
}

// expectHappyPath sets up everything Publish needs besides delivery itself.
func expectHappyPath(h *publisherHarness, slug string, targets []string) {
	h.mockPosts.EXPECT().GetPost(slug).Return(makeLocalPost(slug), nil)
	h.mockRepo.EXPECT().GetPublishedPost(slug).Return(nil, nil)
	h.mockRepo.EXPECT().AddPublishedPost(gomock.Cond(func(x any) bool {
		p, ok := x.(*dal.PublishedPost)
		return ok && p.Slug == slug && p.ObjectUrl == h.idb.PostUrl(slug) &&
			p.ActivityUrl == h.idb.PostActivityUrl(slug)
	})).Return(nil)
	h.mockKeyStore.EXPECT().GetPrivKey(siteUser).Return(h.privKey, nil)
	h.mockRepo.EXPECT().GetDeliveryTargets().Return(targets, nil)
	h.mockRepo.EXPECT().SetPostFederated(slug, gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().AddActivityLog(gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().PostPublished()
}

func Test_Publish_NoSuchPost(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	h.mockPosts.EXPECT().GetPost("nope").Return(nil, nil)

	res, err := pub.Publish("nope")

	assert.Nil(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "no such post")
}

func Test_Publish_AlreadyFederated(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	when := time.Date(2025, 11, 4, 9, 30, 0, 0, time.UTC)
	h.mockPosts.EXPECT().GetPost("first-post").Return(makeLocalPost("first-post"), nil)
	h.mockRepo.EXPECT().GetPublishedPost("first-post").Return(&dal.PublishedPost{
		Slug:        "first-post",
		FederatedAt: &when,
	}, nil)

	res, err := pub.Publish("first-post")

	assert.Nil(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "already federated")
}

func Test_Publish_NoFollowers_StillFederates(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	expectHappyPath(h, "first-post", []string{})

	res, err := pub.Publish("first-post")

	assert.Nil(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.DeliveredTo)
	assert.Equal(t, 0, res.Attempted)
}

func Test_Publish_DeliversToEveryInbox(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	targets := []string{
		"https://stardust.community/inbox",
		"https://genart.social/inbox",
		"https://mellow.cafe/users/june/inbox",
	}
	expectHappyPath(h, "first-post", targets)

	keyId := h.idb.UserKeyId(siteUser)
	h.mockSender.EXPECT().Send(h.privKey, keyId, targets[0], gomock.Any()).Return(nil)
	h.mockSender.EXPECT().Send(h.privKey, keyId, targets[1], gomock.Any()).Return(nil)
	h.mockSender.EXPECT().Send(h.privKey, keyId, targets[2], gomock.Any()).
		Return(errors.New("connection refused"))
	h.mockMetrics.EXPECT().DeliverySucceeded().Times(2)
	h.mockMetrics.EXPECT().DeliveryFailed()

	res, err := pub.Publish("first-post")

	assert.Nil(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.DeliveredTo)
	assert.Equal(t, 3, res.Attempted)
}

func Test_Publish_NoteShape(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	target := "https://stardust.community/inbox"
	expectHappyPath(h, "first-post", []string{target})

	postUrl := h.idb.PostUrl("first-post")
	h.mockSender.EXPECT().Send(h.privKey, h.idb.UserKeyId(siteUser), target,
		gomock.Cond(func(x any) bool {
			act, ok := x.(*dto.ActivityOut)
			if !ok || act.Type != "Create" || act.Id != h.idb.PostActivityUrl("first-post") {
				return false
			}
			if act.Actor != h.idb.UserUrl(siteUser) || (*act.To)[0] != publicStream {
				return false
			}
			note, ok := act.Object.(*dto.Note)
			if !ok || note.Id != postUrl || note.AttributedTo != act.Actor {
				return false
			}
			// Title is HTML-escaped; tags show up both inline and as Hashtag objects
			if !strings.Contains(note.Content, "<strong>Blinkenlights &amp; other distractions</strong>") {
				return false
			}
			if !strings.Contains(note.Content, postUrl) || !strings.Contains(note.Content, "#retro") {
				return false
			}
			if note.Tag == nil || len(*note.Tag) != 2 {
				return false
			}
			return (*note.Tag)[0].Type == "Hashtag" && (*note.Tag)[0].Name == "#hardware"
		})).Return(nil)
	h.mockMetrics.EXPECT().DeliverySucceeded()

	res, err := pub.Publish("first-post")

	assert.Nil(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.DeliveredTo)
}

func Test_UnpublishedSlugs_SkipsFederated(t *testing.T) {

	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	h.mockPosts.EXPECT().GetAllPosts().Return([]*logic.Post{
		makeLocalPost("third-post"),
		makeLocalPost("second-post"),
		makeLocalPost("first-post"),
	}, nil)
	h.mockRepo.EXPECT().GetFederatedPosts().Return([]*dal.PublishedPost{
		{Slug: "first-post"},
	}, nil)

	slugs, err := pub.UnpublishedSlugs()

	assert.Nil(t, err)
	assert.Equal(t, []string{"third-post", "second-post"}, slugs)
}
