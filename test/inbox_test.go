package test

import (
	"crypto/rsa"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"federblog/dal"
	"federblog/dto"
	"federblog/logic"
	"federblog/shared"
	"federblog/test/mocks"
)

type inboxHarness struct {
	cfg          *shared.Config
	idb          shared.IdBuilder
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockResolver *mocks.MockIActorResolver
	mockKeyStore *mocks.MockIKeyStore
	mockSender   *mocks.MockIActivitySender
	mockMetrics  *mocks.MockIMetrics
	privKey      *rsa.PrivateKey
	caller       *dto.UserInfo
	userUrl      string
}

func setupInboxTest(t *testing.T) (*gomock.Controller, *inboxHarness, logic.IInbox) {

	ctrl := gomock.NewController(t)

	privKey, _ := makeKeyPair(t)
	_, callerPubKey := makeKeyPair(t)
	cfg := makeConfig()
	h := &inboxHarness{
		cfg:          cfg,
		idb:          shared.IdBuilder{Host: cfg.Host},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockResolver: mocks.NewMockIActorResolver(ctrl),
		mockKeyStore: mocks.NewMockIKeyStore(ctrl),
		mockSender:   mocks.NewMockIActivitySender(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		privKey:      privKey,
		caller:       makeCallerUserInfo(callerHost, callerName, callerPubKey),
	}
	h.userUrl = h.idb.UserUrl(siteUser)

	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)
	h.mockRepo.EXPECT().AddActivityLog(gomock.Any()).Return(nil).AnyTimes()
	h.mockRepo.EXPECT().GetFollowerCount().Return(uint(1), nil).AnyTimes()

	inbox := logic.NewInbox(cfg, h.mockLogger, h.mockRepo, h.mockResolver,
		h.mockKeyStore, h.mockSender, h.mockMetrics)

	return ctrl, h, inbox
}

func checkAccept(h *inboxHarness, followId string) func(x any) bool {
	return func(x any) bool {
		act, ok := x.(*dto.ActivityOut)
		if !ok || act.Type != "Accept" || act.Actor != h.userUrl {
			return false
		}
		inner, ok := act.Object.(dto.ActivityOut)
		if !ok {
			return false
		}
		return inner.Type == "Follow" && inner.Id == followId &&
			inner.Actor == h.caller.Id && inner.Object == h.userUrl
	}
}

func Test_Inbox_Follow_AddsFollowerAndAccepts(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	followId := fmt.Sprintf("https://%s/20988411", callerHost)
	body := fmt.Sprintf(`{"id": %q, "type": "Follow", "actor": %q, "object": %q}`,
		followId, h.caller.Id, h.userUrl)

	h.mockResolver.EXPECT().Resolve(h.caller.Id).Return(h.caller)
	h.mockRepo.EXPECT().AddFollower(gomock.Cond(func(x any) bool {
		f, ok := x.(*dal.Follower)
		return ok && f.ActorUrl == h.caller.Id && f.Inbox == h.caller.Inbox &&
			f.SharedInbox == h.caller.Endpoints.SharedInbox
	})).Return(nil)
	h.mockKeyStore.EXPECT().GetPrivKey(siteUser).Return(h.privKey, nil)
	h.mockSender.EXPECT().Send(h.privKey, h.idb.UserKeyId(siteUser), h.caller.Inbox,
		gomock.Cond(checkAccept(h, followId))).Return(nil)

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func Test_Inbox_Follow_ForeignObject_Ignored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"id": "https://%s/20988412", "type": "Follow", "actor": %q,
		"object": "https://elsewhere.example/users/somebody"}`, callerHost, h.caller.Id)

	// No resolution, no follower row, no Accept
	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func Test_Inbox_UndoFollow_RemovesFollower(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"id": "https://%s/20988413", "type": "Undo", "actor": %q,
		"object": {"id": "https://%s/20988411", "type": "Follow", "actor": %q, "object": %q}}`,
		callerHost, h.caller.Id, callerHost, h.caller.Id, h.userUrl)

	h.mockRepo.EXPECT().RemoveFollower(h.caller.Id).Return(nil)

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func Test_Inbox_UndoLike_DeletesInteraction(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	likeId := fmt.Sprintf("https://%s/30988421", callerHost)
	body := fmt.Sprintf(`{"id": "https://%s/20988414", "type": "Undo", "actor": %q,
		"object": {"id": %q, "type": "Like", "actor": %q, "object": %q}}`,
		callerHost, h.caller.Id, likeId, h.caller.Id, h.idb.PostUrl("first-post"))

	h.mockRepo.EXPECT().DeleteInteraction(likeId).Return(nil)

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func Test_Inbox_UndoLike_NoObjectId_Ignored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	// No id on the undone object: nothing may be deleted
	body := fmt.Sprintf(`{"id": "https://%s/20988415", "type": "Undo", "actor": %q,
		"object": {"type": "Like", "actor": %q, "object": %q}}`,
		callerHost, h.caller.Id, h.caller.Id, h.idb.PostUrl("first-post"))

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func testLikeOrAnnounce(t *testing.T, actType, interactionType string) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := fmt.Sprintf("https://%s/30988422", callerHost)
	postUrl := h.idb.PostUrl("first-post")
	body := fmt.Sprintf(`{"id": %q, "type": %q, "actor": %q, "object": %q}`,
		actId, actType, h.caller.Id, postUrl)

	h.mockRepo.EXPECT().GetPublishedPost("first-post").Return(&dal.PublishedPost{Slug: "first-post"}, nil)
	h.mockResolver.EXPECT().Resolve(h.caller.Id).Return(h.caller)
	h.mockRepo.EXPECT().AddInteractionIfNew(gomock.Cond(func(x any) bool {
		it, ok := x.(*dal.Interaction)
		if !ok || it.Type != interactionType || it.PostSlug != "first-post" {
			return false
		}
		moniker := fmt.Sprintf("@%s@%s", callerName, callerHost)
		return it.ActorUrl == h.caller.Id && it.ActivityId == actId &&
			it.ObjectId == postUrl && it.ActorHandle == moniker &&
			it.ActorAvatar == h.caller.Icon.Url
	})).Return(true, nil)
	h.mockMetrics.EXPECT().InteractionReceived(interactionType)

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func Test_Inbox_Like_StoresInteraction(t *testing.T) {
	testLikeOrAnnounce(t, "Like", dal.InteractionLike)
}

func Test_Inbox_Announce_StoresInteraction(t *testing.T) {
	testLikeOrAnnounce(t, "Announce", dal.InteractionAnnounce)
}

func Test_Inbox_Like_Duplicate_NoMetric(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"id": "https://%s/30988423", "type": "Like", "actor": %q, "object": %q}`,
		callerHost, h.caller.Id, h.idb.PostUrl("first-post"))

	h.mockRepo.EXPECT().GetPublishedPost("first-post").Return(&dal.PublishedPost{Slug: "first-post"}, nil)
	h.mockResolver.EXPECT().Resolve(h.caller.Id).Return(h.caller)
	h.mockRepo.EXPECT().AddInteractionIfNew(gomock.Any()).Return(false, nil)

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func Test_Inbox_Like_UnknownPost_Ignored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"id": "https://%s/30988424", "type": "Like", "actor": %q, "object": %q}`,
		callerHost, h.caller.Id, h.idb.PostUrl("never-heard-of-it"))

	h.mockRepo.EXPECT().GetPublishedPost("never-heard-of-it").Return(nil, nil)

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func Test_Inbox_Reply_StoresSanitizedInteraction(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := fmt.Sprintf("https://%s/40988431", callerHost)
	noteId := fmt.Sprintf("https://%s/users/%s/statuses/40988431", callerHost, callerName)
	postUrl := h.idb.PostUrl("first-post")
	content := `<p>Great post! <script>alert(1)</script><a href=\"https://evil.example\">Check this</a></p>`
	body := fmt.Sprintf(`{"id": %q, "type": "Create", "actor": %q,
		"object": {"id": %q, "type": "Note", "attributedTo": %q, "inReplyTo": %q,
			"to": [%q], "content": "%s"}}`,
		actId, h.caller.Id, noteId, h.caller.Id, postUrl, publicStream, content)

	h.mockRepo.EXPECT().GetPublishedPost("first-post").Return(&dal.PublishedPost{Slug: "first-post"}, nil)
	h.mockResolver.EXPECT().Resolve(h.caller.Id).Return(h.caller)
	h.mockRepo.EXPECT().AddInteractionIfNew(gomock.Cond(func(x any) bool {
		it, ok := x.(*dal.Interaction)
		if !ok || it.Type != dal.InteractionReply {
			return false
		}
		if it.PostSlug != "first-post" || it.InReplyTo != postUrl ||
			it.ActivityId != actId || it.ObjectId != noteId {
			return false
		}
		// Script must be gone from both renderings; plain text keeps no markup
		if strings.Contains(it.Content, "script") || strings.Contains(it.ContentHtml, "script") {
			return false
		}
		return !strings.Contains(it.Content, "<") && strings.Contains(it.Content, "Great post!")
	})).Return(true, nil)
	h.mockMetrics.EXPECT().InteractionReceived(dal.InteractionReply)

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func Test_Inbox_Note_NotAReply_Ignored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"id": "https://%s/40988432", "type": "Create", "actor": %q,
		"object": {"id": "https://%s/statuses/40988432", "type": "Note",
			"attributedTo": %q, "to": [%q], "content": "Just tooting into the void"}}`,
		callerHost, h.caller.Id, callerHost, h.caller.Id, publicStream)

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}

func Test_Inbox_UnknownActivityType_Ignored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"id": "https://%s/50988441", "type": "Move", "actor": %q,
		"object": "https://elsewhere.example/users/pixie"}`, callerHost, h.caller.Id)

	err := inbox.HandleActivity(parseActivityBase(t, body), []byte(body))

	assert.Nil(t, err)
}
