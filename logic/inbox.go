package logic

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"federblog/dal"
	"federblog/dto"
	"federblog/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_inbox.go -package mocks federblog/logic IInbox

type IInbox interface {
	HandleActivity(actBase dto.ActivityInBase, bodyBytes []byte) error
}

type inbox struct {
	cfg        *shared.Config
	logger     shared.ILogger
	idb        shared.IdBuilder
	repo       dal.IRepo
	resolver   IActorResolver
	keyStore   IKeyStore
	sender     IActivitySender
	metrics    IMetrics
	stripPol   *bluemonday.Policy
	contentPol *bluemonday.Policy
}

func NewInbox(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	resolver IActorResolver,
	keyStore IKeyStore,
	sender IActivitySender,
	metrics IMetrics,
) IInbox {
	return &inbox{
		cfg:        cfg,
		logger:     logger,
		idb:        shared.IdBuilder{Host: cfg.Host},
		repo:       repo,
		resolver:   resolver,
		keyStore:   keyStore,
		sender:     sender,
		metrics:    metrics,
		stripPol:   bluemonday.StrictPolicy(),
		contentPol: bluemonday.UGCPolicy(),
	}
}

// HandleActivity is the single entry point for everything POSTed to an inbox.
// Every activity is logged; the ones we know how to act on get acted on, the
// rest are acknowledged and dropped.
func (ib *inbox) HandleActivity(actBase dto.ActivityInBase, bodyBytes []byte) error {

	ib.logActivity(actBase, bodyBytes)

	switch actBase.Type {
	case "Follow":
		return ib.handleFollow(bodyBytes)
	case "Undo":
		return ib.handleUndo(bodyBytes)
	case "Create":
		if actBase.ObjectType() == "Note" {
			return ib.handleCreateNote(bodyBytes)
		}
		ib.logger.Infof("Ignoring Create with object type '%s'", actBase.ObjectType())
		return nil
	case "Like":
		return ib.handleLikeOrAnnounce(actBase, dal.InteractionLike)
	case "Announce":
		return ib.handleLikeOrAnnounce(actBase, dal.InteractionAnnounce)
	default:
		ib.logger.Infof("Ignoring activity of type '%s' from %s", actBase.Type, actBase.Actor)
		return nil
	}
}

func (ib *inbox) logActivity(actBase dto.ActivityInBase, bodyBytes []byte) {
	err := ib.repo.AddActivityLog(&dal.ActivityLogEntry{
		Type:      actBase.Type,
		Actor:     actBase.Actor,
		Object:    actBase.ObjectId(),
		Raw:       string(bodyBytes),
		Direction: dal.DirectionInbound,
	})
	if err != nil {
		ib.logger.Errorf("Failed to store activity log entry: %v", err)
	}
}

func (ib *inbox) handleFollow(bodyBytes []byte) error {

	var actFollow dto.ActivityIn[string]
	if err := json.Unmarshal(bodyBytes, &actFollow); err != nil {
		return fmt.Errorf("invalid JSON in Follow activity body: %v", err)
	}

	user := strings.ToLower(ib.cfg.Actor.User)
	myUserUrl := ib.idb.UserUrl(user)
	if actFollow.Object != myUserUrl {
		ib.logger.Warnf("Follow for foreign object %s; ignoring", actFollow.Object)
		return nil
	}

	ib.logger.Infof("Handling Follow from %s", actFollow.Actor)

	// We need the follower's inbox to accept, and to deliver posts later
	senderInfo := ib.resolver.Resolve(actFollow.Actor)
	if senderInfo == nil {
		return fmt.Errorf("could not resolve follower actor %s", actFollow.Actor)
	}
	if senderInfo.Inbox == "" {
		return fmt.Errorf("actor %s has no inbox", actFollow.Actor)
	}

	now := time.Now().UTC()
	err := ib.repo.AddFollower(&dal.Follower{
		ActorUrl:    actFollow.Actor,
		Inbox:       senderInfo.Inbox,
		SharedInbox: senderInfo.Endpoints.SharedInbox,
		AcceptedAt:  now,
	})
	if err != nil {
		return err
	}
	ib.updateFollowerGauge()

	privKey, err := ib.keyStore.GetPrivKey(user)
	if err != nil {
		return err
	}

	actAccept := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      ib.idb.AcceptUrl(user, now.UnixMilli()),
		Type:    "Accept",
		Actor:   myUserUrl,
		Object: dto.ActivityOut{
			Id:     actFollow.Id,
			Type:   "Follow",
			Actor:  actFollow.Actor,
			Object: myUserUrl,
		},
	}
	if err = ib.sender.Send(privKey, ib.idb.UserKeyId(user), senderInfo.Inbox, &actAccept); err != nil {
		return fmt.Errorf("failed to send 'Accept' activity: %v", err)
	}

	return nil
}

func (ib *inbox) handleUndo(bodyBytes []byte) error {

	var actUndo dto.ActivityIn[dto.ActivityInBase]
	if err := json.Unmarshal(bodyBytes, &actUndo); err != nil {
		return fmt.Errorf("invalid JSON in Undo activity body: %v", err)
	}

	switch actUndo.Object.Type {
	case "Follow":
		return ib.handleUnfollow(&actUndo)
	case "Like", "Announce":
		// The undone activity's ID is the interaction's dedup key
		if actUndo.Object.Id == "" {
			ib.logger.Infof("Undo %s without object id; ignoring", actUndo.Object.Type)
			return nil
		}
		ib.logger.Infof("Handling Undo %s from %s", actUndo.Object.Type, actUndo.Actor)
		return ib.repo.DeleteInteraction(actUndo.Object.Id)
	default:
		ib.logger.Infof("Ignoring Undo of '%s'", actUndo.Object.Type)
		return nil
	}
}

func (ib *inbox) handleUnfollow(actUndo *dto.ActivityIn[dto.ActivityInBase]) error {

	user := strings.ToLower(ib.cfg.Actor.User)
	myUserUrl := ib.idb.UserUrl(user)
	if actUndo.Object.ObjectId() != myUserUrl {
		ib.logger.Warnf("Undo Follow for foreign object %s; ignoring", actUndo.Object.ObjectId())
		return nil
	}

	ib.logger.Infof("Handling Undo Follow from %s", actUndo.Actor)

	if err := ib.repo.RemoveFollower(actUndo.Actor); err != nil {
		return err
	}
	ib.updateFollowerGauge()
	return nil
}

func (ib *inbox) handleCreateNote(bodyBytes []byte) error {

	var act dto.ActivityIn[dto.Note]
	if err := json.Unmarshal(bodyBytes, &act); err != nil {
		return fmt.Errorf("invalid JSON in Create Note activity body: %v", err)
	}

	if act.Object.InReplyTo == nil {
		ib.logger.Debug("Note is not a reply; ignoring")
		return nil
	}
	slug, err := ib.slugOfPublishedPost(*act.Object.InReplyTo)
	if err != nil {
		return err
	}
	if slug == "" {
		ib.logger.Infof("Reply to unknown object %s; ignoring", *act.Object.InReplyTo)
		return nil
	}

	ib.logger.Infof("Handling reply to '%s' from %s", slug, act.Actor)

	it := dal.Interaction{
		Type:        dal.InteractionReply,
		PostSlug:    slug,
		ActorUrl:    act.Actor,
		Content:     ib.stripPol.Sanitize(act.Object.Content),
		ContentHtml: ib.contentPol.Sanitize(act.Object.Content),
		ActivityId:  act.Id,
		ObjectId:    act.Object.Id,
		InReplyTo:   *act.Object.InReplyTo,
	}
	ib.fillActorMeta(&it)

	isNew, err := ib.repo.AddInteractionIfNew(&it)
	if err != nil {
		return err
	}
	if !isNew {
		ib.logger.Infof("Activity already recorded: %s", act.Id)
		return nil
	}
	ib.metrics.InteractionReceived(dal.InteractionReply)
	return nil
}

func (ib *inbox) handleLikeOrAnnounce(actBase dto.ActivityInBase, interactionType string) error {

	slug, err := ib.slugOfPublishedPost(actBase.ObjectId())
	if err != nil {
		return err
	}
	if slug == "" {
		ib.logger.Infof("%s of unknown object %s; ignoring", actBase.Type, actBase.ObjectId())
		return nil
	}

	ib.logger.Infof("Handling %s of '%s' from %s", actBase.Type, slug, actBase.Actor)

	it := dal.Interaction{
		Type:       interactionType,
		PostSlug:   slug,
		ActorUrl:   actBase.Actor,
		ActivityId: actBase.Id,
		ObjectId:   actBase.ObjectId(),
	}
	ib.fillActorMeta(&it)

	isNew, err := ib.repo.AddInteractionIfNew(&it)
	if err != nil {
		return err
	}
	if !isNew {
		ib.logger.Infof("Activity already recorded: %s", actBase.Id)
		return nil
	}
	ib.metrics.InteractionReceived(interactionType)
	return nil
}

// slugOfPublishedPost maps an object URL to the slug of a post we have
// actually federated; "" means the object is not one of ours.
func (ib *inbox) slugOfPublishedPost(objectUrl string) (string, error) {
	slug := shared.ParsePostSlug(objectUrl)
	if slug == "" {
		return "", nil
	}
	post, err := ib.repo.GetPublishedPost(slug)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", nil
	}
	return slug, nil
}

// fillActorMeta decorates an interaction with the sender's profile. Display
// data is best effort; the interaction is stored either way.
func (ib *inbox) fillActorMeta(it *dal.Interaction) {
	actor := ib.resolver.Resolve(it.ActorUrl)
	if actor == nil {
		return
	}
	it.ActorName = DisplayName(actor)
	it.ActorAvatar = actor.Icon.Url
	if host, err := shared.GetHostName(actor.Id); err == nil && actor.PreferredUserName != "" {
		it.ActorHandle = fmt.Sprintf("@%s@%s", actor.PreferredUserName, host)
	}
}

func (ib *inbox) updateFollowerGauge() {
	if count, err := ib.repo.GetFollowerCount(); err == nil {
		ib.metrics.TotalFollowers(int(count))
	}
}
