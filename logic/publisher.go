package logic

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"federblog/dal"
	"federblog/dto"
	"federblog/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_publisher.go -package mocks federblog/logic IPublisher

type IPublisher interface {
	Publish(slug string) (*dto.PublishResult, error)
	UnpublishedSlugs() ([]string, error)
}

type publisher struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	posts    IPostStore
	keyStore IKeyStore
	sender   IActivitySender
	metrics  IMetrics
	idb      shared.IdBuilder
}

func NewPublisher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	posts IPostStore,
	keyStore IKeyStore,
	sender IActivitySender,
	metrics IMetrics,
) IPublisher {
	return &publisher{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		posts:    posts,
		keyStore: keyStore,
		sender:   sender,
		metrics:  metrics,
		idb:      shared.IdBuilder{Host: cfg.Host},
	}
}

// makeNote renders a post as the Note we federate: escaped title and excerpt,
// with a read-more link back to the site. Post tags become Hashtag tags.
func (pub *publisher) makeNote(post *Post, published string) *dto.Note {

	user := strings.ToLower(pub.cfg.Actor.User)
	postUrl := pub.idb.PostUrl(post.Slug)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p><strong>%s</strong></p>", html.EscapeString(post.Title)))
	if post.Excerpt != "" {
		sb.WriteString(fmt.Sprintf("<p>%s</p>", html.EscapeString(post.Excerpt)))
	}
	sb.WriteString(fmt.Sprintf("<p><a href=\"%s\" rel=\"nofollow noopener noreferrer\">%s</a></p>",
		postUrl, postUrl))
	for _, tag := range post.Tags {
		sb.WriteString(fmt.Sprintf(" #%s", html.EscapeString(tag)))
	}

	var tags []dto.Tag
	for _, tag := range post.Tags {
		tags = append(tags, dto.Tag{
			Type: "Hashtag",
			Href: pub.idb.TagUrl(tag),
			Name: "#" + tag,
		})
	}
	var ptags *[]dto.Tag
	if len(tags) != 0 {
		ptags = &tags
	}

	return &dto.Note{
		Id:           postUrl,
		Type:         "Note",
		Published:    published,
		AttributedTo: pub.idb.UserUrl(user),
		To:           []string{shared.ActivityPublic},
		Cc:           []string{pub.idb.UserFollowers(user)},
		Content:      sb.String(),
		Url:          postUrl,
		Tag:          ptags,
	}
}

func (pub *publisher) makeCreate(post *Post, published string) *dto.ActivityOut {

	user := strings.ToLower(pub.cfg.Actor.User)
	to := []string{shared.ActivityPublic}
	cc := []string{pub.idb.UserFollowers(user)}

	return &dto.ActivityOut{
		Context:   "https://www.w3.org/ns/activitystreams",
		Id:        pub.idb.PostActivityUrl(post.Slug),
		Type:      "Create",
		Actor:     pub.idb.UserUrl(user),
		Published: published,
		To:        &to,
		Cc:        &cc,
		Object:    pub.makeNote(post, published),
	}
}

func (pub *publisher) Publish(slug string) (*dto.PublishResult, error) {

	post, err := pub.posts.GetPost(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to read post '%s': %v", slug, err)
	}
	if post == nil {
		return &dto.PublishResult{Success: false, Message: "no such post: " + slug}, nil
	}

	existing, err := pub.repo.GetPublishedPost(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.FederatedAt != nil {
		return &dto.PublishResult{Success: false, Message: "post already federated: " + slug}, nil
	}

	user := strings.ToLower(pub.cfg.Actor.User)
	now := time.Now().UTC()
	act := pub.makeCreate(post, now.Format(time.RFC3339))

	err = pub.repo.AddPublishedPost(&dal.PublishedPost{
		Slug:        slug,
		Title:       post.Title,
		ObjectUrl:   pub.idb.PostUrl(slug),
		ActivityUrl: act.Id,
		PublishedAt: now,
	})
	if err != nil {
		return nil, err
	}

	var privKey *rsa.PrivateKey
	if privKey, err = pub.keyStore.GetPrivKey(user); err != nil {
		return nil, err
	}

	targets, err := pub.repo.GetDeliveryTargets()
	if err != nil {
		return nil, err
	}

	deliveredTo := 0
	if len(targets) != 0 {
		deliveredTo = pub.deliverToAll(privKey, user, targets, act)
	}

	// The post counts as federated even if every delivery failed; each target
	// saw one attempt, and redelivery is a manual decision.
	if err = pub.repo.SetPostFederated(slug, now); err != nil {
		return nil, err
	}
	pub.logActivity(act)
	pub.metrics.PostPublished()

	msg := fmt.Sprintf("delivered to %d of %d inboxes", deliveredTo, len(targets))
	pub.logger.Infof("Published '%s': %s", slug, msg)
	return &dto.PublishResult{
		Success:     true,
		Message:     msg,
		DeliveredTo: deliveredTo,
		Attempted:   len(targets),
	}, nil
}

// deliverToAll sends the activity to every inbox concurrently and waits for
// the whole batch. Returns the number of successful deliveries.
func (pub *publisher) deliverToAll(privKey *rsa.PrivateKey, user string,
	targets []string, act *dto.ActivityOut) int {

	keyId := pub.idb.UserKeyId(user)
	results := make([]error, len(targets))
	var wg sync.WaitGroup
	for ix, inboxUrl := range targets {
		wg.Add(1)
		go func(ix int, inboxUrl string) {
			defer wg.Done()
			results[ix] = pub.sender.Send(privKey, keyId, inboxUrl, act)
		}(ix, inboxUrl)
	}
	wg.Wait()

	deliveredTo := 0
	for ix, err := range results {
		if err == nil {
			deliveredTo += 1
			pub.metrics.DeliverySucceeded()
		} else {
			pub.metrics.DeliveryFailed()
			pub.logger.Warnf("Delivery to %s failed: %v", targets[ix], err)
		}
	}
	return deliveredTo
}

func (pub *publisher) logActivity(act *dto.ActivityOut) {
	raw, err := json.Marshal(act)
	if err != nil {
		pub.logger.Errorf("Failed to serialize activity for log: %v", err)
		return
	}
	err = pub.repo.AddActivityLog(&dal.ActivityLogEntry{
		Type:      act.Type,
		Actor:     act.Actor,
		Object:    act.Id,
		Raw:       string(raw),
		Direction: dal.DirectionOutbound,
	})
	if err != nil {
		pub.logger.Errorf("Failed to store activity log entry: %v", err)
	}
}

// UnpublishedSlugs lists local posts that have not been federated yet.
func (pub *publisher) UnpublishedSlugs() ([]string, error) {

	posts, err := pub.posts.GetAllPosts()
	if err != nil {
		return nil, err
	}
	federated, err := pub.repo.GetFederatedPosts()
	if err != nil {
		return nil, err
	}

	done := make(map[string]struct{}, len(federated))
	for _, p := range federated {
		done[p.Slug] = struct{}{}
	}

	res := make([]string, 0)
	for _, p := range posts {
		if _, ok := done[p.Slug]; !ok {
			res = append(res, p.Slug)
		}
	}
	return res, nil
}
