package dal

import (
	"time"
)

// LocalActor is the single identity this deployment federates as. The key
// pair is generated once at bootstrap; PrivKey must never leave the process
// in any response body.
type LocalActor struct {
	Id          int
	CreatedAt   time.Time
	Username    string
	DisplayName string
	Summary     string
	PubKey      string // SPKI, PEM
	PrivKey     string // PKCS8, PEM
}

type Follower struct {
	ActorUrl    string // https://genart.social/users/twilliability
	Inbox       string // https://genart.social/users/twilliability/inbox
	SharedInbox string // https://genart.social/inbox; "" if the peer has none
	AcceptedAt  time.Time
}

type PublishedPost struct {
	Id          int
	Slug        string
	Title       string
	ObjectUrl   string
	ActivityUrl string
	PublishedAt time.Time
	FederatedAt *time.Time // nil until delivery has been attempted
}

type ActivityLogEntry struct {
	Id        int
	Type      string
	Actor     string
	Object    string
	Raw       string
	Direction string // 'inbound' or 'outbound'
	CreatedAt time.Time
}

const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

const (
	InteractionReply    = "reply"
	InteractionLike     = "like"
	InteractionAnnounce = "announce"
)

type Interaction struct {
	Id          int
	Type        string // reply | like | announce
	PostSlug    string
	ActorUrl    string
	ActorName   string
	ActorHandle string
	ActorAvatar string
	Content     string
	ContentHtml string
	ActivityId  string // dedup key
	ObjectId    string
	InReplyTo   string
	CreatedAt   time.Time
}
