package dto

import "time"

type PublishResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	DeliveredTo int    `json:"delivered_to"`
	Attempted   int    `json:"attempted"`
}

type InteractionsResp struct {
	PostSlug     string            `json:"post_slug"`
	Counts       InteractionCounts `json:"counts"`
	Interactions []Interaction     `json:"interactions"`
}

type InteractionCounts struct {
	Replies   uint `json:"replies"`
	Likes     uint `json:"likes"`
	Announces uint `json:"announces"`
}

type Interaction struct {
	Type        string    `json:"type"`
	PostSlug    string    `json:"post_slug"`
	ActorUrl    string    `json:"actor_url"`
	ActorName   string    `json:"actor_name,omitempty"`
	ActorHandle string    `json:"actor_handle,omitempty"`
	ActorAvatar string    `json:"actor_avatar,omitempty"`
	Content     string    `json:"content,omitempty"`
	ContentHtml string    `json:"content_html,omitempty"`
	ActivityId  string    `json:"activity_id"`
	CreatedAt   time.Time `json:"created_at"`
}
