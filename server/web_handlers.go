package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/feeds"

	"federblog/dal"
	"federblog/logic"
	"federblog/shared"
)

type webHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	repo    dal.IRepo
	posts   logic.IPostStore
	idb     shared.IdBuilder
}

func NewWebHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	repo dal.IRepo,
	posts logic.IPostStore,
) IHandlerGroup {
	res := webHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		repo:    repo,
		posts:   posts,
		idb:     shared.IdBuilder{Host: cfg.Host},
	}
	return &res
}

func (hg *webHandlerGroup) Prefix() string {
	return "/feed.xml"
}

func (hg *webHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "", func(w http.ResponseWriter, r *http.Request) { hg.getFeed(w, r) }},
	}
}

func (hg *webHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

// getFeed serves the RSS feed of federated posts.
func (hg *webHandlerGroup) getFeed(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling feed GET: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("feed")
	defer obs.Finish()

	published, err := hg.repo.GetFederatedPosts()
	if err != nil {
		hg.logger.Errorf("Failed to get federated posts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	feed := &feeds.Feed{
		Title:       hg.cfg.Actor.DisplayName,
		Link:        &feeds.Link{Href: hg.idb.SiteUrl()},
		Description: hg.cfg.Actor.Summary,
	}
	for _, pp := range published {
		item := &feeds.Item{
			Title:   pp.Title,
			Link:    &feeds.Link{Href: pp.ObjectUrl},
			Id:      pp.ObjectUrl,
			Created: pp.PublishedAt,
		}
		// Excerpt comes from the content dir; the post may have been removed since
		if post, err := hg.posts.GetPost(pp.Slug); err == nil && post != nil {
			item.Description = post.Excerpt
		}
		feed.Items = append(feed.Items, item)
		if feed.Created.Before(pp.PublishedAt) {
			feed.Created = pp.PublishedAt
		}
	}

	rss, err := feed.ToRss()
	if err != nil {
		hg.logger.Errorf("Failed to render RSS feed: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	fmt.Fprint(w, rss)
}
