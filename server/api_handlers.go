package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"federblog/dal"
	"federblog/dto"
	"federblog/logic"
	"federblog/shared"
)

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	repo      dal.IRepo
	publisher logic.IPublisher
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	repo dal.IRepo,
	publisher logic.IPublisher,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		repo:      repo,
		publisher: publisher,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/publish/{slug}", func(w http.ResponseWriter, r *http.Request) { hg.postPublish(w, r) }},
		{"GET", "/posts/unpublished", func(w http.ResponseWriter, r *http.Request) { hg.getUnpublished(w, r) }},
		{"GET", "/interactions/{slug}", func(w http.ResponseWriter, r *http.Request) { hg.getInteractions(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) postPublish(w http.ResponseWriter, r *http.Request) {

	slug := mux.Vars(r)["slug"]
	hg.logger.Infof("POST /api/publish/%s: Request received", slug)
	obs := hg.metrics.StartWebRequestIn("api/publish")
	defer obs.Finish()

	res, err := hg.publisher.Publish(slug)
	if err != nil {
		hg.logger.Errorf("Failed to publish '%s': %v", slug, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) getUnpublished(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("GET /api/posts/unpublished: Request received")
	obs := hg.metrics.StartWebRequestIn("api/unpublished")
	defer obs.Finish()

	slugs, err := hg.publisher.UnpublishedSlugs()
	if err != nil {
		hg.logger.Errorf("Failed to list unpublished posts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, slugs)
}

func (hg *apiHandlerGroup) getInteractions(w http.ResponseWriter, r *http.Request) {

	slug := mux.Vars(r)["slug"]
	hg.logger.Infof("GET /api/interactions/%s: Request received", slug)
	obs := hg.metrics.StartWebRequestIn("api/interactions")
	defer obs.Finish()

	replies, likes, announces, err := hg.repo.GetInteractionCounts(slug)
	if err != nil {
		hg.logger.Errorf("Failed to get interaction counts for '%s': %v", slug, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	items, err := hg.repo.GetInteractions(slug)
	if err != nil {
		hg.logger.Errorf("Failed to get interactions for '%s': %v", slug, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.InteractionsResp{
		PostSlug: slug,
		Counts:   dto.InteractionCounts{Replies: replies, Likes: likes, Announces: announces},
	}
	resp.Interactions = make([]dto.Interaction, 0, len(items))
	for _, it := range items {
		resp.Interactions = append(resp.Interactions, dto.Interaction{
			Type:        it.Type,
			PostSlug:    it.PostSlug,
			ActorUrl:    it.ActorUrl,
			ActorName:   it.ActorName,
			ActorHandle: it.ActorHandle,
			ActorAvatar: it.ActorAvatar,
			Content:     it.Content,
			ContentHtml: it.ContentHtml,
			ActivityId:  it.ActivityId,
			CreatedAt:   it.CreatedAt,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}
