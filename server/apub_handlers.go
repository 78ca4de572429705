package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gorilla/mux"

	"federblog/dal"
	"federblog/dto"
	"federblog/logic"
	"federblog/shared"
)

const hostMetaTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<XRD xmlns="http://docs.oasis-open.org/ns/xri/xrd-1.0">
  <Link rel="lrdd" template="https://%s/.well-known/webfinger?resource={uri}"/>
</XRD>
`

// Groups together the handlers needed to implement an ActivityPub server.
type apubHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	sigChecker logic.IHttpSigChecker
	udir       logic.IUserDirectory
	inbox      logic.IInbox
	repo       dal.IRepo
	idb        shared.IdBuilder
	reResource *regexp.Regexp
}

func NewApubHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	sigChecker logic.IHttpSigChecker,
	udir logic.IUserDirectory,
	ibox logic.IInbox,
	repo dal.IRepo,
) IHandlerGroup {
	res := apubHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		sigChecker: sigChecker,
		udir:       udir,
		inbox:      ibox,
		repo:       repo,
		idb:        shared.IdBuilder{Host: cfg.Host},
	}
	res.reResource = regexp.MustCompile("^acct:([^@]+)@([^@]+)$")
	return &res
}

func (hg *apubHandlerGroup) Prefix() string {
	return ""
}

func (hg *apubHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/.well-known/webfinger", func(w http.ResponseWriter, r *http.Request) { hg.getWebfinger(w, r) }},
		{"GET", "/.well-known/host-meta", func(w http.ResponseWriter, r *http.Request) { hg.getHostMeta(w, r) }},
		{"GET", "/.well-known/nodeinfo", func(w http.ResponseWriter, r *http.Request) { hg.getNodeInfoLinks(w, r) }},
		{"GET", "/nodeinfo/2.0", func(w http.ResponseWriter, r *http.Request) { hg.getNodeInfo(w, r) }},
		{"GET", "/users/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getUser(w, r) }},
		{"GET", "/users/{user}/outbox", func(w http.ResponseWriter, r *http.Request) { hg.getUserOutbox(w, r) }},
		{"GET", "/users/{user}/followers", func(w http.ResponseWriter, r *http.Request) { hg.getUserFollowers(w, r) }},
		{"POST", "/users/{user}/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
		{"POST", "/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
	}
}

func (hg *apubHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *apubHandlerGroup) getWebfinger(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webfinger GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("webfinger")
	defer obs.Finish()

	resourceParam := r.URL.Query().Get("resource")
	if resourceParam == "" {
		hg.logger.Infof("Webfinger: Invalid request; missing 'resource' param")
		writeErrorResponse(w, "Missing 'resource' param", http.StatusBadRequest)
		return
	}
	groups := hg.reResource.FindStringSubmatch(resourceParam)
	if groups == nil {
		hg.logger.Infof("Webfinger: No such resource; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}
	user, host := groups[1], groups[2]

	resp := hg.udir.GetWebfinger(user, host)

	if resp == nil {
		hg.logger.Infof("Webfinger: No such resource; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getHostMeta(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling host-meta GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("host-meta")
	defer obs.Finish()

	w.Header().Set("Content-Type", "application/xrd+xml")
	fmt.Fprintf(w, hostMetaTemplate, hg.cfg.Host)
}

func (hg *apubHandlerGroup) getNodeInfoLinks(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling nodeinfo links GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("nodeinfo")
	defer obs.Finish()

	resp := dto.NodeInfoLinks{
		Links: []dto.WebfingerLink{
			{
				Rel:  "http://nodeinfo.diaspora.software/ns/schema/2.0",
				Href: fmt.Sprintf("https://%s/nodeinfo/2.0", hg.cfg.Host),
			},
		},
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getNodeInfo(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling nodeinfo GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("nodeinfo")
	defer obs.Finish()

	postCount, err := hg.repo.GetFederatedPostCount()
	if err != nil {
		hg.logger.Errorf("Failed to get federated post count: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.NodeInfo{
		Version: "2.0",
		Software: dto.NodeInfoSoftware{
			Name:    "federblog",
			Version: shared.Version,
		},
		Protocols: []string{"activitypub"},
		Usage: dto.NodeInfoUsage{
			Users:      dto.NodeInfoUsers{Total: 1, ActiveMonth: 1, ActiveHalfyear: 1},
			LocalPosts: postCount,
		},
		OpenRegistrations: false,
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getUser(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	if !acceptsJson(r) {
		siteUrl := hg.idb.SiteUrl()
		hg.logger.Infof("No activity+json in accept header; redirecting to: '%s'", siteUrl)
		http.Redirect(w, r, siteUrl, http.StatusSeeOther)
		return
	}

	userInfo := hg.udir.GetUserInfo(userName)

	if userInfo == nil {
		hg.logger.Infof("Info requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	writeApubResponse(hg.logger, w, userInfo)
}

func (hg *apubHandlerGroup) getUserOutbox(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user outbox GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/outbox")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	if r.URL.Query().Get("page") == "true" {
		page := hg.udir.GetOutboxPage(userName)
		if page == nil {
			writeErrorResponse(w, "No such user", http.StatusNotFound)
			return
		}
		writeApubResponse(hg.logger, w, page)
		return
	}
	summary := hg.udir.GetOutboxSummary(userName)
	if summary == nil {
		hg.logger.Infof("Outbox requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeApubResponse(hg.logger, w, summary)
}

func (hg *apubHandlerGroup) getUserFollowers(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user followers GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/followers")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	if r.URL.Query().Get("page") == "true" {
		page := hg.udir.GetFollowersPage(userName)
		if page == nil {
			writeErrorResponse(w, "No such user", http.StatusNotFound)
			return
		}
		writeApubResponse(hg.logger, w, page)
		return
	}
	summary := hg.udir.GetFollowersSummary(userName)
	if summary == nil {
		hg.logger.Infof("Followers requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeApubResponse(hg.logger, w, summary)
}

func (hg *apubHandlerGroup) postInbox(w http.ResponseWriter, r *http.Request) {

	var err error
	hg.logger.Infof("Handling inbox POST: %s", r.URL.Path)
	userName := mux.Vars(r)["user"]

	label := "inbox"
	if userName != "" {
		label = "user/inbox"
	}
	obs := hg.metrics.StartApubRequestIn(label)
	defer obs.Finish()

	if userName != "" && !strings.EqualFold(userName, hg.cfg.Actor.User) {
		hg.logger.Infof("Inbox POST for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}

	// First, parse a rudimentary version of the activity: type, actor, object
	var act dto.ActivityInBase
	if err = json.Unmarshal(bodyBytes, &act); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v: %s", err, string(bodyBytes))
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}

	if hg.cfg.VerifyInboundSigs {
		var senderInfo *dto.UserInfo
		var sigProblem string
		senderInfo, sigProblem, err = hg.sigChecker.Check(r, bodyBytes)
		if err != nil {
			hg.logger.Errorf("Unexpected error trying to verify signature: %v", err)
			writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
			return
		}
		if sigProblem != "" {
			hg.logger.Warnf("Incorrectly signed inbox POST request: %s", sigProblem)
			msg := fmt.Sprintf("Invalid HTTP signature: %s", sigProblem)
			writeErrorResponse(w, msg, http.StatusUnauthorized)
			return
		}
		// Does signer match actor?
		if senderInfo.Id != act.Actor {
			hg.logger.Warnf("Activity signed by %s, but actor is %s", senderInfo.Id, act.Actor)
			writeErrorResponse(w, "Signer does not match actor", http.StatusUnauthorized)
			return
		}
	}

	// Whatever happens while handling, the activity has been accepted
	if err = hg.inbox.HandleActivity(act, bodyBytes); err != nil {
		hg.logger.Errorf("Error handling '%s' activity: %v", act.Type, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	fmt.Fprintln(w, `"Accepted"`)
}
