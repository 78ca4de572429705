package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"federblog/shared"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks federblog/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetLocalActor() (*LocalActor, error)
	AddLocalActor(actor *LocalActor) error
	GetPrivKey(username string) (string, error)
	AddFollower(flwr *Follower) error
	RemoveFollower(actorUrl string) error
	GetFollowers() ([]*Follower, error)
	GetFollowerCount() (uint, error)
	GetDeliveryTargets() ([]string, error)
	AddPublishedPost(post *PublishedPost) error
	GetPublishedPost(slug string) (*PublishedPost, error)
	GetFederatedPosts() ([]*PublishedPost, error)
	GetFederatedPostCount() (uint, error)
	SetPostFederated(slug string, when time.Time) error
	AddActivityLog(entry *ActivityLogEntry) error
	AddInteractionIfNew(it *Interaction) (isNew bool, err error)
	DeleteInteraction(activityId string) error
	GetInteractions(postSlug string) ([]*Interaction, error)
	GetInteractionCounts(postSlug string) (replies, likes, announces uint, err error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) GetLocalActor() (*LocalActor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, created_at, username, display_name, summary, pubkey, privkey
		FROM local_actor LIMIT 1`)
	var res LocalActor
	err := row.Scan(&res.Id, &res.CreatedAt, &res.Username, &res.DisplayName, &res.Summary,
		&res.PubKey, &res.PrivKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) AddLocalActor(actor *LocalActor) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO local_actor (created_at, username, display_name, summary, pubkey, privkey)
		VALUES(?, ?, ?, ?, ?, ?)`,
		actor.CreatedAt, actor.Username, actor.DisplayName, actor.Summary, actor.PubKey, actor.PrivKey)
	return err
}

func (repo *Repo) GetPrivKey(username string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT privkey FROM local_actor WHERE username=?`, username)
	var res string
	err := row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return res, nil
}

func (repo *Repo) AddFollower(flwr *Follower) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Re-accepting the same Follow replaces the row
	_, err := repo.db.Exec(`INSERT INTO followers (actor_url, inbox, shared_inbox, accepted_at)
		VALUES(?, ?, ?, ?)
		ON CONFLICT(actor_url) DO UPDATE SET inbox=excluded.inbox, shared_inbox=excluded.shared_inbox,
			accepted_at=excluded.accepted_at`,
		flwr.ActorUrl, flwr.Inbox, flwr.SharedInbox, flwr.AcceptedAt)
	return err
}

func (repo *Repo) RemoveFollower(actorUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM followers WHERE actor_url=?`, actorUrl)
	return err
}

func (repo *Repo) GetFollowers() ([]*Follower, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT actor_url, inbox, shared_inbox, accepted_at
		FROM followers ORDER BY accepted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Follower, 0)
	for rows.Next() {
		f := Follower{}
		if err = rows.Scan(&f.ActorUrl, &f.Inbox, &f.SharedInbox, &f.AcceptedAt); err != nil {
			return nil, err
		}
		res = append(res, &f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetFollowerCount() (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM followers`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

// GetDeliveryTargets returns the distinct set of inboxes to deliver to,
// preferring a follower's shared inbox so that peers hosting several of our
// followers receive one copy.
func (repo *Repo) GetDeliveryTargets() ([]string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT DISTINCT
		CASE WHEN shared_inbox<>'' THEN shared_inbox ELSE inbox END
		FROM followers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]string, 0)
	for rows.Next() {
		var target string
		if err = rows.Scan(&target); err != nil {
			return nil, err
		}
		res = append(res, target)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) AddPublishedPost(post *PublishedPost) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO posts (slug, title, object_url, activity_url, published_at)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET title=excluded.title, object_url=excluded.object_url,
			activity_url=excluded.activity_url, published_at=excluded.published_at`,
		post.Slug, post.Title, post.ObjectUrl, post.ActivityUrl, post.PublishedAt)
	return err
}

func (repo *Repo) GetPublishedPost(slug string) (*PublishedPost, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, slug, title, object_url, activity_url, published_at, federated_at
		FROM posts WHERE slug=?`, slug)
	var res PublishedPost
	err := row.Scan(&res.Id, &res.Slug, &res.Title, &res.ObjectUrl, &res.ActivityUrl,
		&res.PublishedAt, &res.FederatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetFederatedPosts() ([]*PublishedPost, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, slug, title, object_url, activity_url, published_at, federated_at
		FROM posts WHERE federated_at IS NOT NULL ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*PublishedPost, 0)
	for rows.Next() {
		p := PublishedPost{}
		err = rows.Scan(&p.Id, &p.Slug, &p.Title, &p.ObjectUrl, &p.ActivityUrl, &p.PublishedAt, &p.FederatedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetFederatedPostCount() (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE federated_at IS NOT NULL`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

// SetPostFederated stamps federated_at; the null check makes the transition
// happen at most once.
func (repo *Repo) SetPostFederated(slug string, when time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET federated_at=? WHERE slug=? AND federated_at IS NULL`,
		when, slug)
	return err
}

func (repo *Repo) AddActivityLog(entry *ActivityLogEntry) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO activity_log (type, actor, object, raw, direction, created_at)
		VALUES(?, ?, ?, ?, ?, ?)`,
		entry.Type, entry.Actor, entry.Object, entry.Raw, entry.Direction, time.Now().UTC())
	return err
}

func (repo *Repo) AddInteractionIfNew(it *Interaction) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO interactions
		(type, post_slug, actor_url, actor_name, actor_handle, actor_avatar,
		 content, content_html, activity_id, object_id, in_reply_to, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.Type, it.PostSlug, it.ActorUrl, it.ActorName, it.ActorHandle, it.ActorAvatar,
		it.Content, it.ContentHtml, it.ActivityId, it.ObjectId, it.InReplyTo, time.Now().UTC())

	if err == nil {
		return
	}

	// Duplicate key: interaction with this activity ID already recorded
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			isNew = false
			err = nil
			return
		}
	}

	return
}

func (repo *Repo) DeleteInteraction(activityId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM interactions WHERE activity_id=?`, activityId)
	return err
}

func (repo *Repo) GetInteractions(postSlug string) ([]*Interaction, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, type, post_slug, actor_url, actor_name, actor_handle,
			actor_avatar, content, content_html, activity_id, object_id, in_reply_to, created_at
		FROM interactions WHERE post_slug=? ORDER BY created_at DESC`, postSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Interaction, 0)
	for rows.Next() {
		it := Interaction{}
		err = rows.Scan(&it.Id, &it.Type, &it.PostSlug, &it.ActorUrl, &it.ActorName, &it.ActorHandle,
			&it.ActorAvatar, &it.Content, &it.ContentHtml, &it.ActivityId, &it.ObjectId, &it.InReplyTo,
			&it.CreatedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &it)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetInteractionCounts(postSlug string) (replies, likes, announces uint, err error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT type, COUNT(*) FROM interactions WHERE post_slug=? GROUP BY type`,
		postSlug)
	if err != nil {
		return 0, 0, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var typ string
		var count uint
		if err = rows.Scan(&typ, &count); err != nil {
			return 0, 0, 0, err
		}
		switch typ {
		case InteractionReply:
			replies = count
		case InteractionLike:
			likes = count
		case InteractionAnnounce:
			announces = count
		}
	}
	if err = rows.Err(); err != nil {
		return 0, 0, 0, err
	}
	return replies, likes, announces, nil
}
