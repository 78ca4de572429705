package test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"federblog/logic"
	"federblog/shared"
	"federblog/test/mocks"
)

func setupPostStoreTest(t *testing.T) (*gomock.Controller, string, logic.IPostStore) {

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	stubLogger(mockLogger)

	contentDir := t.TempDir()
	cfg := &shared.Config{Host: siteHost, ContentDir: contentDir}
	posts := logic.NewPostStore(cfg, mockLogger)

	return ctrl, contentDir, posts
}

func writePostFile(t *testing.T, dir, slug, content string) {
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write post file: %v", err)
	}
}

func Test_PostStore_ParsesFrontMatter(t *testing.T) {

	ctrl, dir, posts := setupPostStoreTest(t)
	defer ctrl.Finish()

	writePostFile(t, dir, "first-post", `---
title: Hello, Fediverse
date: 2025-11-03
tags:
  - meta
  - federation
---
## Welcome

This is the *very first* post, with a [link](https://example.com) and some `+"`code`"+`.
`)

	post, err := posts.GetPost("first-post")

	assert.Nil(t, err)
	assert.NotNil(t, post)
	assert.Equal(t, "first-post", post.Slug)
	assert.Equal(t, "Hello, Fediverse", post.Title)
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), post.Date)
	assert.Equal(t, []string{"meta", "federation"}, post.Tags)
	// Markdown syntax is stripped from the excerpt
	assert.Equal(t, "Welcome This is the very first post, with a link and some .", post.Excerpt)
}

func Test_PostStore_NoFrontMatter(t *testing.T) {

	ctrl, dir, posts := setupPostStoreTest(t)
	defer ctrl.Finish()

	writePostFile(t, dir, "bare-post", "Just some text, nothing else.\n")

	post, err := posts.GetPost("bare-post")

	assert.Nil(t, err)
	assert.NotNil(t, post)
	assert.Equal(t, "bare-post", post.Title)
	assert.Equal(t, "Just some text, nothing else.", post.Excerpt)
}

func Test_PostStore_MissingFile(t *testing.T) {

	ctrl, _, posts := setupPostStoreTest(t)
	defer ctrl.Finish()

	post, err := posts.GetPost("no-such-post")

	assert.Nil(t, err)
	assert.Nil(t, post)
}

func Test_PostStore_AllPosts_SortedNewestFirst(t *testing.T) {

	ctrl, dir, posts := setupPostStoreTest(t)
	defer ctrl.Finish()

	writePostFile(t, dir, "older", "---\ntitle: Older\ndate: 2025-10-01\n---\nOld.\n")
	writePostFile(t, dir, "newer", "---\ntitle: Newer\ndate: 2025-11-03\n---\nNew.\n")
	writePostFile(t, dir, "also-new", "---\ntitle: Also new\ndate: 2025-11-03\n---\nNew too.\n")
	if err := os.WriteFile(filepath.Join(dir, "draft.txt"), []byte("Not markdown, must be skipped.\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	all, err := posts.GetAllPosts()

	assert.Nil(t, err)
	slugs := make([]string, 0, len(all))
	for _, p := range all {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"newer", "also-new", "older"}, slugs)
}

func Test_PostStore_EmptyContentDir(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	stubLogger(mockLogger)

	cfg := &shared.Config{Host: siteHost, ContentDir: "/no/such/dir"}
	posts := logic.NewPostStore(cfg, mockLogger)

	all, err := posts.GetAllPosts()

	assert.Nil(t, err)
	assert.Empty(t, all)
}
