package logic

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"federblog/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_post_store.go -package mocks federblog/logic IPostStore

const excerptMaxLen = 200

// Post is a local markdown post as seen by the federation engine. Rendering
// to HTML happens elsewhere; the engine only needs metadata and an excerpt.
type Post struct {
	Slug    string
	Title   string
	Date    time.Time
	Tags    []string
	Content string
	Excerpt string
}

type IPostStore interface {
	GetPost(slug string) (*Post, error)
	GetAllPosts() ([]*Post, error)
}

type postStore struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewPostStore(cfg *shared.Config, logger shared.ILogger) IPostStore {
	return &postStore{cfg, logger}
}

type frontMatter struct {
	Title string   `yaml:"title"`
	Date  string   `yaml:"date"`
	Tags  []string `yaml:"tags"`
}

var (
	reHeading  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	reBold     = regexp.MustCompile(`\*\*|__`)
	reEmphasis = regexp.MustCompile(`[*_]`)
	reCode     = regexp.MustCompile("`{1,3}[^`]*`{1,3}")
	reLink     = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	reNewlines = regexp.MustCompile(`\n+`)
)

func (ps *postStore) GetPost(slug string) (*Post, error) {

	fn := filepath.Join(ps.cfg.ContentDir, slug+".md")
	raw, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	fm, content := splitFrontMatter(string(raw))

	var meta frontMatter
	if fm != "" {
		if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
			ps.logger.Warnf("Invalid front matter in '%s': %v", fn, err)
		}
	}

	title := meta.Title
	if title == "" {
		title = slug
	}

	return &Post{
		Slug:    slug,
		Title:   title,
		Date:    parsePostDate(meta.Date),
		Tags:    meta.Tags,
		Content: content,
		Excerpt: extractExcerpt(content),
	}, nil
}

func (ps *postStore) GetAllPosts() ([]*Post, error) {

	entries, err := os.ReadDir(ps.cfg.ContentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Post{}, nil
		}
		return nil, err
	}

	res := make([]*Post, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		post, err := ps.GetPost(slug)
		if err != nil || post == nil {
			continue
		}
		res = append(res, post)
	}

	// Date desc, slug desc for a stable order within one day
	sort.Slice(res, func(i, j int) bool {
		if !res[i].Date.Equal(res[j].Date) {
			return res[i].Date.After(res[j].Date)
		}
		return res[i].Slug > res[j].Slug
	})

	return res, nil
}

func splitFrontMatter(raw string) (fm, content string) {
	if !strings.HasPrefix(raw, "---\n") {
		return "", raw
	}
	rest := raw[4:]
	endIx := strings.Index(rest, "\n---")
	if endIx == -1 {
		return "", raw
	}
	fm = rest[:endIx]
	content = rest[endIx+4:]
	content = strings.TrimPrefix(content, "\n")
	return
}

func parsePostDate(str string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}

// extractExcerpt strips markdown syntax and caps the plain text.
func extractExcerpt(content string) string {
	text := content
	text = reHeading.ReplaceAllString(text, "")
	text = reCode.ReplaceAllString(text, "")
	text = reLink.ReplaceAllString(text, "$1")
	text = reBold.ReplaceAllString(text, "")
	text = reEmphasis.ReplaceAllString(text, "")
	text = reNewlines.ReplaceAllString(text, " ")
	return shared.TruncateWithEllipsis(strings.TrimSpace(text), excerptMaxLen)
}
