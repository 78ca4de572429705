package shared

import (
	"fmt"
	"net/url"
	"regexp"
)

const ActivityPublic = "https://www.w3.org/ns/activitystreams#Public"

var rePostSlug = regexp.MustCompile(`^/posts/([^/]+)`)

// ParsePostSlug extracts the slug from a local post object URL, such as
// https://host/posts/my-post or https://host/posts/my-post/activity.
// Returns "" if the URL is unparseable or does not point at a post.
func ParsePostSlug(objectUrl string) string {
	parsed, err := url.Parse(objectUrl)
	if err != nil {
		return ""
	}
	groups := rePostSlug.FindStringSubmatch(parsed.Path)
	if groups == nil {
		return ""
	}
	return groups[1]
}

func GetHostName(userUrl string) (string, error) {
	parsedUrl, urlError := url.Parse(userUrl)
	if urlError != nil {
		return "", fmt.Errorf("failed to parse user URL '%s': %v", userUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

type IdBuilder struct {
	Host string
}

func (idb *IdBuilder) SiteUrl() string {
	return fmt.Sprintf("https://%s", idb.Host)
}

func (idb *IdBuilder) SharedInbox() string {
	return fmt.Sprintf("https://%s/inbox", idb.Host)
}

func (idb *IdBuilder) UserUrl(user string) string {
	return fmt.Sprintf("https://%s/users/%s", idb.Host, user)
}

func (idb *IdBuilder) UserKeyId(user string) string {
	return fmt.Sprintf("https://%s/users/%s#main-key", idb.Host, user)
}

func (idb *IdBuilder) UserInbox(user string) string {
	return fmt.Sprintf("https://%s/users/%s/inbox", idb.Host, user)
}

func (idb *IdBuilder) UserOutbox(user string) string {
	return fmt.Sprintf("https://%s/users/%s/outbox", idb.Host, user)
}

func (idb *IdBuilder) UserFollowers(user string) string {
	return fmt.Sprintf("https://%s/users/%s/followers", idb.Host, user)
}

func (idb *IdBuilder) PostUrl(slug string) string {
	return fmt.Sprintf("https://%s/posts/%s", idb.Host, slug)
}

func (idb *IdBuilder) PostActivityUrl(slug string) string {
	return idb.PostUrl(slug) + "#activity"
}

func (idb *IdBuilder) TagUrl(tag string) string {
	return fmt.Sprintf("https://%s/tags/%s", idb.Host, url.PathEscape(tag))
}

func (idb *IdBuilder) AcceptUrl(user string, stamp int64) string {
	return fmt.Sprintf("https://%s/users/%s#accepts/follows/%d", idb.Host, user, stamp)
}
