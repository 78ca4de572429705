package shared

import (
	"fmt"
	"net/http"
)

const (
	Version           = "0.2.0"
	userAgentTemplate = "FederBlog/%s (+https://%s)"
)

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	return &userAgent{
		userAgentValue: fmt.Sprintf(userAgentTemplate, Version, cfg.Host),
	}
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Add("User-Agent", ua.userAgentValue)
}
