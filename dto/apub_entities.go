package dto

import (
	"encoding/json"
	"errors"
	"fmt"
)

type WebfingerResp struct {
	Subject string          `json:"subject"`
	Aliases []string        `json:"aliases"`
	Links   []WebfingerLink `json:"links"`
}

type WebfingerLink struct {
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
	Href string `json:"href,omitempty"`
}

type NodeInfoLinks struct {
	Links []WebfingerLink `json:"links"`
}

type NodeInfo struct {
	Version           string           `json:"version"`
	Software          NodeInfoSoftware `json:"software"`
	Protocols         []string         `json:"protocols"`
	Usage             NodeInfoUsage    `json:"usage"`
	OpenRegistrations bool             `json:"openRegistrations"`
}

type NodeInfoSoftware struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type NodeInfoUsage struct {
	Users      NodeInfoUsers `json:"users"`
	LocalPosts uint          `json:"localPosts"`
}

type NodeInfoUsers struct {
	Total          int `json:"total"`
	ActiveMonth    int `json:"activeMonth"`
	ActiveHalfyear int `json:"activeHalfyear"`
}

// UserInfo is the actor document: served for the local actor, and also the
// shape we parse remote actors into. Remote servers vary a lot, so several
// fields tolerate both string and object forms.
type UserInfo struct {
	Context           any           `json:"@context,omitempty"`
	Id                string        `json:"id"`
	Type              string        `json:"type"`
	PreferredUserName string        `json:"preferredUsername"`
	Name              string        `json:"name"`
	Summary           string        `json:"summary"`
	Url               string        `json:"url,omitempty"`
	Published         string        `json:"published,omitempty"`
	Inbox             string        `json:"inbox"`
	Outbox            string        `json:"outbox,omitempty"`
	Followers         string        `json:"followers,omitempty"`
	Endpoints         UserEndpoints `json:"endpoints,omitempty"`
	PublicKey         PublicKey     `json:"publicKey,omitempty"`
	Icon              Image         `json:"icon,omitempty"`
}

type UserEndpoints struct {
	SharedInbox string `json:"sharedInbox,omitempty"`
}

type PublicKey struct {
	Id           string `json:"id"`
	Owner        string `json:"owner"`
	PublicKeyPem string `json:"publicKeyPem"`
}

// Image accepts both {"type":"Image","url":"..."} and a bare URL string,
// both of which occur in the wild for actor icons.
type Image struct {
	Type string `json:"type,omitempty"`
	Url  string `json:"url,omitempty"`
}

func (x *Image) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		x.Url = str
		return nil
	}
	type Y Image
	var y Y
	if err := json.Unmarshal(data, &y); err != nil {
		return err
	}
	*x = Image(y)
	return nil
}

type OrderedCollectionSummary struct {
	Context    any    `json:"@context"`
	Id         string `json:"id"`
	Type       string `json:"type"`
	TotalItems uint   `json:"totalItems"`
	First      string `json:"first,omitempty"`
}

type OrderedCollectionPage struct {
	Context      any    `json:"@context"`
	Id           string `json:"id"`
	Type         string `json:"type"`
	PartOf       string `json:"partOf"`
	TotalItems   uint   `json:"totalItems"`
	OrderedItems []any  `json:"orderedItems"`
}

func getRecipient(raw any) ([]string, error) {
	var res []string
	if raw == nil {
		return res, nil
	}
	if slice, ok := raw.([]interface{}); ok {
		for _, s := range slice {
			if str, ok := s.(string); ok {
				res = append(res, str)
			} else {
				return res, fmt.Errorf("list of recipients must only contain strings")
			}
		}
	} else if str, ok := raw.(string); ok {
		res = []string{str}
	} else {
		return res, fmt.Errorf("to and cc must be single string or array of strings")
	}
	return res, nil
}

type ActivityInBase struct {
	Id     string   `json:"id"`
	Type   string   `json:"type"`
	Actor  string   `json:"actor"`
	To     []string `json:"-"`
	RawTo  any      `json:"to"`
	Cc     []string `json:"-"`
	RawCc  any      `json:"cc"`
	Object any      `json:"object"`
}

func (x *ActivityInBase) UnmarshalJSON(data []byte) error {
	var err error
	type Y ActivityInBase
	var y = (*Y)(x)
	if err = json.Unmarshal(data, y); err != nil {
		return err
	}
	if y.To, err = getRecipient(y.RawTo); err != nil {
		return err
	}
	if y.Cc, err = getRecipient(y.RawCc); err != nil {
		return err
	}
	return nil
}

// ObjectType returns the embedded object's "type" field if the object is a
// JSON object, or "" otherwise.
func (x *ActivityInBase) ObjectType() string {
	if objMap, ok := x.Object.(map[string]interface{}); ok {
		if objTypeStr, ok := objMap["type"].(string); ok {
			return objTypeStr
		}
	}
	return ""
}

// ObjectId returns the activity's object reference: the object itself when
// it is a plain string, or its "id" field when it is a nested object.
func (x *ActivityInBase) ObjectId() string {
	if str, ok := x.Object.(string); ok {
		return str
	}
	if objMap, ok := x.Object.(map[string]interface{}); ok {
		if idStr, ok := objMap["id"].(string); ok {
			return idStr
		}
	}
	return ""
}

type ActivityIn[T any] struct {
	Id     string   `json:"id"`
	Type   string   `json:"type"`
	Actor  string   `json:"actor"`
	To     []string `json:"-"`
	RawTo  any      `json:"to"`
	Cc     []string `json:"-"`
	RawCc  any      `json:"cc"`
	Object T        `json:"object"`
}

func (x *ActivityIn[T]) UnmarshalJSON(data []byte) error {
	var err error
	type Y ActivityIn[T]
	var y = (*Y)(x)
	if err = json.Unmarshal(data, y); err != nil {
		return err
	}
	if y.To, err = getRecipient(y.RawTo); err != nil {
		return err
	}
	if y.Cc, err = getRecipient(y.RawCc); err != nil {
		return err
	}
	return nil
}

type ActivityOut struct {
	Context   any       `json:"@context"`
	Id        string    `json:"id"`
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	Published string    `json:"published,omitempty"`
	To        *[]string `json:"to,omitempty"`
	Cc        *[]string `json:"cc,omitempty"`
	Object    any       `json:"object,omitempty"`
}

type Note struct {
	Context      any      `json:"@context,omitempty"`
	Id           string   `json:"id"`
	Type         string   `json:"type"`
	Published    string   `json:"published"`
	AttributedTo string   `json:"attributedTo"`
	InReplyTo    *string  `json:"inReplyTo,omitempty"`
	To           []string `json:"-"`
	RawTo        any      `json:"to"`
	Cc           []string `json:"-"`
	RawCc        any      `json:"cc"`
	Content      string   `json:"content"`
	Url          string   `json:"url,omitempty"`
	Sensitive    bool     `json:"sensitive"`
	Tag          *[]Tag   `json:"-"`
	RawTag       any      `json:"tag,omitempty"`
}

func (x *Note) UnmarshalJSON(data []byte) error {
	var err error
	type Y Note
	var y = (*Y)(x)
	if err = json.Unmarshal(data, y); err != nil {
		return err
	}
	if y.To, err = getRecipient(y.RawTo); err != nil {
		return err
	}
	if y.Cc, err = getRecipient(y.RawCc); err != nil {
		return err
	}
	if y.Tag, err = getTag(y.RawTag); err != nil {
		return err
	}
	return nil
}

func (x *Note) MarshalJSON() ([]byte, error) {
	type Y Note
	var y = (*Y)(x)
	y.RawTo = y.To
	y.RawCc = y.Cc
	y.RawTag = y.Tag
	return json.Marshal(y)
}

type Tag struct {
	Type string `json:"type"`
	Href string `json:"href"`
	Name string `json:"name"`
}

func getTag(raw any) (*[]Tag, error) {
	// No value is legit
	if raw == nil {
		return nil, nil
	}

	retrieve := func(obj *map[string]interface{}) (*Tag, error) {
		var tag Tag
		var ok bool
		if tag.Href, ok = (*obj)["href"].(string); !ok {
			return nil, errors.New("invalid data in tag's 'href' property; string expected")
		}
		if tag.Name, ok = (*obj)["name"].(string); !ok {
			return nil, errors.New("invalid data in tag's 'name' property; string expected")
		}
		if tag.Type, ok = (*obj)["type"].(string); !ok {
			return nil, errors.New("invalid data in tag's 'type' property; string expected")
		}
		return &tag, nil
	}

	// Single Tag object
	if obj, ok := raw.(map[string]interface{}); ok {
		if tag, err := retrieve(&obj); err != nil {
			return nil, err
		} else {
			return &[]Tag{*tag}, nil
		}
	}
	// Array
	if slice, ok := raw.([]interface{}); ok {
		var res []Tag
		for _, s := range slice {
			if obj, ok := s.(map[string]interface{}); ok {
				if tag, err := retrieve(&obj); err != nil {
					return nil, err
				} else {
					res = append(res, *tag)
				}
			} else {
				return nil, errors.New("unexpected item in 'tag' array; must only contain tag objects")
			}
		}
		return &res, nil
	}
	return nil, errors.New("invalid data in 'tag' property")
}
