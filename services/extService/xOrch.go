package extService

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"capperRanksBot/core"
	"capperRanksBot/models/external"
	"capperRanksBot/services/common"
)

const xAPIBase = "https://api.twitter.com/2"

// Post is one capper post with its attached image URLs resolved.
type Post struct {
	ID        string
	Text      string
	CreatedAt time.Time
	MediaURLs []string
}

// ResolveUser looks up an X account by handle.
func ResolveUser(cfg *core.Config, username string) (*external.X_UserData, error) {
	requestUrl := fmt.Sprintf("%s/users/by/username/%s", xAPIBase, url.PathEscape(username))

	resp, err := common.XWrapper(cfg.XBearerToken, requestUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var user external.X_User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	if user.Data.ID == "" {
		return nil, fmt.Errorf("no X user found for username %s", username)
	}
	return &user.Data, nil
}

// GetNewPosts returns a user's posts newer than sinceID, oldest first so
// callers can process and checkpoint in publication order. A nil sinceID
// fetches the most recent page.
func GetNewPosts(cfg *core.Config, userID string, sinceID *string) ([]Post, error) {
	requestUrl := fmt.Sprintf(
		"%s/users/%s/tweets?max_results=25&tweet.fields=created_at,attachments&expansions=attachments.media_keys&media.fields=url,preview_image_url",
		xAPIBase, url.PathEscape(userID))
	if sinceID != nil && *sinceID != "" {
		requestUrl += "&since_id=" + url.QueryEscape(*sinceID)
	}

	resp, err := common.XWrapper(cfg.XBearerToken, requestUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var timeline external.X_Timeline
	if err := json.NewDecoder(resp.Body).Decode(&timeline); err != nil {
		return nil, err
	}

	mediaByKey := make(map[string]external.X_Media, len(timeline.Includes.Media))
	for _, m := range timeline.Includes.Media {
		mediaByKey[m.MediaKey] = m
	}

	posts := make([]Post, 0, len(timeline.Data))
	for i := len(timeline.Data) - 1; i >= 0; i-- {
		tweet := timeline.Data[i]
		post := Post{ID: tweet.ID, Text: tweet.Text, CreatedAt: tweet.CreatedAt}
		for _, key := range tweet.Attachments.MediaKeys {
			media, ok := mediaByKey[key]
			if !ok {
				continue
			}
			if media.URL != "" {
				post.MediaURLs = append(post.MediaURLs, media.URL)
			} else if media.PreviewImageURL != "" {
				post.MediaURLs = append(post.MediaURLs, media.PreviewImageURL)
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}
