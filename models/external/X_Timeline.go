package external

import "time"

type X_User struct {
	Data X_UserData `json:"data"`
}

type X_UserData struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type X_Timeline struct {
	Data     []X_Tweet  `json:"data"`
	Includes X_Includes `json:"includes"`
	Meta     X_Meta     `json:"meta"`
}

type X_Tweet struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	CreatedAt   time.Time     `json:"created_at"`
	Attachments X_Attachments `json:"attachments"`
}

type X_Attachments struct {
	MediaKeys []string `json:"media_keys"`
}

type X_Includes struct {
	Media []X_Media `json:"media"`
}

type X_Media struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	PreviewImageURL string `json:"preview_image_url"`
}

type X_Meta struct {
	ResultCount int    `json:"result_count"`
	NewestID    string `json:"newest_id"`
	OldestID    string `json:"oldest_id"`
}
