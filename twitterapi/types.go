package twitterapi

// Tweet is a single post as returned by the v2 API.
type Tweet struct {
	ID       string `json:"id"`
	AuthorID string `json:"author_id,omitempty"`
	Text     string `json:"text"`
}

// User is an account profile as returned through an author_id expansion.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// tweetsResponse is the v2 envelope shared by the mentions and timeline endpoints.
type tweetsResponse struct {
	Data     []Tweet `json:"data"`
	Includes struct {
		Users []User `json:"users"`
	} `json:"includes"`
	Meta struct {
		ResultCount int    `json:"result_count"`
		NewestID    string `json:"newest_id"`
		OldestID    string `json:"oldest_id"`
	} `json:"meta"`
}

// createTweetResponse is the envelope of POST /2/tweets.
type createTweetResponse struct {
	Data Tweet `json:"data"`
}

// mediaUploadResponse is the envelope of the v1.1 media upload endpoint.
type mediaUploadResponse struct {
	MediaID       int64  `json:"media_id"`
	MediaIDString string `json:"media_id_string"`
}
