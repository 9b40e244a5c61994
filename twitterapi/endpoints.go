package twitterapi

const (
	apiBase    = "https://api.twitter.com/2"
	uploadBase = "https://upload.twitter.com/1.1"
)

// Operation names, used for logging and error reporting.
const (
	opUserMentions = "UserMentions"
	opUserTweets   = "UserTweets"
	opCreateTweet  = "CreateTweet"
	opMediaUpload  = "MediaUpload"
)

// maxTimelineResults is the per-request ceiling of the v2 timeline endpoints.
const maxTimelineResults = 100

// minTimelineResults is the smallest max_results the v2 API accepts.
const minTimelineResults = 5
