package transfer

type TwitterUserResponse struct {
	Data TwitterUserData `json:"data"`
}

type TwitterUserData struct {
	ID            string               `json:"id"`
	Username      string               `json:"username"`
	PublicMetrics TwitterPublicMetrics `json:"public_metrics"`
}

type TwitterPublicMetrics struct {
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	TweetCount     int64 `json:"tweet_count"`
	ListedCount    int64 `json:"listed_count"`
	LikeCount      int64 `json:"like_count"`
}
