package models

import "time"

// Analytics is the current snapshot of a platform's metrics. It is
// overwritten on every successful sync, history lives in the sync log.
type Analytics struct {
	ID             int64     `db:"id" json:"id"`
	Platform       string    `db:"platform" json:"platform"`
	FollowersCount int64     `db:"followers_count" json:"followers_count"`
	EngagementRate float64   `db:"engagement_rate" json:"engagement_rate"`
	Impressions    int64     `db:"impressions" json:"impressions"`
	Likes          int64     `db:"likes" json:"likes"`
	Shares         int64     `db:"shares" json:"shares"`
	Comments       int64     `db:"comments" json:"comments"`
	PostsCount     int64     `db:"posts_count" json:"posts_count"`
	SyncedAt       time.Time `db:"synced_at" json:"synced_at"`
}
