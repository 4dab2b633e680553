package domain

import "time"

// FollowEdge is a one-directional edge in the social graph: follower
// follows followed. No reciprocal edge is implied.
type FollowEdge struct {
	FollowerID string
	FollowedID string
	CreatedAt  time.Time
}
