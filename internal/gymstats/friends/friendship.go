package friends

import (
	"errors"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/bodyweight"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/exercises"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfFriendship     = errors.New("cannot add yourself")
	ErrFriendshipExists   = errors.New("friendship already exists")
	ErrFriendshipNotFound = errors.New("friendship not found")
)

// Friendship is a directed request from one user to another. Once accepted it is symmetric.
type Friendship struct {
	ID         int       `json:"id"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Peer is the other side of a friendship, as stored locally.
type Peer struct {
	FriendshipID int
	UserID       string
	Username     *string
	CreatedAt    time.Time
}

// Member is one side of an accepted friendship.
type Member struct {
	UserID   string
	Username *string
}

// Pair is an accepted friendship seen from the requesting user.
type Pair struct {
	FriendshipID int
	Me           Member
	Friend       Member
}

type Friend struct {
	FriendshipID int     `json:"friendshipId"`
	UserID       string  `json:"userId"`
	Username     *string `json:"username"`
	Name         *string `json:"name"`
	ImageURL     *string `json:"imageUrl"`
}

type IncomingRequest struct {
	FriendshipID int       `json:"friendshipId"`
	FromUserID   string    `json:"fromUserId"`
	Username     *string   `json:"username"`
	Name         *string   `json:"name"`
	ImageURL     *string   `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Side is one user's data in an exercise comparison.
type Side struct {
	UserID      string             `json:"userId"`
	Username    *string            `json:"username"`
	Points      []stats.OneRmPoint `json:"points"`
	BodyWeights []bodyweight.Entry `json:"bodyWeights"`
}

type Comparison struct {
	Exercise exercises.Exercise    `json:"exercise"`
	Mine     Side                  `json:"mine"`
	Friend   Side                  `json:"friend"`
	Merged   []stats.ComparisonRow `json:"merged"`
}

// BuildSide reduces a user's finished sets to history points and orders body weights ascending.
func BuildSide(member Member, sets []stats.SetSample, bodyWeights []bodyweight.Entry) Side {
	return Side{
		UserID:      member.UserID,
		Username:    member.Username,
		Points:      stats.BestSetHistory(sets),
		BodyWeights: bodyweight.Ascending(bodyWeights),
	}
}

func Compare(ex exercises.Exercise, mine, friend Side) Comparison {
	return Comparison{
		Exercise: ex,
		Mine:     mine,
		Friend:   friend,
		Merged: stats.MergeComparison(
			stats.Series{Points: mine.Points, BodyWeights: bodyweight.ToStats(mine.BodyWeights)},
			stats.Series{Points: friend.Points, BodyWeights: bodyweight.ToStats(friend.BodyWeights)},
		),
	}
}
