package allocator

import (
	"context"
	"log/slog"

	"github.com/avasocial/social-bot/internal/social"
	"github.com/avasocial/social-bot/pkg/logger"
	"github.com/avasocial/social-bot/pkg/utils"
)

// Stop reasons reported by Run.
const (
	StopAllPostsLiked    = "all posts liked at least once"
	StopNoEligibleActors = "no more actors able to like"
	StopStalled          = "no progress possible in a full round"
	StopCancelled        = "cancelled"
)

// Reporter receives every applied like so it can be forwarded to the remote
// service. The allocation is optimistic: local state is already mutated when
// ReportLike is called and a returned error never rolls it back.
type Reporter interface {
	ReportLike(ctx context.Context, liker *social.Actor, postID social.PostID) error
}

// Allocator runs the round-based greedy like allocation over a population.
type Allocator struct {
	maxLikesPerActor int
	rng              *utils.RandSource
	reporter         Reporter
	logger           *slog.Logger
}

// Result summarizes one allocation run.
type Result struct {
	Rounds       int
	LikesApplied int
	StopReason   string
}

// New creates an allocator. The reporter may be nil for purely local runs.
func New(maxLikesPerActor int, rng *utils.RandSource, reporter Reporter) *Allocator {
	return &Allocator{
		maxLikesPerActor: maxLikesPerActor,
		rng:              rng,
		reporter:         reporter,
		logger:           logger.Default,
	}
}

// SetLogger sets the allocator's logger
func (al *Allocator) SetLogger(l *slog.Logger) {
	al.logger = l
}

// Run drives rounds of liking until no zero-like post remains, no actor can
// act, or a full round makes no progress. The actor queue is computed once,
// sorted by descending post count with signup order breaking ties.
func (al *Allocator) Run(ctx context.Context, pop *social.Population) Result {
	queue := pop.QueueByPostCount()
	var res Result

	for {
		if ctx.Err() != nil {
			res.StopReason = StopCancelled
			al.logger.Info("Liking cancelled. Stop bot")
			return res
		}
		if !pop.PostsRemain() {
			res.StopReason = StopAllPostsLiked
			al.logger.Info("All posts are liked at least once. Stop bot")
			return res
		}
		if !pop.ActorsRemain(al.maxLikesPerActor) {
			res.StopReason = StopNoEligibleActors
			al.logger.Info("No more users able to like. Stop bot")
			return res
		}

		likesThisRound := 0
		for _, u := range queue {
			// Each actor keeps liking until its budget or its targets run
			// out. A scan pass that applies nothing ends the turn: the state
			// did not change, so rescanning could spin forever.
			for u.CanLike(pop, al.maxLikesPerActor) {
				if !al.likeOnce(ctx, u, pop) {
					break
				}
				likesThisRound++
				res.LikesApplied++
			}
		}
		res.Rounds++

		if likesThisRound == 0 {
			// Both global predicates can stay true while every scan comes up
			// empty (the random pick is not retried per owner). Stop instead
			// of spinning on rounds that cannot make progress.
			res.StopReason = StopStalled
			al.logger.Info("No likes could be placed in a full round. Stop bot")
			return res
		}

		al.logger.Debug("round finished",
			"round", res.Rounds,
			"likes_this_round", likesThisRound,
			"likes_total", res.LikesApplied)
	}
}

// likeOnce scans the population once in signup order for the first eligible
// target and applies a single like. It returns false when the pass found
// nothing.
func (al *Allocator) likeOnce(ctx context.Context, u *social.Actor, pop *social.Population) bool {
	for _, owner := range pop.Actors() {
		if owner.Name == u.Name || !owner.IsLikeableBy(u) {
			continue
		}

		id, ok := owner.PickRandomOwnPost(al.rng)
		if !ok || u.HasLiked(id) {
			// No second draw from the same owner in this pass; that bounds
			// the pass to one pick per owner.
			continue
		}

		owner.ApplyLike(id)
		u.MarkLiked(id)

		if al.reporter != nil {
			if err := al.reporter.ReportLike(ctx, u, id); err != nil {
				// Advisory only: the local allocation stands
				al.logger.Error("Error liking post "+string(id)+": "+err.Error(),
					"user", u.Name)
			}
		}
		return true
	}
	return false
}
