package bot

import (
	"fmt"
	"strings"

	"github.com/avasocial/social-bot/internal/allocator"
	"github.com/avasocial/social-bot/internal/social"
	"github.com/avasocial/social-bot/pkg/utils"
)

// ActorResult is one actor's final state: its name and the like count of
// every post it created.
type ActorResult struct {
	Name  string
	Posts map[social.PostID]int
}

// Results returns the final state of every actor in signup order
func (b *Bot) Results() []ActorResult {
	out := make([]ActorResult, 0, b.pop.Len())
	for _, a := range b.pop.Actors() {
		out = append(out, ActorResult{
			Name:  a.Name,
			Posts: a.Posts(),
		})
	}
	return out
}

// LogResults writes the final report: the population size, each actor's post
// like counts, and a short summary of the whole run.
func (b *Bot) LogResults(run allocator.Result) {
	b.logger.Info("Total results:")
	b.logger.Info(fmt.Sprintf("Users created: %d", b.pop.Len()))

	var perPostLikes []float64
	var counts []int
	for _, a := range b.pop.Actors() {
		b.logger.Info(fmt.Sprintf("Username: %s. Own posts (post_id=number of likes): %s",
			a.Name, formatPosts(a)))
		for _, count := range a.Posts() {
			perPostLikes = append(perPostLikes, float64(count))
			counts = append(counts, count)
		}
	}

	b.logger.Info(fmt.Sprintf("Likes applied: %d in %d round(s), mean likes per post: %.2f, most liked post: %d. Stopped because %s",
		run.LikesApplied, run.Rounds, utils.Mean(perPostLikes), utils.MaxInt(counts), run.StopReason))
}

// formatPosts renders an actor's posts in creation order
func formatPosts(a *social.Actor) string {
	ids := a.PostIDs()
	if len(ids) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		count, _ := a.LikeCount(id)
		parts = append(parts, fmt.Sprintf("%s=%d", id, count))
	}
	return strings.Join(parts, ", ")
}
