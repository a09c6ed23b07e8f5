package social

import (
	"github.com/avasocial/social-bot/pkg/utils"
)

// PostID identifies a post within the population. Both the remote service and
// the fake client hand out opaque string ids.
type PostID string

// Actor is a simulated participant. It owns the authoritative like counts of
// its posts and remembers every post it has liked. Actor identity is the name
// alone: two actors are the same actor iff their names match.
type Actor struct {
	Name string
	// Token is the access token obtained at login, empty in fake mode
	Token string

	posts map[PostID]int
	order []PostID
	liked map[PostID]struct{}
}

// NewActor creates an actor with no posts and an empty like history
func NewActor(name string) *Actor {
	return &Actor{
		Name:  name,
		posts: make(map[PostID]int),
		liked: make(map[PostID]struct{}),
	}
}

// AddPost registers a post owned by the actor with zero likes.
// Adding an id twice is a no-op; post ids never repeat within a run.
func (a *Actor) AddPost(id PostID) {
	if _, ok := a.posts[id]; ok {
		return
	}
	a.posts[id] = 0
	a.order = append(a.order, id)
}

// PostCount returns the number of posts the actor has created
func (a *Actor) PostCount() int {
	return len(a.posts)
}

// LikeCount returns the like count of one of the actor's posts
func (a *Actor) LikeCount(id PostID) (int, bool) {
	count, ok := a.posts[id]
	return count, ok
}

// Posts returns a copy of the actor's post id to like count mapping
func (a *Actor) Posts() map[PostID]int {
	out := make(map[PostID]int, len(a.posts))
	for id, count := range a.posts {
		out[id] = count
	}
	return out
}

// PostIDs returns the actor's post ids in creation order
func (a *Actor) PostIDs() []PostID {
	out := make([]PostID, len(a.order))
	copy(out, a.order)
	return out
}

// ApplyLike increments the like count of one of the actor's own posts.
// It returns false if the post does not belong to the actor.
func (a *Actor) ApplyLike(id PostID) bool {
	if _, ok := a.posts[id]; !ok {
		return false
	}
	a.posts[id]++
	return true
}

// MarkLiked records that the actor has liked the given post
func (a *Actor) MarkLiked(id PostID) {
	a.liked[id] = struct{}{}
}

// HasLiked reports whether the actor has already liked the given post
func (a *Actor) HasLiked(id PostID) bool {
	_, ok := a.liked[id]
	return ok
}

// LikedCount returns how many distinct posts the actor has liked
func (a *Actor) LikedCount() int {
	return len(a.liked)
}

// IsLikeableBy reports whether the actor owns at least one zero-like post
// that "by" has not liked yet. A nil "by" ignores the exclusion and checks
// whether any post at all is still waiting for its first like.
func (a *Actor) IsLikeableBy(by *Actor) bool {
	for id, count := range a.posts {
		if count != 0 {
			continue
		}
		if by != nil && by.HasLiked(id) {
			continue
		}
		return true
	}
	return false
}

// CanLike reports whether the actor is still able to like someone: it has not
// reached maxLikes and some other actor in the population still presents a
// likeable post to it. Self is excluded by name, not by pointer.
func (a *Actor) CanLike(pop *Population, maxLikes int) bool {
	if a.LikedCount() >= maxLikes {
		return false
	}
	for _, other := range pop.Actors() {
		if other.Name == a.Name {
			continue
		}
		if other.IsLikeableBy(a) {
			return true
		}
	}
	return false
}

// PickRandomOwnPost selects uniformly at random among the actor's own post
// ids. It returns false when the actor has no posts.
func (a *Actor) PickRandomOwnPost(rng *utils.RandSource) (PostID, bool) {
	if len(a.order) == 0 {
		return "", false
	}
	return a.order[rng.Intn(len(a.order))], true
}
