package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/sync/errgroup"

	"github.com/avasocial/social-bot/internal/allocator"
	"github.com/avasocial/social-bot/internal/client"
	"github.com/avasocial/social-bot/internal/content"
	"github.com/avasocial/social-bot/internal/social"
	"github.com/avasocial/social-bot/pkg/config"
	"github.com/avasocial/social-bot/pkg/logger"
	"github.com/avasocial/social-bot/pkg/utils"
)

// signupConcurrency bounds the parallel register calls during the signup
// phase. Registrations are independent, so fanning them out is safe; the
// allocation phase stays strictly sequential.
const signupConcurrency = 8

// Bot drives the three phases of the simulated activity: signing up actors,
// creating their posts, and running the like allocation.
type Bot struct {
	settings *config.Settings
	client   client.Client
	source   content.Source
	rng      *utils.RandSource
	logger   *slog.Logger

	pop  *social.Population
	step int
}

// New creates the bot. The random source drives every random decision, so a
// fixed seed reproduces a run exactly in fake mode.
func New(settings *config.Settings, cl client.Client, source content.Source, rng *utils.RandSource) *Bot {
	return &Bot{
		settings: settings,
		client:   cl,
		source:   source,
		rng:      rng,
		logger:   logger.Default,
		pop:      social.NewPopulation(),
	}
}

// SetLogger sets the bot's logger
func (b *Bot) SetLogger(l *slog.Logger) {
	b.logger = l
}

// Population returns the actors registered so far
func (b *Bot) Population() *social.Population {
	return b.pop
}

// Run executes all phases in order and logs the final report
func (b *Bot) Run(ctx context.Context) error {
	b.SignupActors(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	b.CreatePosts(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	res := b.LikePosts(ctx)
	b.LogResults(res)
	return ctx.Err()
}

// SignupActors registers the configured number of actors. Registrations run
// in parallel; a rejected registration drops that actor and the run goes on
// with the rest. Signup order (and therefore population order) is the
// generation order of the usernames, not the completion order of the calls.
func (b *Bot) SignupActors(ctx context.Context) {
	n := b.settings.Limits.NumberOfActors
	b.logStep(fmt.Sprintf("Sign up %d users", n))

	names := b.generateUsernames(n)
	registered := make([]*social.Actor, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(signupConcurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := b.client.Register(gctx, name, b.settings.API.Password, b.settings.API.Email); err != nil {
				b.logger.Error(fmt.Sprintf("Username %s skipped. Error: %v", name, err))
				return nil
			}
			b.logger.Info(fmt.Sprintf("User %s registered", name))
			registered[i] = social.NewActor(name)
			return nil
		})
	}
	// Worker funcs never return errors; failures only drop single actors
	_ = g.Wait()

	for _, a := range registered {
		if a == nil {
			continue
		}
		if err := b.pop.Add(a); err != nil {
			b.logger.Error(fmt.Sprintf("Username %s skipped. Error: %v", a.Name, err))
		}
	}
}

// CreatePosts logs each actor in and creates a random number of posts for it,
// between one and the configured maximum.
func (b *Bot) CreatePosts(ctx context.Context) {
	maxPosts := b.settings.Limits.MaxPostsPerActor
	b.logStep(fmt.Sprintf("Each user creates random number of posts (up to %d) with any content", maxPosts))

	for _, actor := range b.pop.Actors() {
		if ctx.Err() != nil {
			return
		}

		token, err := b.client.Login(ctx, actor.Name, b.settings.API.Password)
		if err != nil {
			b.logger.Error(fmt.Sprintf("User %s could not log in: %v", actor.Name, err))
			continue
		}
		actor.Token = token

		count := b.rng.IntnRange(1, maxPosts)
		for i := 0; i < count; i++ {
			body := b.source.Random(b.rng)
			id, err := b.client.CreatePost(ctx, actor.Token, body)
			if err != nil {
				b.logger.Error(fmt.Sprintf("User %s could not post: %v", actor.Name, err))
				continue
			}
			actor.AddPost(social.PostID(id))
			b.logger.Info(fmt.Sprintf("User %s posted (post ID: %s) %s", actor.Name, id, body))
		}
	}
}

// LikePosts runs the like-allocation engine over the population
func (b *Bot) LikePosts(ctx context.Context) allocator.Result {
	b.logStep("Start liking")

	al := allocator.New(b.settings.Limits.MaxLikesPerActor, b.rng, b)
	al.SetLogger(b.logger)
	return al.Run(ctx, b.pop)
}

// ReportLike forwards one applied like to the remote service. The local
// allocation already happened; an error here is surfaced to the allocator,
// logged, and never rolled back.
func (b *Bot) ReportLike(ctx context.Context, liker *social.Actor, postID social.PostID) error {
	if err := b.client.LikePost(ctx, liker.Token, string(postID)); err != nil {
		return err
	}
	b.logger.Info(fmt.Sprintf("Post with ID %s liked by user %s successfully", postID, liker.Name))
	return nil
}

// generateUsernames produces n unique synthetic usernames from a faker seeded
// off the bot's random source.
func (b *Bot) generateUsernames(n int) []string {
	faker := gofakeit.New(b.rng.Int63())

	names := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(names) < n {
		name := faker.Username()
		if _, dup := seen[name]; dup {
			name = fmt.Sprintf("%s%d", name, faker.Number(10, 99))
			if _, dup := seen[name]; dup {
				continue
			}
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func (b *Bot) logStep(text string) {
	b.step++
	b.logger.Info(fmt.Sprintf("Step %d: %s", b.step, text))
}
