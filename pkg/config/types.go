package config

// Settings is the bot configuration loaded from the settings file
type Settings struct {
	LogLevel string `yaml:"log_level"`
	// Seed drives every random decision the bot makes; 0 means time-based
	Seed   int64  `yaml:"seed"`
	API    API    `yaml:"api"`
	Limits Limits `yaml:"limits"`
}

// API describes how to reach the social network service
type API struct {
	// FakeMode bypasses the network entirely and simulates ids and successes
	FakeMode bool   `yaml:"fake_mode"`
	BaseURL  string `yaml:"base_url"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
	// TimeoutSeconds bounds each remote call; 0 uses the client default
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Limits bounds the size of the simulated activity
type Limits struct {
	NumberOfActors   int `yaml:"number_of_actors"`
	MaxPostsPerActor int `yaml:"max_posts_per_actor"`
	MaxLikesPerActor int `yaml:"max_likes_per_actor"`
}
