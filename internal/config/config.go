// Package config loads linkbio settings from defaults, an optional file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/naka-gawa/linkbio/internal/domain"
)

// Site modes. Production prefixes every URL with the base path.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config holds application configuration.
type Config struct {
	GitHub     GitHubConfig
	Profile    ProfileConfig
	Site       SiteConfig
	Background BackgroundConfig
}

// GitHubConfig selects whose activity the widget shows.
type GitHubConfig struct {
	User       string
	BaseURL    string `mapstructure:"base_url"`
	Token      string
	RepoLimit  int `mapstructure:"repo_limit"`
	EventLimit int `mapstructure:"event_limit"`
}

// ProfileConfig is the card header and link list.
type ProfileConfig struct {
	Name     string
	Location string
	Links    []domain.SocialLink
}

// SiteConfig controls the static export.
type SiteConfig struct {
	Mode     string
	BasePath string `mapstructure:"base_path"`
	OutDir   string `mapstructure:"out_dir"`
}

// BackgroundConfig sizes the animation window.
type BackgroundConfig struct {
	Width  int
	Height int
	// Seed of zero picks a time-based seed.
	Seed uint64
}

// ProfileValue converts the profile section into the domain type.
func (c Config) ProfileValue() domain.Profile {
	return domain.Profile{
		Name:     c.Profile.Name,
		Location: c.Profile.Location,
		Links:    c.Profile.Links,
	}
}

// Prefix returns the URL prefix for the configured mode.
func (s SiteConfig) Prefix() string {
	if s.Mode == ModeProduction {
		return strings.TrimRight(s.BasePath, "/")
	}
	return ""
}

// New returns a viper instance populated with defaults and env bindings.
// Env var overrides use prefix LINKBIO_, e.g. LINKBIO_GITHUB_USER.
func New() *viper.Viper {
	v := viper.New()

	profile := domain.DefaultProfile()
	v.SetDefault("github.user", "caoleduong")
	v.SetDefault("github.base_url", "")
	v.SetDefault("github.token", "")
	v.SetDefault("github.repo_limit", 5)
	v.SetDefault("github.event_limit", 5)
	v.SetDefault("profile.name", profile.Name)
	v.SetDefault("profile.location", profile.Location)
	v.SetDefault("profile.links", linksToMaps(profile.Links))
	v.SetDefault("site.mode", ModeDevelopment)
	v.SetDefault("site.base_path", "/social-links")
	v.SetDefault("site.out_dir", "out")
	v.SetDefault("background.width", 1024)
	v.SetDefault("background.height", 768)
	v.SetDefault("background.seed", 0)

	v.SetEnvPrefix("LINKBIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and unmarshals the result.
// path may be empty, in which case LINKBIO_CONFIG is consulted.
func Load(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		path = os.Getenv("LINKBIO_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.GitHub.User == "" {
		return fmt.Errorf("github.user must not be empty")
	}
	switch c.Site.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("site.mode must be %q or %q, got %q", ModeDevelopment, ModeProduction, c.Site.Mode)
	}
	if c.Site.Mode == ModeProduction && !strings.HasPrefix(c.Site.BasePath, "/") {
		return fmt.Errorf("site.base_path must start with /, got %q", c.Site.BasePath)
	}
	if c.Background.Width <= 0 || c.Background.Height <= 0 {
		return fmt.Errorf("background size must be positive, got %dx%d", c.Background.Width, c.Background.Height)
	}
	for i, l := range c.Profile.Links {
		if l.Name == "" || l.Href == "" {
			return fmt.Errorf("profile.links[%d] needs both name and href", i)
		}
		if l.Icon != "" && !l.Icon.IsLinkIcon() {
			return fmt.Errorf("profile.links[%d] has unknown icon %q", i, l.Icon)
		}
	}
	return nil
}

func linksToMaps(links []domain.SocialLink) []map[string]any {
	out := make([]map[string]any, 0, len(links))
	for _, l := range links {
		out = append(out, map[string]any{"name": l.Name, "href": l.Href, "icon": string(l.Icon)})
	}
	return out
}
