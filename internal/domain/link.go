// Package domain contains the core data structures and domain logic for the application.
package domain

// Icon names a glyph. Each renderer maps it to its own symbol.
type Icon string

const (
	IconInstagram Icon = "instagram"
	IconGitHub    Icon = "github"
	IconTikTok    Icon = "tiktok"
	IconGlobe     Icon = "globe"

	IconCommit      Icon = "commit"
	IconPullRequest Icon = "pull-request"
	IconStar        Icon = "star"
	IconFork        Icon = "fork"
	IconGeneric     Icon = "generic"
	IconRepo        Icon = "repo"
)

// SocialLink is one outbound entry of the link list.
// Links are defined once and never mutated.
type SocialLink struct {
	Name string `json:"name" mapstructure:"name"`
	Href string `json:"href" mapstructure:"href"`
	Icon Icon   `json:"icon" mapstructure:"icon"`
}

// Profile is the header shown above the link list.
type Profile struct {
	Name     string       `json:"name"`
	Location string       `json:"location"`
	Links    []SocialLink `json:"links"`
}

// IsLinkIcon reports whether i is one of the glyphs available for social links.
func (i Icon) IsLinkIcon() bool {
	switch i {
	case IconInstagram, IconGitHub, IconTikTok, IconGlobe:
		return true
	}
	return false
}

// LinkIcon returns the glyph to draw for the link. Links without a known
// icon get IconGlobe.
func (l SocialLink) LinkIcon() Icon {
	if l.Icon.IsLinkIcon() {
		return l.Icon
	}
	return IconGlobe
}

// DefaultLinks returns the built-in link list in display order.
func DefaultLinks() []SocialLink {
	return []SocialLink{
		{Name: "Instagram", Href: "https://www.instagram.com/reagancao/", Icon: IconInstagram},
		{Name: "GitHub", Href: "https://github.com/caoleduong", Icon: IconGitHub},
		{Name: "TikTok", Href: "https://www.tiktok.com/@reagan.cao", Icon: IconTikTok},
		{Name: "Website", Href: "https://caoleduong.github.io/", Icon: IconGlobe},
	}
}

// DefaultProfile returns the built-in profile.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Reagan Cao",
		Location: "San Diego, CA",
		Links:    DefaultLinks(),
	}
}
