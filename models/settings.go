package models

// ClubSettings is a singleton: exactly one row, written with an upsert.
type ClubSettings struct {
	ID              int     `json:"id"`
	ClubName        string  `json:"club_name"`
	ClubLogoKey     *string `json:"-"`
	ClubLogoURL     string  `json:"club_logo_url,omitempty"`
	ClubSlogan      string  `json:"club_slogan,omitempty"`
	FoundedYear     *int    `json:"founded_year,omitempty"`
	HomeGround      string  `json:"home_ground,omitempty"`
	ClubColors      string  `json:"club_colors,omitempty"`
	AboutText       string  `json:"about_text,omitempty"`
	ContactEmail    string  `json:"contact_email,omitempty"`
	SocialFacebook  string  `json:"social_facebook,omitempty"`
	SocialInstagram string  `json:"social_instagram,omitempty"`
	SocialTwitter   string  `json:"social_twitter,omitempty"`
	SocialYoutube   string  `json:"social_youtube,omitempty"`
	SocialTiktok    string  `json:"social_tiktok,omitempty"`
}
