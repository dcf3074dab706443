package domain

// InstagramPost is the normalized latest post of an account. Timestamp is
// kept as the provider reported it.
type InstagramPost struct {
	Username  string // Instagram handle the post was fetched for
	Caption   string // Post caption, may be empty
	ImageURL  string // Display image, empty when the provider has none
	Timestamp string // When the post was published (RFC 3339)
	Likes     int    // Number of likes
	Comments  int    // Number of comments
	PostURL   string // Permalink to the post
}
