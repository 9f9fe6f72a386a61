package models

import (
	"time"
)

type User struct {
	ID                     int64     `json:"id"`
	Email                  string    `json:"email"`
	PasswordHash           string    `json:"password"`
	CreatedAt              string    `json:"createdAt"`
	RefreshToken           string    `json:"refreshToken,omitempty"`
	RefreshTokenExpiryTime time.Time `json:"refreshTokenExpiryTime,omitzero"`
}

type Poster struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Prompt    string `json:"prompt"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
}

// TweetPost - результат публикации, нигде не сохраняется
type TweetPost struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	URL  string `json:"url"`
}

type TweetAnalytics struct {
	TweetID     string `json:"tweetId"`
	Impressions int    `json:"impressions"`
	Likes       int    `json:"likes"`
	Retweets    int    `json:"retweets"`
	Replies     int    `json:"replies"`
	Quotes      int    `json:"quotes"`
}

// OverlayStyle - стиль текста для наложения на постер
type OverlayStyle struct {
	FontSize     int    `json:"fontSize"`
	TextColor    string `json:"textColor"`
	TextPosition string `json:"textPosition"`
	FontWeight   string `json:"fontWeight"`
}
