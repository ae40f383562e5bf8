package models

// Video is a travel video found for a location.
type Video struct {
	Title    string `json:"title"`
	Channel  string `json:"channel"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
	Views    string `json:"views"`
}
