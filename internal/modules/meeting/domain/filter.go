package domain

import "github.com/golangid/meetup/candishared"

// FilterMeeting search filter
type FilterMeeting struct {
	candishared.Filter
	Title string `json:"title" query:"title"`
}
