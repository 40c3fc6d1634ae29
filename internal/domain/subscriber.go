package domain

import "time"

const (
	DefaultFrequency    = "daily"
	DefaultDeliveryTime = "08:00"
)

// Subscriber is keyed by email. Unsubscribing flips Active rather than
// deleting the record.
type Subscriber struct {
	Email          string
	Symbols        []string
	Active         bool
	Preferences    SubscriberPreferences
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
}

// SubscriberPreferences are consumed by whatever schedules the digest.
type SubscriberPreferences struct {
	Frequency    string `json:"frequency"`
	DeliveryTime string `json:"time"`
}
