package models

// Account is a user together with its quota, stat and owned databases.
type Account struct {
	User      User       `json:"user"`
	Quota     UserQuota  `json:"quota"`
	Stat      UserStat   `json:"stat"`
	Databases []Database `json:"databases"`
}
