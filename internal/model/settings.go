package model

// ScheduleSettings is the singleton auto-posting config. It is read and
// written wholesale; last write wins.
type ScheduleSettings struct {
	Enabled            bool    `json:"enabled"`
	Time               string  `json:"time"`
	StoriesPerVertical int     `json:"storiesPerVertical"`
	LastRun            *string `json:"lastRun"`
}

func DefaultScheduleSettings() ScheduleSettings {
	return ScheduleSettings{
		Enabled:            false,
		Time:               "06:00",
		StoriesPerVertical: 3,
		LastRun:            nil,
	}
}
