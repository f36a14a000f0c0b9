package clock

import "time"

// SystemClock — системные часы в рабочей таймзоне сервиса
type SystemClock struct {
	location *time.Location
}

func NewSystemClock(location *time.Location) *SystemClock {
	if location == nil {
		location = time.UTC
	}
	return &SystemClock{location: location}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}
