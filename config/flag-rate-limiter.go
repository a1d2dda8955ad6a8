package config

import "time"

// Flag submission rate limit configuration
type FlagRateLimitConfig struct {
	AttemptsThreshold1 int           // Number of wrong attempts before first cooldown
	CooldownDuration1  time.Duration // First cooldown duration
	AttemptsThreshold2 int           // Number of wrong attempts before second cooldown
	CooldownDuration2  time.Duration // Second cooldown duration
}

var DefaultFlagRateLimitConfig = FlagRateLimitConfig{
	AttemptsThreshold1: 5,
	CooldownDuration1:  1 * time.Minute,
	AttemptsThreshold2: 10,
	CooldownDuration2:  5 * time.Minute,
}
