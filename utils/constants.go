// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis auth session cache keys.
const AuthCachePrefix = "auth:"

// AuthSessionTTL is the time-to-live for auth sessions.
const AuthSessionTTL = 7 * 24 * time.Hour
