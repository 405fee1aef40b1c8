package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateHistoryID builds a history record identifier of the form
// "HSTR-<millis><4 random digits>". Collisions within the same millisecond
// are tolerated by the random suffix.
func GenerateHistoryID() string {
	return fmt.Sprintf("HSTR-%d%04d", time.Now().UnixMilli(), rand.Intn(9000)+1000)
}
