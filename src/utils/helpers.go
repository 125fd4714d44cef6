package utils

import (
	"fmt"
	"os"
)

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}

// SlotsCacheKey is the cache entry holding the serialized slot list for a
// room/date pair. Mutations to any slot under the pair must drop the key.
func SlotsCacheKey(room string, date string) string {
	return fmt.Sprintf("slots:%s:%s", room, date)
}
