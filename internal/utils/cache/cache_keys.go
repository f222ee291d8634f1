package cache

import "fmt"

type EntityType string

const (
	EntitySession EntityType = "session"
	EntityPrices  EntityType = "prices"
)

type KeyType string

const (
	KeyID      KeyType = "id"
	KeySession KeyType = "session"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entity, keyType, value)
}
