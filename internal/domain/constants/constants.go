// Package constants holds the string values shared between configuration and wiring.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Broker providers
const (
	BrokerProviderKafka  = "kafka"
	BrokerProviderGoogle = "google"
	BrokerProviderLocal  = "local"
	BrokerProviderNoop   = "noop"
)

// Cache providers
const (
	CacheProviderRedis  = "redis"
	CacheProviderMemory = "memory"
)

// Message attributes carried alongside every dataset record
const (
	AttrDataset = "dataset"
	AttrKey     = "key"
)
