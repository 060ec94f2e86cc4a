package service

// Keys of the preference store.
const (
	PrefPassword      = "password"
	PrefHashingMethod = "password_hashing_method"
	PrefDelayTime     = "delay_time"
	PrefLoginDelay    = "login_delay"
	PrefDeviceID      = "device_id"
	PrefKDF           = "kdf"
)
