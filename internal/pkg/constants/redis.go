package constants

// Redis key formats
const (
	KeyDeviceLatest = "trip:%s:device:%s:latest" // Format: trip:{trip_id}:device:{device_id}:latest
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldKind      = "kind"
	FieldDeviceID  = "device_id"
)
