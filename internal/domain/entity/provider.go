package entity

// ProviderID identifies a third-party wearable platform.
type ProviderID string

const (
	ProviderGoogleFit ProviderID = "google_fit"
	ProviderFitbit    ProviderID = "fitbit"
	ProviderGarmin    ProviderID = "garmin"
	ProviderOura      ProviderID = "oura"
	ProviderWhoop     ProviderID = "whoop"
	ProviderStrava    ProviderID = "strava"
	ProviderWithings  ProviderID = "withings"
	ProviderPolar     ProviderID = "polar"
)

// DataType is a canonical health metric name.
type DataType string

const (
	DataTypeSteps            DataType = "steps"
	DataTypeHeartRate        DataType = "heart_rate"
	DataTypeRestingHeartRate DataType = "resting_heart_rate"
	DataTypeHRV              DataType = "hrv"
	DataTypeSleep            DataType = "sleep"
	DataTypeCalories         DataType = "calories"
	DataTypeDistance         DataType = "distance"
	DataTypeActiveMinutes    DataType = "active_minutes"
	DataTypeWeight           DataType = "weight"
	DataTypeSpO2             DataType = "spo2"
	DataTypeReadiness        DataType = "readiness"
	DataTypeRecovery         DataType = "recovery"
	DataTypeWorkout          DataType = "workout"
)

// AllDataTypes lists every canonical data type.
var AllDataTypes = []DataType{
	DataTypeSteps,
	DataTypeHeartRate,
	DataTypeRestingHeartRate,
	DataTypeHRV,
	DataTypeSleep,
	DataTypeCalories,
	DataTypeDistance,
	DataTypeActiveMinutes,
	DataTypeWeight,
	DataTypeSpO2,
	DataTypeReadiness,
	DataTypeRecovery,
	DataTypeWorkout,
}

// IsValid reports whether t is a known data type.
func (t DataType) IsValid() bool {
	for _, known := range AllDataTypes {
		if t == known {
			return true
		}
	}

	return false
}
