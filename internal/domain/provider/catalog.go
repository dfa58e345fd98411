package provider

import "wearsync/internal/domain/entity"

var registry = map[entity.ProviderID]*Provider{
	entity.ProviderGoogleFit: {
		ID:          entity.ProviderGoogleFit,
		DisplayName: "Google Fit",
		DeviceType:  "app",
		AuthURL:     "https://accounts.google.com/o/oauth2/auth",
		TokenURL:    "https://oauth2.googleapis.com/token",
		Scopes: []string{
			"https://www.googleapis.com/auth/fitness.activity.read",
			"https://www.googleapis.com/auth/fitness.heart_rate.read",
			"https://www.googleapis.com/auth/fitness.sleep.read",
			"https://www.googleapis.com/auth/fitness.body.read",
			"https://www.googleapis.com/auth/fitness.location.read",
			"https://www.googleapis.com/auth/fitness.oxygen_saturation.read",
		},
		AuthParams:  map[string]string{"prompt": "consent"},
		UserIDField: "sub",
		Formats: map[entity.DataType]PayloadFormat{
			entity.DataTypeSteps:         FormatPointSeries,
			entity.DataTypeHeartRate:     FormatPointSeries,
			entity.DataTypeSleep:         FormatPointSeries,
			entity.DataTypeCalories:      FormatPointSeries,
			entity.DataTypeDistance:      FormatPointSeries,
			entity.DataTypeActiveMinutes: FormatPointSeries,
			entity.DataTypeWeight:        FormatPointSeries,
			entity.DataTypeSpO2:          FormatPointSeries,
			entity.DataTypeWorkout:       FormatWorkoutList,
		},
		SourceUnits: map[entity.DataType]string{
			entity.DataTypeSteps:         "count",
			entity.DataTypeHeartRate:     "bpm",
			entity.DataTypeSleep:         "ms",
			entity.DataTypeCalories:      "kcal",
			entity.DataTypeDistance:      "m",
			entity.DataTypeActiveMinutes: "min",
			entity.DataTypeWeight:        "kg",
			entity.DataTypeSpO2:          "%",
		},
	},
	entity.ProviderFitbit: {
		ID:          entity.ProviderFitbit,
		DisplayName: "Fitbit",
		DeviceType:  "band",
		AuthURL:     "https://www.fitbit.com/oauth2/authorize",
		TokenURL:    "https://api.fitbit.com/oauth2/token",
		Scopes:      []string{"activity", "heartrate", "sleep", "weight", "oxygen_saturation", "profile"},
		UserIDField: "user_id",
		Formats: map[entity.DataType]PayloadFormat{
			entity.DataTypeSteps:            FormatDateValueSeries,
			entity.DataTypeHeartRate:        FormatSampleList,
			entity.DataTypeRestingHeartRate: FormatDateValueSeries,
			entity.DataTypeHRV:              FormatDateValueSeries,
			entity.DataTypeSleep:            FormatDateValueSeries,
			entity.DataTypeCalories:         FormatDateValueSeries,
			entity.DataTypeDistance:         FormatDateValueSeries,
			entity.DataTypeActiveMinutes:    FormatDateValueSeries,
			entity.DataTypeWeight:           FormatDateValueSeries,
			entity.DataTypeSpO2:             FormatDateValueSeries,
			entity.DataTypeWorkout:          FormatWorkoutList,
		},
		SourceUnits: map[entity.DataType]string{
			entity.DataTypeSteps:            "count",
			entity.DataTypeHeartRate:        "bpm",
			entity.DataTypeRestingHeartRate: "bpm",
			entity.DataTypeHRV:              "ms",
			entity.DataTypeSleep:            "min",
			entity.DataTypeCalories:         "kcal",
			entity.DataTypeDistance:         "km",
			entity.DataTypeActiveMinutes:    "min",
			entity.DataTypeWeight:           "kg",
			entity.DataTypeSpO2:             "%",
		},
	},
	entity.ProviderGarmin: {
		ID:          entity.ProviderGarmin,
		DisplayName: "Garmin Connect",
		DeviceType:  "watch",
		AuthURL:     "https://connect.garmin.com/oauth2Confirm",
		TokenURL:    "https://diauth.garmin.com/di-oauth2-service/oauth/token",
		UserIDField: "userId",
		Formats: map[entity.DataType]PayloadFormat{
			entity.DataTypeSteps:            FormatSampleList,
			entity.DataTypeHeartRate:        FormatSampleList,
			entity.DataTypeRestingHeartRate: FormatSampleList,
			entity.DataTypeHRV:              FormatSampleList,
			entity.DataTypeSleep:            FormatSampleList,
			entity.DataTypeCalories:         FormatSampleList,
			entity.DataTypeDistance:         FormatSampleList,
			entity.DataTypeSpO2:             FormatSampleList,
			entity.DataTypeWorkout:          FormatWorkoutList,
		},
		SourceUnits: map[entity.DataType]string{
			entity.DataTypeSteps:            "count",
			entity.DataTypeHeartRate:        "bpm",
			entity.DataTypeRestingHeartRate: "bpm",
			entity.DataTypeHRV:              "ms",
			entity.DataTypeSleep:            "s",
			entity.DataTypeCalories:         "kcal",
			entity.DataTypeDistance:         "m",
			entity.DataTypeSpO2:             "%",
		},
	},
	entity.ProviderOura: {
		ID:          entity.ProviderOura,
		DisplayName: "Oura Ring",
		DeviceType:  "ring",
		AuthURL:     "https://cloud.ouraring.com/oauth/authorize",
		TokenURL:    "https://api.ouraring.com/oauth/token",
		Scopes:      []string{"personal", "daily", "heartrate", "workout", "session", "spo2"},
		Formats: map[entity.DataType]PayloadFormat{
			entity.DataTypeSteps:            FormatDailySummary,
			entity.DataTypeHeartRate:        FormatSampleList,
			entity.DataTypeRestingHeartRate: FormatDailySummary,
			entity.DataTypeHRV:              FormatDailySummary,
			entity.DataTypeSleep:            FormatDailySummary,
			entity.DataTypeCalories:         FormatDailySummary,
			entity.DataTypeSpO2:             FormatDailySummary,
			entity.DataTypeReadiness:        FormatDailySummary,
			entity.DataTypeWorkout:          FormatWorkoutList,
		},
		SourceUnits: map[entity.DataType]string{
			entity.DataTypeHeartRate: "bpm",
		},
	},
	entity.ProviderWhoop: {
		ID:          entity.ProviderWhoop,
		DisplayName: "WHOOP",
		DeviceType:  "band",
		AuthURL:     "https://api.prod.whoop.com/oauth/oauth2/auth",
		TokenURL:    "https://api.prod.whoop.com/oauth/oauth2/token",
		Scopes:      []string{"read:recovery", "read:cycles", "read:sleep", "read:workout", "read:profile", "offline"},
		UserIDField: "user_id",
		Formats: map[entity.DataType]PayloadFormat{
			entity.DataTypeRestingHeartRate: FormatDailySummary,
			entity.DataTypeHRV:              FormatDailySummary,
			entity.DataTypeSleep:            FormatDailySummary,
			entity.DataTypeCalories:         FormatDailySummary,
			entity.DataTypeSpO2:             FormatDailySummary,
			entity.DataTypeRecovery:         FormatDailySummary,
			entity.DataTypeWorkout:          FormatWorkoutList,
		},
	},
	entity.ProviderStrava: {
		ID:          entity.ProviderStrava,
		DisplayName: "Strava",
		DeviceType:  "app",
		AuthURL:     "https://www.strava.com/oauth/authorize",
		TokenURL:    "https://www.strava.com/oauth/token",
		Scopes:      []string{"read,activity:read_all"},
		AuthParams:  map[string]string{"approval_prompt": "auto"},
		UserIDField: "athlete.id",
		Formats: map[entity.DataType]PayloadFormat{
			entity.DataTypeWorkout: FormatWorkoutList,
		},
	},
	entity.ProviderWithings: {
		ID:          entity.ProviderWithings,
		DisplayName: "Withings",
		DeviceType:  "scale",
		AuthURL:     "https://account.withings.com/oauth2_user/authorize2",
		TokenURL:    "https://wbsapi.withings.net/v2/oauth2",
		Scopes:      []string{"user.info,user.metrics,user.activity"},
		UserIDField: "userid",
		Formats: map[entity.DataType]PayloadFormat{
			entity.DataTypeSteps:     FormatSampleList,
			entity.DataTypeHeartRate: FormatSampleList,
			entity.DataTypeSleep:     FormatSampleList,
			entity.DataTypeWeight:    FormatSampleList,
			entity.DataTypeSpO2:      FormatSampleList,
			entity.DataTypeDistance:  FormatSampleList,
		},
		SourceUnits: map[entity.DataType]string{
			entity.DataTypeSteps:     "count",
			entity.DataTypeHeartRate: "bpm",
			entity.DataTypeSleep:     "s",
			entity.DataTypeWeight:    "kg",
			entity.DataTypeSpO2:      "%",
			entity.DataTypeDistance:  "m",
		},
	},
	entity.ProviderPolar: {
		ID:          entity.ProviderPolar,
		DisplayName: "Polar Flow",
		DeviceType:  "watch",
		AuthURL:     "https://flow.polar.com/oauth2/authorization",
		TokenURL:    "https://polarremote.com/v2/oauth2/token",
		Scopes:      []string{"accesslink.read_all"},
		UserIDField: "x_user_id",
		Formats: map[entity.DataType]PayloadFormat{
			entity.DataTypeSteps:     FormatSampleList,
			entity.DataTypeHeartRate: FormatSampleList,
			entity.DataTypeSleep:     FormatSampleList,
			entity.DataTypeCalories:  FormatSampleList,
			entity.DataTypeWorkout:   FormatWorkoutList,
		},
		SourceUnits: map[entity.DataType]string{
			entity.DataTypeSteps:     "count",
			entity.DataTypeHeartRate: "bpm",
			entity.DataTypeSleep:     "s",
			entity.DataTypeCalories:  "kcal",
		},
	},
}
