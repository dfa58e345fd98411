package model

// All returns every persistence model, in dependency order, for schema migration.
func All() []any {
	return []any{
		&ConnectedDeviceModel{},
		&SyncPreferencesModel{},
		&DeviceSyncHistoryModel{},
		&WearableHealthDataModel{},
		&AuthFlowStateModel{},
		&PushDeviceModel{},
	}
}
