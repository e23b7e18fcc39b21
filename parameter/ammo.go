package parameter

// Reload durations: max(floor, base - reloadLevel*step), in game seconds
const (
	ReloadNormalBase  = 1.0
	ReloadNormalStep  = 0.08
	ReloadNormalFloor = 0.1

	ReloadBigBase  = 5.0
	ReloadBigStep  = 0.4
	ReloadBigFloor = 0.5

	ReloadNukeBase  = 20.0
	ReloadNukeStep  = 1.0
	ReloadNukeFloor = 5.0
)

// Default ammo maxima, overridable by loadout config
const (
	DefaultAmmoMaxNormal = 30
	DefaultAmmoMaxBig    = 10
	DefaultAmmoMaxNuke   = 3
)
