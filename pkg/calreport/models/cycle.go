package models

// CycleRow is one numbered measurement of a Zero Cell Volume report.
type CycleRow struct {
	// CycleNumber is the cycle number as printed.
	CycleNumber string `json:"cycle_number"`
	// CellVolume is the measured cell volume.
	CellVolume string `json:"cell_volume"`
	// Deviation is the cell volume deviation.
	Deviation string `json:"deviation"`
}

// CalibrationCycleRow is one numbered measurement of a Volume Calibration report.
type CalibrationCycleRow struct {
	// CycleNumber is the cycle number as printed.
	CycleNumber string `json:"cycle_number"`
	// CellVolume is the measured cell volume.
	CellVolume string `json:"cell_volume"`
	// Deviation is the cell volume deviation.
	Deviation string `json:"deviation"`
	// ExpansionVolume is the measured expansion volume.
	ExpansionVolume string `json:"expansion_volume"`
	// ExpansionDeviation is the expansion volume deviation.
	ExpansionDeviation string `json:"expansion_deviation"`
}
