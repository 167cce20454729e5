package models

// ZeroCellVolume holds the left-hand "Zero Cell Volume" report.
type ZeroCellVolume struct {
	ChamberInsert     string `json:"chamber_insert,omitempty"`
	AnalysisStart     string `json:"analysis_start,omitempty"`
	AnalysisEnd       string `json:"analysis_end,omitempty"`
	Temperature       string `json:"temperature,omitempty"`
	NumberOfPurges    string `json:"number_of_purges,omitempty"`
	PurgeFillPressure string `json:"purge_fill_pressure,omitempty"`
	NumberOfCycles    string `json:"number_of_cycles,omitempty"`
	CycleFillPressure string `json:"cycle_fill_pressure,omitempty"`
	EquilibRate       string `json:"equilib_rate,omitempty"`
	ExpansionVolume   string `json:"expansion_volume,omitempty"`
	AverageOffset     string `json:"average_offset,omitempty"`
	AverageCellVolume string `json:"average_cell_volume,omitempty"`

	// Cycles lists cycle rows in encounter order.
	Cycles []CycleRow `json:"cycles,omitempty"`
	// StandardDeviations lists every "Standard Deviation:" value in encounter order.
	StandardDeviations []string `json:"standard_deviations,omitempty"`

	// OffsetStandardDeviation is the first standard deviation of the summary block.
	OffsetStandardDeviation string `json:"offset_standard_deviation,omitempty"`
	// CellVolumeStandardDeviation is the second standard deviation of the summary block.
	CellVolumeStandardDeviation string `json:"cell_volume_standard_deviation,omitempty"`
}

// VolumeCalibration holds the right-hand "Volume Calibration" report.
type VolumeCalibration struct {
	ChamberInsert          string `json:"chamber_insert,omitempty"`
	AnalysisStart          string `json:"analysis_start,omitempty"`
	AnalysisEnd            string `json:"analysis_end,omitempty"`
	Temperature            string `json:"temperature,omitempty"`
	Reported               string `json:"reported,omitempty"`
	VolOfCalStandard       string `json:"vol_of_cal_standard,omitempty"`
	NumberOfPurges         string `json:"number_of_purges,omitempty"`
	PurgeFillPressure      string `json:"purge_fill_pressure,omitempty"`
	NumberOfCycles         string `json:"number_of_cycles,omitempty"`
	CycleFillPressure      string `json:"cycle_fill_pressure,omitempty"`
	EquilibRate            string `json:"equilib_rate,omitempty"`
	AverageOffset          string `json:"average_offset,omitempty"`
	AverageScaleFactor     string `json:"average_scale_factor,omitempty"`
	AverageCellVolume      string `json:"average_cell_volume,omitempty"`
	AverageExpansionVolume string `json:"average_expansion_volume,omitempty"`

	// Cycles lists cycle rows in encounter order.
	Cycles []CalibrationCycleRow `json:"cycles,omitempty"`
	// StandardDeviations lists every "Standard Deviation:" value in encounter order.
	StandardDeviations []string `json:"standard_deviations,omitempty"`

	OffsetStandardDeviation          string `json:"offset_standard_deviation,omitempty"`
	ScaleFactorStandardDeviation     string `json:"scale_factor_standard_deviation,omitempty"`
	CellVolumeStandardDeviation      string `json:"cell_volume_standard_deviation,omitempty"`
	ExpansionVolumeStandardDeviation string `json:"expansion_volume_standard_deviation,omitempty"`
}

// CalibrationReport is the result of one extraction run.
type CalibrationReport struct {
	// SourceName is the input file name (no path).
	SourceName string `json:"source_name,omitempty"`
	// ZeroCellVolume is the left-hand report.
	ZeroCellVolume ZeroCellVolume `json:"zero_cell_volume"`
	// VolumeCalibration is the right-hand report.
	VolumeCalibration VolumeCalibration `json:"volume_calibration"`
}

// FillDeviationSummary assigns the positional standard deviation fields
// from StandardDeviations.
func (z *ZeroCellVolume) FillDeviationSummary() {
	z.OffsetStandardDeviation = nth(z.StandardDeviations, 0)
	z.CellVolumeStandardDeviation = nth(z.StandardDeviations, 1)
}

// FillDeviationSummary assigns the positional standard deviation fields
// from StandardDeviations.
func (v *VolumeCalibration) FillDeviationSummary() {
	v.OffsetStandardDeviation = nth(v.StandardDeviations, 0)
	v.ScaleFactorStandardDeviation = nth(v.StandardDeviations, 1)
	v.CellVolumeStandardDeviation = nth(v.StandardDeviations, 2)
	v.ExpansionVolumeStandardDeviation = nth(v.StandardDeviations, 3)
}

func nth(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
