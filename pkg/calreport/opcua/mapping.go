// Package opcua maps extracted calibration reports to OPC UA node writes and
// publishes them to a server.
package opcua

import (
	"fmt"
	"strings"

	"github.com/ukaji3/calreport-go/internal/config"
	"github.com/ukaji3/calreport-go/pkg/calreport/models"
)

// WriteItem is one value to write to one node.
type WriteItem struct {
	NodeID      string `json:"node_id"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Section prefixes of item descriptions.
const (
	ZeroCellVolumePrefix    = "Zero Cell Volume"
	VolumeCalibrationPrefix = "Volume Calibration"
)

type itemList struct {
	prefix string
	items  []WriteItem
}

// add keeps the item only when both the node id and the value are set.
func (l *itemList) add(nodeID, value, label string) {
	if strings.TrimSpace(nodeID) == "" || value == "" {
		return
	}
	l.items = append(l.items, WriteItem{
		NodeID:      strings.TrimSpace(nodeID),
		Value:       value,
		Description: l.prefix + " - " + label,
	})
}

func (l *itemList) cycles(nodes []string, rows []string, maxCycles int) {
	n := min(len(rows), maxCycles, len(nodes))
	for i := 0; i < n; i++ {
		l.add(nodes[i], rows[i], fmt.Sprintf("Cycle Row %d", i+1))
	}
}

// MapReport turns report into write items following nodes. Fields without a
// node id or without a value are left out. At most maxCycles cycle rows are
// mapped per report, each as a comma-joined string.
func MapReport(nodes config.NodeMappings, report *models.CalibrationReport, maxCycles int) []WriteItem {
	zn := nodes.ZeroCellVolume
	z := &report.ZeroCellVolume
	zl := &itemList{prefix: ZeroCellVolumePrefix}
	zl.add(zn.ChamberInsert, z.ChamberInsert, "Chamber Insert")
	zl.add(zn.AnalysisStart, z.AnalysisStart, "Analysis Start")
	zl.add(zn.AnalysisEnd, z.AnalysisEnd, "Analysis End")
	zl.add(zn.Temperature, z.Temperature, "Temperature")
	zl.add(zn.NumberOfPurges, z.NumberOfPurges, "Number of Purges")
	zl.add(zn.PurgeFillPressure, z.PurgeFillPressure, "Purge Fill Pressure")
	zl.add(zn.NumberOfCycles, z.NumberOfCycles, "Number of Cycles")
	zl.add(zn.CycleFillPressure, z.CycleFillPressure, "Cycle Fill Pressure")
	zl.add(zn.EquilibRate, z.EquilibRate, "Equilib Rate")
	zl.add(zn.ExpansionVolume, z.ExpansionVolume, "Expansion Volume")
	zl.add(zn.AverageOffset, z.AverageOffset, "Average Offset")
	zl.add(zn.OffsetStandardDeviation, z.OffsetStandardDeviation, "Offset Standard Deviation")
	zl.add(zn.AverageCellVolume, z.AverageCellVolume, "Average Cell Volume")
	zl.add(zn.CellVolumeStandardDeviation, z.CellVolumeStandardDeviation, "Cell Volume Standard Deviation")
	zl.cycles(zn.CycleRows, ZeroCellVolumeCycleStrings(z.Cycles), maxCycles)

	vn := nodes.VolumeCalibration
	v := &report.VolumeCalibration
	vl := &itemList{prefix: VolumeCalibrationPrefix}
	vl.add(vn.ChamberInsert, v.ChamberInsert, "Chamber Insert")
	vl.add(vn.AnalysisStart, v.AnalysisStart, "Analysis Start")
	vl.add(vn.AnalysisEnd, v.AnalysisEnd, "Analysis End")
	vl.add(vn.Temperature, v.Temperature, "Temperature")
	vl.add(vn.Reported, v.Reported, "Reported")
	vl.add(vn.VolOfCalStandard, v.VolOfCalStandard, "Vol of Cal Standard")
	vl.add(vn.NumberOfPurges, v.NumberOfPurges, "Number of Purges")
	vl.add(vn.PurgeFillPressure, v.PurgeFillPressure, "Purge Fill Pressure")
	vl.add(vn.NumberOfCycles, v.NumberOfCycles, "Number of Cycles")
	vl.add(vn.CycleFillPressure, v.CycleFillPressure, "Cycle Fill Pressure")
	vl.add(vn.EquilibRate, v.EquilibRate, "Equilib Rate")
	vl.add(vn.AverageOffset, v.AverageOffset, "Average Offset")
	vl.add(vn.OffsetStandardDeviation, v.OffsetStandardDeviation, "Offset Standard Deviation")
	vl.add(vn.AverageScaleFactor, v.AverageScaleFactor, "Average Scale Factor")
	vl.add(vn.ScaleFactorStandardDeviation, v.ScaleFactorStandardDeviation, "Scale Factor Standard Deviation")
	vl.add(vn.AverageCellVolume, v.AverageCellVolume, "Average Cell Volume")
	vl.add(vn.CellVolumeStandardDeviation, v.CellVolumeStandardDeviation, "Cell Volume Standard Deviation")
	vl.add(vn.AverageExpansionVolume, v.AverageExpansionVolume, "Average Expansion Volume")
	vl.add(vn.ExpansionVolumeStandardDeviation, v.ExpansionVolumeStandardDeviation, "Expansion Volume Standard Deviation")
	vl.cycles(vn.CycleRows, VolumeCalibrationCycleStrings(v.Cycles), maxCycles)

	return append(zl.items, vl.items...)
}

// ZeroCellVolumeCycleStrings formats cycles as "number,volume,deviation".
func ZeroCellVolumeCycleStrings(cycles []models.CycleRow) []string {
	out := make([]string, len(cycles))
	for i, c := range cycles {
		out[i] = strings.Join([]string{c.CycleNumber, c.CellVolume, c.Deviation}, ",")
	}
	return out
}

// VolumeCalibrationCycleStrings formats cycles as
// "number,volume,deviation,expansion,expansion deviation".
func VolumeCalibrationCycleStrings(cycles []models.CalibrationCycleRow) []string {
	out := make([]string, len(cycles))
	for i, c := range cycles {
		out[i] = strings.Join([]string{c.CycleNumber, c.CellVolume, c.Deviation, c.ExpansionVolume, c.ExpansionDeviation}, ",")
	}
	return out
}
