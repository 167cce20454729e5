package opcua

import (
	"context"
	"errors"
	"testing"

	"github.com/gopcua/opcua/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/calreport-go/internal/config"
	"github.com/ukaji3/calreport-go/pkg/calreport/models"
)

func testReport() *models.CalibrationReport {
	return &models.CalibrationReport{
		ZeroCellVolume: models.ZeroCellVolume{
			ChamberInsert:           "Small",
			Temperature:             "24.9 °C",
			AverageOffset:           "0.0010 cm³",
			OffsetStandardDeviation: "0.0002 cm³",
			Cycles: []models.CycleRow{
				{CycleNumber: "1", CellVolume: "12.4501", Deviation: "0.0012"},
				{CycleNumber: "2", CellVolume: "12.4503", Deviation: "0.0010"},
				{CycleNumber: "3", CellVolume: "12.4502", Deviation: "0.0011"},
			},
		},
		VolumeCalibration: models.VolumeCalibration{
			Reported: "Yes",
			Cycles: []models.CalibrationCycleRow{
				{CycleNumber: "1", CellVolume: "12.4490", Deviation: "0.0003", ExpansionVolume: "8.4511", ExpansionDeviation: "-0.0001"},
			},
		},
	}
}

func testNodes() config.NodeMappings {
	return config.NodeMappings{
		ZeroCellVolume: config.ZeroCellVolumeNodes{
			ChamberInsert:           "ns=2;s=Cal.ZCV.ChamberInsert",
			Temperature:             " ns=2;s=Cal.ZCV.Temperature ",
			AnalysisStart:           "ns=2;s=Cal.ZCV.AnalysisStart",
			OffsetStandardDeviation: "ns=2;s=Cal.ZCV.OffsetSD",
			CycleRows:               []string{"ns=2;s=Cal.ZCV.Cycle1", "", "ns=2;s=Cal.ZCV.Cycle3"},
		},
		VolumeCalibration: config.VolumeCalibrationNodes{
			Reported:  "ns=2;s=Cal.VC.Reported",
			CycleRows: []string{"ns=2;s=Cal.VC.Cycle1", "ns=2;s=Cal.VC.Cycle2"},
		},
	}
}

func TestMapReport(t *testing.T) {
	items := MapReport(testNodes(), testReport(), 10)

	expected := []WriteItem{
		{NodeID: "ns=2;s=Cal.ZCV.ChamberInsert", Value: "Small", Description: "Zero Cell Volume - Chamber Insert"},
		{NodeID: "ns=2;s=Cal.ZCV.Temperature", Value: "24.9 °C", Description: "Zero Cell Volume - Temperature"},
		{NodeID: "ns=2;s=Cal.ZCV.OffsetSD", Value: "0.0002 cm³", Description: "Zero Cell Volume - Offset Standard Deviation"},
		{NodeID: "ns=2;s=Cal.ZCV.Cycle1", Value: "1,12.4501,0.0012", Description: "Zero Cell Volume - Cycle Row 1"},
		{NodeID: "ns=2;s=Cal.ZCV.Cycle3", Value: "3,12.4502,0.0011", Description: "Zero Cell Volume - Cycle Row 3"},
		{NodeID: "ns=2;s=Cal.VC.Reported", Value: "Yes", Description: "Volume Calibration - Reported"},
		{NodeID: "ns=2;s=Cal.VC.Cycle1", Value: "1,12.4490,0.0003,8.4511,-0.0001", Description: "Volume Calibration - Cycle Row 1"},
	}
	assert.Equal(t, expected, items)
}

func TestMapReportMaxCycles(t *testing.T) {
	items := MapReport(testNodes(), testReport(), 1)

	var cycles []string
	for _, item := range items {
		if item.NodeID == "ns=2;s=Cal.ZCV.Cycle1" || item.NodeID == "ns=2;s=Cal.ZCV.Cycle3" {
			cycles = append(cycles, item.Value)
		}
	}
	assert.Equal(t, []string{"1,12.4501,0.0012"}, cycles)
}

func TestMapReportNoMappings(t *testing.T) {
	assert.Empty(t, MapReport(config.NodeMappings{}, testReport(), 10))
}

type fakeWriter struct {
	calls  int
	result BatchResult
	err    error
}

func (f *fakeWriter) WriteBatch(_ context.Context, items []WriteItem) (BatchResult, error) {
	f.calls++
	if f.err != nil {
		return BatchResult{}, f.err
	}
	if f.result.Succeeded == nil && f.result.Failed == nil {
		return BatchResult{Succeeded: items}, nil
	}
	return f.result, nil
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	items := MapReport(testNodes(), testReport(), 10)

	t.Run("empty batch is not sent", func(t *testing.T) {
		w := &fakeWriter{}
		result, err := Publish(ctx, w, nil, nil)
		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Zero(t, w.calls)
	})

	t.Run("all succeed", func(t *testing.T) {
		w := &fakeWriter{}
		result, err := Publish(ctx, w, items, nil)
		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Len(t, result.Succeeded, len(items))
		assert.Equal(t, 1, w.calls)
	})

	t.Run("partial failure", func(t *testing.T) {
		w := &fakeWriter{result: BatchResult{
			Succeeded: items[:1],
			Failed:    []ItemFailure{{Item: items[1], Status: "BadNodeIdUnknown"}},
		}}
		result, err := Publish(ctx, w, items[:2], nil)
		require.NoError(t, err)
		assert.False(t, result.OK())
		assert.Equal(t, "BadNodeIdUnknown", result.Failed[0].Status)
	})

	t.Run("transport error", func(t *testing.T) {
		w := &fakeWriter{err: ErrNotConnected}
		_, err := Publish(ctx, w, items, nil)
		assert.True(t, errors.Is(err, ErrNotConnected))
	})
}

func TestClientNotConnected(t *testing.T) {
	var c *Client
	_, err := c.WriteBatch(context.Background(), []WriteItem{{NodeID: "ns=2;s=X", Value: "1"}})
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.NoError(t, c.Close(context.Background()))
}

func TestBuildWriteRequest(t *testing.T) {
	items := []WriteItem{
		{NodeID: "ns=2;s=Cal.ZCV.ChamberInsert", Value: "Small", Description: "Zero Cell Volume - Chamber Insert"},
		{NodeID: "i=2258", Value: "1,12.4501,0.0012", Description: "Zero Cell Volume - Cycle Row 1"},
	}

	req, err := BuildWriteRequest(items)
	require.NoError(t, err)
	require.Len(t, req.NodesToWrite, 2)

	first := req.NodesToWrite[0]
	assert.Equal(t, ua.AttributeIDValue, first.AttributeID)
	assert.Equal(t, "ns=2;s=Cal.ZCV.ChamberInsert", first.NodeID.String())
	assert.Equal(t, "Small", first.Value.Value.Value())

	_, err = BuildWriteRequest([]WriteItem{{NodeID: "not a node", Value: "x"}})
	assert.Error(t, err)
}

func TestSortResults(t *testing.T) {
	items := []WriteItem{
		{NodeID: "ns=2;s=A", Value: "1"},
		{NodeID: "ns=2;s=B", Value: "2"},
		{NodeID: "ns=2;s=C", Value: "3"},
	}

	result := SortResults(items, []ua.StatusCode{ua.StatusOK, ua.StatusCode(0x80340000)})

	assert.Equal(t, items[:1], result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, items[1], result.Failed[0].Item)
	assert.NotEmpty(t, result.Failed[0].Status)
	assert.Equal(t, "no result", result.Failed[1].Status)
}

func TestSecuritySelection(t *testing.T) {
	policy, mode := securitySelection(config.OPCUAConfig{UseSecurity: false, SecurityPolicy: "Basic256Sha256"})
	assert.Equal(t, "None", policy)
	assert.Equal(t, "None", mode)

	policy, mode = securitySelection(config.OPCUAConfig{UseSecurity: true, SecurityPolicy: "Basic256Sha256", SecurityMode: "SignAndEncrypt"})
	assert.Equal(t, "Basic256Sha256", policy)
	assert.Equal(t, "SignAndEncrypt", mode)
}
