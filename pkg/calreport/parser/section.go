package parser

// Section labels recognised on each side of a row.
const (
	ZeroCellVolumeHeader    = "Zero Cell Volume Header"
	ZeroCellVolumeReport    = "Zero Cell Volume Report"
	VolumeCalibrationHeader = "Volume Calibration Header"
	VolumeCalibrationReport = "Volume Calibration Report"
)

// SectionState tracks which report sections have been seen so far.
// The *Seen flags are sticky; the two Active flags are mutually exclusive.
type SectionState struct {
	LeftHeaderSeen     bool
	LeftReportSeen     bool
	RightHeaderSeen    bool
	RightReportSeen    bool
	ActiveLeftSection  bool
	ActiveRightSection bool
}

// Observe updates the state from one row's left and right field lists.
func (s *SectionState) Observe(left, right []string) {
	for _, field := range left {
		if containsFold(field, ZeroCellVolumeHeader) {
			s.LeftHeaderSeen = true
			s.ActiveLeftSection = true
			s.ActiveRightSection = false
		}
		if containsFold(field, ZeroCellVolumeReport) {
			s.LeftReportSeen = true
		}
	}

	for _, field := range right {
		if containsFold(field, VolumeCalibrationHeader) {
			s.RightHeaderSeen = true
			s.ActiveRightSection = true
			s.ActiveLeftSection = false
		}
		if containsFold(field, VolumeCalibrationReport) {
			s.RightReportSeen = true
		}
	}
}

// OfferLeft reports whether the left list should go to the Zero Cell Volume extractor.
func (s SectionState) OfferLeft() bool {
	return s.ActiveLeftSection || s.LeftHeaderSeen
}

// OfferRight reports whether the right list should go to the Volume Calibration extractor.
func (s SectionState) OfferRight() bool {
	return s.ActiveRightSection || s.RightHeaderSeen
}
