package model

// Stage represents the progress of the conversion pipeline
type Stage string

const (
	// StageIdle means no conversion is running
	StageIdle Stage = "Idle"

	// StageDecoding means the source is being decoded; this is the only suspending step
	StageDecoding Stage = "Decoding"

	// StageDrawing means the decoded image is being copied onto the surface
	StageDrawing Stage = "Drawing"

	// StageEncoding means the surface is being encoded into the target format
	StageEncoding Stage = "Encoding"

	// StageDone means the last conversion produced a result
	StageDone Stage = "Done"

	// StageFailed means the last conversion failed
	StageFailed Stage = "Failed"
)

// String returns the string representation of Stage
func (s Stage) String() string {
	return string(s)
}

// IsActive returns true while a conversion is in flight
func (s Stage) IsActive() bool {
	return s == StageDecoding || s == StageDrawing || s == StageEncoding
}

// IsFinished returns true if the last conversion settled (done or failed)
func (s Stage) IsFinished() bool {
	return s == StageDone || s == StageFailed
}
