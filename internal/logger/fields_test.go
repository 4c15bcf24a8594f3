package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	fields := StringFields(
		StringField{Key: "phase", Value: "vectorize"},
		StringField{Key: "", Value: "dropped"},
		StringField{Key: "job_id", Value: "   "},
		StringField{Key: "  tag  ", Value: " java "},
	)

	assert.Equal(t, []zap.Field{
		zap.String("phase", "vectorize"),
		zap.String("tag", "java"),
	}, fields)
}

func TestPhaseFields(t *testing.T) {
	fields := PhaseFields("normalize", "job-42")
	assert.Equal(t, []zap.Field{
		zap.String(FieldPhase, "normalize"),
		zap.String(FieldJobID, "job-42"),
	}, fields)

	assert.Equal(t, []zap.Field{
		zap.String(FieldPhase, "normalize"),
	}, PhaseFields("normalize", ""))
}

func TestWithFieldsNilLogger(t *testing.T) {
	assert.NotNil(t, WithFields(nil))
	assert.NotNil(t, WithPhase(nil, "fetch", ""))
}

func TestWithFieldsNoFieldsReturnsSameLogger(t *testing.T) {
	base := zap.NewNop()
	assert.Same(t, base, WithFields(base))
}
