package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFramework(t *testing.T) {
	assert.NoError(t, ValidateFramework(""))
	assert.NoError(t, ValidateFramework("tensorflow"))
	assert.NoError(t, ValidateFramework("SKLEARN"))
	assert.NoError(t, ValidateFramework("xgboost"))
	assert.ErrorIs(t, ValidateFramework("caffe"), ErrUnsupportedFramework)
}

func TestJobStateTerminal(t *testing.T) {
	assert.False(t, JobStateQueued.Terminal())
	assert.False(t, JobStatePreparing.Terminal())
	assert.False(t, JobStateRunning.Terminal())
	assert.True(t, JobStateSucceeded.Terminal())
	assert.True(t, JobStateFailed.Terminal())
	assert.True(t, JobStateCancelled.Terminal())
}

func TestExampleCSV(t *testing.T) {
	e := &Example{SessionID: "s-1", Pageviews: 12, TimeOnSite: 340, IsMobile: true, AddedToCart: false}
	assert.Equal(t, []string{"s-1", "12", "340", "true", "false"}, e.CSVRecord())
	assert.Len(t, CSVHeader(), len(e.CSVRecord()))
	assert.Equal(t, []float64{12, 340, 1}, e.Features())
	assert.Equal(t, 0.0, e.Label())
}
