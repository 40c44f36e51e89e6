package service

import (
	"context"
	"testing"

	"viwahaa-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditTrailRecordsEventInSystemLog(t *testing.T) {
	log := &recordingLogger{}
	trail := NewAuditTrail(nil, log)

	err := trail.record(context.Background(), events.New(events.TypeProfilePurged, map[string]interface{}{
		"member_id": "SM-0007",
	}))
	require.NoError(t, err)

	require.Len(t, log.infos, 1)
	assert.Equal(t, "Audit", log.infos[0].tag)
	assert.Equal(t, events.TypeProfilePurged, log.infos[0].msg)
	assert.Equal(t, "SM-0007", log.infos[0].fields["member_id"])
}
