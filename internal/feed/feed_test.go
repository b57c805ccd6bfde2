package feed

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewReader_StartsAtLatestOffset(t *testing.T) {
	r := NewReader([]string{"localhost:9092"}, "entity_changes")
	defer r.Close()

	kr, ok := r.(*kafka.Reader)
	require.True(t, ok)
	// Group-less readers default to FirstOffset, which would replay the
	// whole topic to every new subscriber. Subscribers must only see
	// events from subscribe time on.
	assert.Equal(t, kafka.LastOffset, kr.Offset())
}
