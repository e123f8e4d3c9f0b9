package pool

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestDepthCollector(t *testing.T) {
	require := require.New(t)
	r := NewRegistry()
	r.SetDepthReporting(true)
	strPool := NewSyncPool[wrapperspb.StringValue](WithRegistry(r), WithInitialCount(3))
	NewSyncPool[timestamppb.Timestamp](WithRegistry(r))
	c := NewDepthCollector(r)

	require.Equal(2, testutil.CollectAndCount(c, "message_pool_idle_objects"))

	strPool.Get()
	expected := `
# HELP message_pool_idle_objects Amount of idle objects in the message pool.
# TYPE message_pool_idle_objects gauge
message_pool_idle_objects{message_type="*timestamppb.Timestamp"} 10
message_pool_idle_objects{message_type="*wrapperspb.StringValue"} 2
`
	require.NoError(testutil.CollectAndCompare(c, strings.NewReader(expected), "message_pool_idle_objects"))
}

func TestDepthCollector_NothingBound(t *testing.T) {
	require.Zero(t, testutil.CollectAndCount(NewDepthCollector(NewRegistry())))
}
