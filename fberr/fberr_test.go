package fberr_test

import (
	"errors"
	"testing"

	"github.com/dinneo/fbbuild/fberr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KindSurvivesErrorsAs(t *testing.T) {
	err := fberr.New(fberr.ObjectTooLarge, "table inline size %d too big", 70000)

	var protoErr *fberr.ProtocolError
	require.True(t, errors.As(err, &protoErr))
	assert.Equal(t, fberr.ObjectTooLarge, protoErr.Kind)
	assert.Contains(t, protoErr.Error(), "object too large")
	assert.Contains(t, protoErr.Error(), "70000")
}

func TestKind_StringUnknownDefault(t *testing.T) {
	assert.Equal(t, "unknown protocol error", fberr.Kind(999).String())
}
