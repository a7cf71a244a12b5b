package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusAccepted.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, RequestStatus("").IsValid())
	assert.False(t, RequestStatus("done").IsValid())
}

func TestRequestStatus_IsSettable(t *testing.T) {
	assert.True(t, StatusAccepted.IsSettable())
	assert.True(t, StatusRejected.IsSettable())

	// pending is only ever the initial value
	assert.False(t, StatusPending.IsSettable())
	assert.False(t, RequestStatus("bogus").IsSettable())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleInstructor.IsValid())
	assert.False(t, Role("admin").IsValid())
}
