package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_Check(t *testing.T) {
	svc := NewHealthService("contact-relay")

	res, err := svc.Check(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res.Status)
	require.NotNil(t, res.Service)
	assert.Equal(t, "healthy", *res.Status)
	assert.Equal(t, "contact-relay", *res.Service)
}
