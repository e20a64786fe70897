package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", Operation("SELECT id FROM requests"))
	assert.Equal(t, "insert", Operation("\n  INSERT INTO bookings (id) VALUES ($1)"))
	assert.Equal(t, "unknown", Operation("   "))
}
