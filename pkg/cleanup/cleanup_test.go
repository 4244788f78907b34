package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/calai/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	var order []string
	job := func(name string, err error) *cleanup.Job {
		return &cleanup.Job{
			Name: name,
			F: func() error {
				order = append(order, name)
				return err
			},
		}
	}
	cleanup.Register(job("pool", nil))
	cleanup.Register(job("redis", errors.New("already closed")))
	cleanup.Register(job("log file", nil))

	cleanup.CleanUp()
	assert.Equal(t, []string{"log file", "redis", "pool"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 3)
}
