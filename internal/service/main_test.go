package service_test

import (
	"testing"

	"github.com/limbo/calai/internal/service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}
