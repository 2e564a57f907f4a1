package loclib_test

import (
	"context"
	"net"

	"github.com/9seconds/loglocate/loclib"
	"github.com/stretchr/testify/mock"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Lookup(ctx context.Context, ip net.IP) (loclib.LocationRecord, error) {
	args := m.Called(ctx, ip.String())

	return args.Get(0).(loclib.LocationRecord), args.Error(1)
}

func (m *ProviderMock) Name() string {
	return m.Called().String(0)
}

type ClosingProviderMock struct {
	ProviderMock
}

func (m *ClosingProviderMock) Close() error {
	return m.Called().Error(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) InvalidAddress(lineNo int, token string) {
	m.Called(lineNo, token)
}

func (m *LoggerMock) LookupError(ip net.IP, name string, err error) {
	m.Called(ip.String(), name, err)
}
