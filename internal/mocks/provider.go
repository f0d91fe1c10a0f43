package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Provider is a testify mock for git.Provider.
type Provider struct {
	mock.Mock
}

func NewProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *Provider {
	m := &Provider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *Provider) DiffWorking(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *Provider) DiffStaged(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *Provider) Untracked(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var paths []string
	if args.Get(0) != nil {
		paths = args.Get(0).([]string)
	}
	return paths, args.Error(1)
}
