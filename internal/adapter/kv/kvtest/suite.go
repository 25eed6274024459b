// Package kvtest holds the behaviour every ports.KeyValueStore backend must
// share, as a testify suite the backend packages run against themselves.
package kvtest

import (
	"context"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

type Suite struct {
	suite.Suite

	// NewStore returns an empty store. It is called before every test.
	NewStore func() ports.KeyValueStore
	store    ports.KeyValueStore
}

func (s *Suite) SetupTest() {
	s.store = s.NewStore()
}

func (s *Suite) TestGetMissingKey() {
	_, err := s.store.Get(context.Background(), "missing")
	s.Require().ErrorIs(err, domain.ErrKeyNotFound)
}

func (s *Suite) TestSetThenGet() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "app_tasks", []byte(`[{"id":"1"}]`)))

	got, err := s.store.Get(ctx, "app_tasks")
	s.Require().NoError(err)
	s.Require().Equal(`[{"id":"1"}]`, string(got))
}

func (s *Suite) TestSetOverwrites() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "k", []byte("one")))
	s.Require().NoError(s.store.Set(ctx, "k", []byte("two")))

	got, err := s.store.Get(ctx, "k")
	s.Require().NoError(err)
	s.Require().Equal("two", string(got))
}

func (s *Suite) TestDelete() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "k", []byte("v")))
	s.Require().NoError(s.store.Delete(ctx, "k"))

	_, err := s.store.Get(ctx, "k")
	s.Require().ErrorIs(err, domain.ErrKeyNotFound)
}

func (s *Suite) TestDeleteMissingKey() {
	s.Require().NoError(s.store.Delete(context.Background(), "never-set"))
}

func (s *Suite) TestReturnedValueIsACopy() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "k", []byte("abc")))

	got, err := s.store.Get(ctx, "k")
	s.Require().NoError(err)
	got[0] = 'x'

	again, err := s.store.Get(ctx, "k")
	s.Require().NoError(err)
	s.Require().Equal("abc", string(again))
}
