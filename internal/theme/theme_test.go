package theme_test

import (
	"context"
	"errors"
	"testing"
	"ulascansenturk/weather-widget/internal/mocks"
	"ulascansenturk/weather-widget/internal/theme"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ThemeTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *theme.MemoryStore
}

func (s *ThemeTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = theme.NewMemoryStore()
}

func (s *ThemeTestSuite) TestParse() {
	s.Equal(theme.Dark, theme.Parse("dark"))
	s.Equal(theme.Light, theme.Parse("light"))
	s.Equal(theme.Light, theme.Parse(""))
	s.Equal(theme.Light, theme.Parse("DARK"))
}

func (s *ThemeTestSuite) TestToggleTwiceRestores() {
	s.Equal(theme.Light, theme.Light.Toggle().Toggle())
	s.Equal(theme.Dark, theme.Light.Toggle())
	s.True(theme.Light.Toggle().IsDark())
}

func (s *ThemeTestSuite) TestKey() {
	s.Equal("theme", theme.Key(""))
	s.Equal("abc:theme", theme.Key("abc"))
}

func (s *ThemeTestSuite) TestLoadMissingIsLight() {
	pref, err := theme.Load(s.ctx, s.store, "session")
	s.NoError(err)
	s.Equal(theme.Light, pref)
}

func (s *ThemeTestSuite) TestSaveThenLoad() {
	s.Require().NoError(theme.Save(s.ctx, s.store, "session", theme.Dark))

	pref, err := theme.Load(s.ctx, s.store, "session")
	s.NoError(err)
	s.Equal(theme.Dark, pref)

	raw, err := s.store.Get(s.ctx, "session:theme")
	s.NoError(err)
	s.Equal("dark", raw)

	other, err := theme.Load(s.ctx, s.store, "other")
	s.NoError(err)
	s.Equal(theme.Light, other)
}

func (s *ThemeTestSuite) TestLoadStoreFailure() {
	store := mocks.NewMockStore(s.T())
	store.On("Get", mock.Anything, "session:theme").Return("", errors.New("connection refused"))

	pref, err := theme.Load(s.ctx, store, "session")
	s.Error(err)
	s.Contains(err.Error(), "connection refused")
	s.Equal(theme.Light, pref)
}

func (s *ThemeTestSuite) TestSaveStoreFailure() {
	store := mocks.NewMockStore(s.T())
	store.On("Set", mock.Anything, "session:theme", "dark").Return(errors.New("read only"))

	err := theme.Save(s.ctx, store, "session", theme.Dark)
	s.Error(err)
	s.Contains(err.Error(), "save theme")
}

func TestThemeSuite(t *testing.T) {
	suite.Run(t, new(ThemeTestSuite))
}
