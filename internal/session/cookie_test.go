package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"
	"ulascansenturk/weather-widget/internal/session"

	"github.com/google/uuid"
)

func (s *ManagerTestSuite) TestFromRequestIssuesCookie() {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	controller := s.manager.FromRequest(recorder, req)

	cookies := recorder.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(session.CookieName, cookies[0].Name)
	s.Equal(controller.SessionID(), cookies[0].Value)
	s.True(cookies[0].HttpOnly)
	s.Equal(int((5 * time.Minute).Seconds()), cookies[0].MaxAge)
}

func (s *ManagerTestSuite) TestFromRequestReusesCookie() {
	first := s.manager.FromRequest(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: first.SessionID()})

	second := s.manager.FromRequest(httptest.NewRecorder(), req)

	s.Same(first, second)
}

func (s *ManagerTestSuite) TestFromRequestReplacesForeignCookie() {
	foreign := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: foreign})
	recorder := httptest.NewRecorder()

	controller := s.manager.FromRequest(recorder, req)

	s.NotEqual(foreign, controller.SessionID())
	cookies := recorder.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(controller.SessionID(), cookies[0].Value)
}

func (s *ManagerTestSuite) TestLookupNeverCreates() {
	_, ok := s.manager.Lookup(httptest.NewRequest(http.MethodGet, "/", nil))
	s.False(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: uuid.NewString()})
	_, ok = s.manager.Lookup(req)
	s.False(ok)

	s.Equal(0, s.manager.Len())
	s.Equal(0, s.created)

	id, created := s.manager.GetOrCreate(context.Background(), "")
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	found, ok := s.manager.Lookup(req)
	s.True(ok)
	s.Same(created, found)
}
