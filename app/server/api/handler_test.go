package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themer/app/server/api/mocks"
	"github.com/umputun/themer/app/store"
)

func TestHandler_List(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("returns preferences", func(t *testing.T) {
		st := &mocks.PrefAdminMock{
			ListFunc: func(context.Context) ([]store.Preference, error) {
				return []store.Preference{{Client: "c1", Theme: "dark", CreatedAt: ts, UpdatedAt: ts}}, nil
			},
		}
		rec := serve(t, st, http.MethodGet, "/prefs")
		require.Equal(t, http.StatusOK, rec.Code)

		var prefs []store.Preference
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
		require.Len(t, prefs, 1)
		assert.Equal(t, "c1", prefs[0].Client)
		assert.Equal(t, "dark", prefs[0].Theme)
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		st := &mocks.PrefAdminMock{ListFunc: func(context.Context) ([]store.Preference, error) { return nil, nil }}
		rec := serve(t, st, http.MethodGet, "/prefs")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		st := &mocks.PrefAdminMock{ListFunc: func(context.Context) ([]store.Preference, error) { return nil, assert.AnError }}
		rec := serve(t, st, http.MethodGet, "/prefs")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "deleted", err: nil, expected: http.StatusNoContent},
		{name: "not found", err: store.ErrNotFound, expected: http.StatusNotFound},
		{name: "store error", err: assert.AnError, expected: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := &mocks.PrefAdminMock{DeleteFunc: func(context.Context, string) error { return tc.err }}
			rec := serve(t, st, http.MethodDelete, "/prefs/ABC")
			assert.Equal(t, tc.expected, rec.Code)
			require.Len(t, st.DeleteCalls(), 1)
			assert.Equal(t, "abc", st.DeleteCalls()[0].Client)
		})
	}
}

func serve(t *testing.T, st PrefAdmin, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := routegroup.New(http.NewServeMux())
	New(st).Register(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, http.NoBody))
	return rec
}
