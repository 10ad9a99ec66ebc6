package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodOverride(t *testing.T) {
	testCases := []struct {
		name     string
		method   string
		form     url.Values
		expected string
	}{
		{
			name:     "POST with _method=PUT is tunneled",
			method:   http.MethodPost,
			form:     url.Values{"_method": {"PUT"}, "category": {"Shoes"}},
			expected: http.MethodPut,
		},
		{
			name:     "POST with _method=DELETE is tunneled",
			method:   http.MethodPost,
			form:     url.Values{"_method": {"DELETE"}},
			expected: http.MethodDelete,
		},
		{
			name:     "plain POST is untouched",
			method:   http.MethodPost,
			form:     url.Values{"category": {"Shoes"}},
			expected: http.MethodPost,
		},
		{
			name:     "unknown override is ignored",
			method:   http.MethodPost,
			form:     url.Values{"_method": {"PATCH"}},
			expected: http.MethodPost,
		},
		{
			name:     "GET is never rewritten",
			method:   http.MethodGet,
			form:     nil,
			expected: http.MethodGet,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.Method
			})

			var body *strings.Reader
			if tc.form != nil {
				body = strings.NewReader(tc.form.Encode())
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tc.method, "/categories", body)
			if tc.form != nil {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			rec := httptest.NewRecorder()

			MethodOverride(inner).ServeHTTP(rec, req)
			assert.Equal(t, tc.expected, seen)
		})
	}
}

func TestMethodOverrideKeepsFormReadable(t *testing.T) {
	var got string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.PostFormValue("category")
	})

	form := url.Values{"_method": {"PUT"}, "category": {"Shoes"}}
	req := httptest.NewRequest(http.MethodPost, "/edit_category/Shoes", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	MethodOverride(inner).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "Shoes", got)
}
