// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package candidate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
	Error string `json:"error"`
	Code  string `json:"code"`
}

type mutation struct {
	Message   string     `json:"message"`
	Candidate *Candidate `json:"candidate"`
}

func serve(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader(body)))

	var decoded envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

func TestHandler_CandidateLifecycle(t *testing.T) {
	service, _ := newTestService()
	router := chi.NewRouter()
	NewHandler(service).RegisterRoutes(router)

	// Create
	recorder, body := serve(t, router, http.MethodPost, "/", `{
		"firstName": "Cara", "lastName": "Nguyen", "email": "cara@x.com", "phone": "+84 1234",
		"qualifications": ["BSc"], "experience": 3, "jobPreferences": ["Remote"],
		"resume": "https://cdn.example.com/cara.pdf", "appliedJob": "`+jobA+`"
	}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created mutation
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, MessageCreated, created.Message)
	assert.Equal(t, StatusApplied, created.Candidate.Status)
	path := "/" + created.Candidate.ID

	// Unknown job
	recorder, body = serve(t, router, http.MethodPost, "/", `{
		"firstName": "Dan", "lastName": "Tran", "email": "dan@x.com", "phone": "1",
		"qualifications": ["BSc"], "jobPreferences": ["Onsite"],
		"appliedJob": "0190b3a4-7c1e-7a00-8000-0000000000ff"
	}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Job not found", body.Error)

	// Status
	recorder, body = serve(t, router, http.MethodPut, path+"/status", `{"status":"Hired"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	var status mutation
	require.NoError(t, json.Unmarshal(body.Data, &status))
	assert.Equal(t, MessageStatusUpdated, status.Message)
	assert.Equal(t, StatusHired, status.Candidate.Status)

	// Update
	recorder, body = serve(t, router, http.MethodPut, path, `{"currentCompany":"Hirelane"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	var updated mutation
	require.NoError(t, json.Unmarshal(body.Data, &updated))
	assert.Equal(t, MessageUpdated, updated.Message)
	assert.Equal(t, "Hirelane", *updated.Candidate.CurrentCompany)
	assert.Equal(t, StatusHired, updated.Candidate.Status)

	// List
	recorder, body = serve(t, router, http.MethodGet, "/?status=Hired", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, body.Meta.Total)

	var list listResponse
	require.NoError(t, json.Unmarshal(body.Data, &list))
	require.Len(t, list.Candidates, 1)
	require.Len(t, list.AttentionCards, 3)
	assert.Equal(t, "Onboarding Tasks", list.AttentionCards[2].Title)
	assert.Equal(t, 1, list.AttentionCards[2].Count)

	// Get and delete
	recorder, _ = serve(t, router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder, body = serve(t, router, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Candidate deleted successfully"}`, string(body.Data))

	recorder, body = serve(t, router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Candidate not found", body.Error)
}

func TestHandler_CandidateBadInput(t *testing.T) {
	service, _ := newTestService()
	router := chi.NewRouter()
	NewHandler(service).RegisterRoutes(router)

	recorder, body := serve(t, router, http.MethodPost, "/", `[`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	recorder, body = serve(t, router, http.MethodGet, "/?appliedJob=nope", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}
