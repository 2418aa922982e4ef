package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type TestResponse struct {
	StatusCode int
	Body       []byte
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	expectedStatusCode int,
) *TestResponse {
	return makeRequest(t, router, http.MethodGet, path, authHeader, nil, expectedStatusCode)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	expectedStatusCode int,
	response any,
) {
	resp := MakeGetRequest(t, router, path, authHeader, expectedStatusCode)
	unmarshalBody(t, resp, response)
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	body any,
	expectedStatusCode int,
) *TestResponse {
	return makeRequest(t, router, http.MethodPost, path, authHeader, body, expectedStatusCode)
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	body any,
	expectedStatusCode int,
	response any,
) {
	resp := MakePostRequest(t, router, path, authHeader, body, expectedStatusCode)
	unmarshalBody(t, resp, response)
}

func MakePutRequest(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	body any,
	expectedStatusCode int,
) *TestResponse {
	return makeRequest(t, router, http.MethodPut, path, authHeader, body, expectedStatusCode)
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	path string,
	authHeader string,
	expectedStatusCode int,
) *TestResponse {
	return makeRequest(t, router, http.MethodDelete, path, authHeader, nil, expectedStatusCode)
}

func makeRequest(
	t *testing.T,
	router *gin.Engine,
	method string,
	path string,
	authHeader string,
	body any,
	expectedStatusCode int,
) *TestResponse {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(
		t,
		expectedStatusCode,
		recorder.Code,
		"unexpected status for %s %s: %s",
		method,
		path,
		recorder.Body.String(),
	)

	return &TestResponse{
		StatusCode: recorder.Code,
		Body:       recorder.Body.Bytes(),
	}
}

func unmarshalBody(t *testing.T, resp *TestResponse, target any) {
	assert.NoError(t, json.Unmarshal(resp.Body, target))
}
